package routes

import (
	"net/http"
	"testing"

	"social-feed-be/app"

	"github.com/stretchr/testify/assert"
)

func TestCreateUser(t *testing.T) {
	fake := newFakeDB()
	r := newTestServer(fake, &app.Policy{})

	rec := doRequest(r, http.MethodPut, "/users", "alice", `{"userName":"alice","profile":"hi there"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var user struct {
		Id       string `json:"id"`
		UserName string `json:"userName"`
		Profile  string `json:"profile"`
		Avatar   string `json:"avatar"`
	}
	decodeJSON(t, rec, &user)
	assert.Equal(t, "alice", user.Id)
	assert.Equal(t, "alice", user.UserName)
	assert.NotEmpty(t, user.Avatar)

	// the profile is now usable on content endpoints
	rec = doRequest(r, http.MethodPost, "/posts", "alice", `{"postBody":"first","isPrivate":false}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateUser_DuplicateName(t *testing.T) {
	fake := newFakeDB()
	addUser(t, fake, "alice", "alice")
	r := newTestServer(fake, &app.Policy{})

	rec := doRequest(r, http.MethodPut, "/users", "bob", `{"userName":"alice"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateUser_Validation(t *testing.T) {
	fake := newFakeDB()
	r := newTestServer(fake, &app.Policy{})

	rec := doRequest(r, http.MethodPut, "/users", "alice", `{"userName":"ab"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMe(t *testing.T) {
	fake := newFakeDB()
	addUser(t, fake, "alice", "alice")
	r := newTestServer(fake, &app.Policy{})

	rec := doRequest(r, http.MethodGet, "/users/me", "alice", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var user struct {
		Id string `json:"id"`
	}
	decodeJSON(t, rec, &user)
	assert.Equal(t, "alice", user.Id)
}
