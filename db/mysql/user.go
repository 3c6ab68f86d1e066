package mysql

import (
	"context"

	"social-feed-be/model"
	"social-feed-be/util"

	"github.com/upper/db/v4"
)

type UserDB struct {
	sess db.Session
}

func getUserDB(sess db.Session) *UserDB {
	return &UserDB{sess}
}

func (udb *UserDB) CreateUser(ctx context.Context, user *model.User) error {
	_, err := udb.sess.Collection("person").
		Insert(user)
	return err
}

// GetUser selects only the public profile columns; the person table's
// private account columns stay behind the projection.
func (udb *UserDB) GetUser(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := udb.sess.SQL().
		Select("firebase_id", "user_name", "profile").
		From("person").
		Where("firebase_id = ?", id).
		IteratorContext(ctx).
		One(&user); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	user.Avatar = util.Avatar(user.Id)
	return &user, nil
}
