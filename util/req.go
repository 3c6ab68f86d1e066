package util

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Stable error codes surfaced in error bodies alongside the HTTP status.
const (
	CodeDatabase        = 1001
	CodeForbidden       = 1003
	CodePostNotFound    = 1021
	CodeCommentNotFound = 1022
	CodeValidation      = 1049
)

type HTTPError struct {
	Status  int
	Code    int
	Message string
}

func (he *HTTPError) Error() string {
	return fmt.Sprintf("%v (statusCode=%v, code=%v)", he.Message, he.Status, he.Code)
}

var (
	ForbiddenHTTPErr = &HTTPError{
		Status:  http.StatusForbidden,
		Code:    CodeForbidden,
		Message: "you don't have permission",
	}
	PostNotFoundHTTPErr = &HTTPError{
		Status:  http.StatusNotFound,
		Code:    CodePostNotFound,
		Message: "post not found",
	}
	CommentNotFoundHTTPErr = &HTTPError{
		Status:  http.StatusNotFound,
		Code:    CodeCommentNotFound,
		Message: "comment not found",
	}
)

func BuildDbHTTPErr(err error) *HTTPError {
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeDatabase,
		Message: "database error",
	}
}

// BuildJSONBindHTTPErr converts a gin binding/validation failure into the
// uniform 400 response.
func BuildJSONBindHTTPErr(err error) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Code:    CodeValidation,
		Message: err.Error(),
	}
}

// ParseResourceId parses a path id. A malformed id deliberately maps to the
// resource's not-found error rather than a 400, so callers can't probe id
// shapes.
func ParseResourceId(raw string, notFoundErr *HTTPError) (int64, *HTTPError) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, notFoundErr
	}
	return id, nil
}

type HandlerFunc func(c *gin.Context) (interface{}, *HTTPError)

type HandlerOpts struct {
	// SuccessStatus overrides the status written on success (default 200)
	SuccessStatus int
}

// HandlerWrapper adapts a value-or-HTTPError handler into a gin.HandlerFunc.
// nil data writes an empty body with the success status.
func HandlerWrapper(handler HandlerFunc, opts *HandlerOpts) gin.HandlerFunc {
	successStatus := opts.SuccessStatus
	if successStatus == 0 {
		successStatus = http.StatusOK
	}
	return func(c *gin.Context) {
		data, httpErr := handler(c)
		if httpErr != nil {
			HandleHTTPErrorRes(c, httpErr)
			return
		}
		if data == nil {
			c.Status(successStatus)
			return
		}
		c.JSON(successStatus, data)
	}
}

/*
HandleHTTPErrorRes handles creating the appropriate response for the HTTP error.
break the route after calling this function
*/
func HandleHTTPErrorRes(c *gin.Context, err *HTTPError) {
	c.JSON(err.Status, gin.H{
		"message": err.Message,
		"code":    err.Code,
	})
}
