package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
)

// Error is a domain error carrying the HTTP status it should surface as.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

var (
	ErrNotFound            = New("resource not found", http.StatusNotFound)
	ErrBadRequest          = New("bad request", http.StatusBadRequest)
	ErrInternalServerError = New("internal server error", http.StatusInternalServerError)
	ErrUnauthorized        = New("unauthorized", http.StatusUnauthorized)
	ErrForbidden           = New("forbidden", http.StatusForbidden)
	ErrInvalidPassword     = New("invalid password", http.StatusUnauthorized)

	InActiveUserError = errors.New("user inactive")
)

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func New(message string, status int) *Error {
	return &Error{
		Message: message,
		Status:  status,
	}
}

// GetUniqueConstraintError maps a postgres unique-violation to a 409, anything
// else to a 500.
func GetUniqueConstraintError(err error) *Error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "duplicate key value"), strings.Contains(msg, "23505"):
		switch {
		case strings.Contains(msg, "email"):
			return New("user with this email already exists", http.StatusConflict)
		case strings.Contains(msg, "telephone"):
			return New("user with this phone number already exists", http.StatusConflict)
		default:
			return New("record already exists", http.StatusConflict)
		}
	default:
		return ErrInternalServerError
	}
}

// ErrorHandler is the gin-rate-limit handler for throttled requests.
func ErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{
		"status":  http.StatusTooManyRequests,
		"message": "too many requests, try again later",
		"errors":  fmt.Sprintf("rate limited until %s", info.ResetTime.Format("15:04:05")),
	})
	c.Abort()
}
