package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apiError "github.com/ecotrack/wastenexus/errors"
)

type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// JSON writes the standard response envelope.
func JSON(c *gin.Context, message string, status int, data interface{}, err interface{}) {
	var errs interface{}
	switch e := err.(type) {
	case nil:
		errs = nil
	case *apiError.Error:
		errs = e.Message
	case error:
		errs = e.Error()
	default:
		errs = e
	}

	c.JSON(status, Response{
		Status:  status,
		Message: message,
		Data:    data,
		Errors:  errs,
	})
}

// HandleErrors resolves an error to its HTTP status and responds.
func HandleErrors(c *gin.Context, err error) {
	if e, ok := err.(*apiError.Error); ok {
		JSON(c, "", e.Status, nil, e)
		return
	}
	JSON(c, "", http.StatusInternalServerError, nil, err)
}
