package httperr

import (
	"table-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Codes are stable identifiers clients can switch on instead of messages.
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidField       = "INVALID_FIELD"
	CodeMissingFields      = "MISSING_FIELDS"
	CodeSessionNotFound    = "SESSION_NOT_FOUND"
	CodeSessionClosed      = "SESSION_CLOSED"
	CodeSubmitInProgress   = "SUBMISSION_IN_PROGRESS"
	CodeServiceRejected    = "SERVICE_REJECTED"
	CodeServiceUnreachable = "SERVICE_UNREACHABLE"
	CodeNotFound           = "NOT_FOUND"
	CodeInternal           = "INTERNAL"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError keeps err on the gin context for the logging middleware
// and writes the public response.
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
