// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Success responses may return any JSON shape (a record, a list, null).
// Error responses always look like:
//
//	{ "status": "error", "error": "field year is required" }
package response

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Response is the standard envelope returned for error cases.
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Values of Response.Status.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes data JSON-encoded with the given HTTP status code.
// A nil data is written as the JSON literal null.
func WriteJSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// WriteError writes err in the error envelope and aborts the handler chain.
func WriteError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, GeneralError(err))
}

// GeneralError puts err into the envelope.
func GeneralError(err error) Response {
	return Response{Status: StatusError, Error: err.Error()}
}

// ValidationError joins the field errors into one message:
//
//	{ "status": "error", "error": "field title is required, field year is required" }
func ValidationError(errs validator.ValidationErrors) Response {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		msgs = append(msgs, fieldMessage(fe))
	}

	return Response{Status: StatusError, Error: strings.Join(msgs, ", ")}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("field %s is required", fe.Field())
	case "email":
		return fmt.Sprintf("field %s must be a valid email address", fe.Field())
	default:
		return fmt.Sprintf("field %s is invalid", fe.Field())
	}
}
