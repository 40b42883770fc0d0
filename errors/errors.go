package errors

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error represents an application error. The JSON form is
// {"error": <message>}, which is the wire contract for every failure
// response of this service.
type Error struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation is a 400: malformed, missing or empty input.
func Validation(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// NotFound is a 404: a referenced document is absent.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}

// Store is a 500: any failure from the document store. The store's
// message is passed through to the caller.
func Store(err error) *Error {
	message := "document store error"
	if err != nil {
		message = err.Error()
	}
	return New(http.StatusInternalServerError, message, err)
}

// Respond writes err as a JSON response with the appropriate status.
// Anything that is not an *Error becomes a 500.
func Respond(c *gin.Context, err error) {
	appErr, ok := err.(*Error)
	if !ok {
		appErr = New(http.StatusInternalServerError, "internal server error", err)
	}
	c.JSON(appErr.Code, appErr)
}
