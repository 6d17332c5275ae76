package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"venueBooker/internal/lib/flash"
)

type Response struct {
	Status  string        `json:"status"`
	Error   string        `json:"error,omitempty"`
	Message string        `json:"message,omitempty"`
	Flash   *flash.Notice `json:"flash,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

func OK() Response {
	return Response{
		Status: StatusOK,
	}
}

// Success is OK carrying a user-facing confirmation.
func Success(msg string) Response {
	return Response{
		Status:  StatusOK,
		Message: msg,
	}
}

// WithFlash attaches a notice popped from the request cookies.
func (r Response) WithFlash(notice *flash.Notice) Response {
	r.Flash = notice
	return r
}

func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

func ValidationError(errs validator.ValidationErrors) Response {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "url":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not a valid URL", err.Field()))
		case "oneof":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must be one of [%s]", err.Field(), err.Param()))
		case "dive":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s contains an invalid value", err.Field()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMsgs, ", "),
	}
}
