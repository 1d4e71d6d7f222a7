package request

import (
	"errors"
	"fmt"

	"github.com/theoremus-urban-solutions/efa-client/schema"
)

// ErrNotImplemented is returned by operations the client does not support yet
var ErrNotImplemented = errors.New("not implemented")

// ParameterError reports a parameter outside the request schema or a failed
// validation of the parameter set
type ParameterError struct {
	Key string
	Msg string
	Err error
}

func (e *ParameterError) Error() string {
	msg := e.Msg
	if e.Key != "" {
		msg = fmt.Sprintf("%s: %s", e.Key, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("parameter error: %s: %v", msg, e.Err)
	}
	return "parameter error: " + msg
}

func (e *ParameterError) Unwrap() error { return e.Err }

// ResponseInvalidError reports a server response that does not match the expected shape
type ResponseInvalidError struct {
	Issues schema.Issues
	Err    error
}

func (e *ResponseInvalidError) Error() string {
	if len(e.Issues) > 0 {
		return "server response validation failed - " + e.Issues.Error()
	}
	return fmt.Sprintf("server response validation failed - %v", e.Err)
}

func (e *ResponseInvalidError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Issues
}

func newResponseInvalid(err error) *ResponseInvalidError {
	var issues schema.Issues
	if errors.As(err, &issues) {
		return &ResponseInvalidError{Issues: issues}
	}
	return &ResponseInvalidError{Err: err}
}

// ValueError reports malformed caller input outside of the parameter schema
type ValueError struct{ Msg string }

func (e *ValueError) Error() string { return e.Msg }
