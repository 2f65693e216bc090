package transport

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// FallbackBusinessMessage is shown when a failed envelope has no message.
	FallbackBusinessMessage = "request failed"
	// FallbackNetworkMessage is shown when a transport failure carries no
	// backend message.
	FallbackNetworkMessage = "network error"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNetwork      = errors.New("network error")
)

// APIError is a business failure: the backend answered, but the envelope
// code was neither 200 nor 201.
type APIError struct {
	Code    int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("api error %d: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// TransportError is returned when the backend answered with a non-2xx
// status or did not answer at all (Status == 0).
type TransportError struct {
	Status  int
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("transport error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("transport error %d: %s", e.Status, e.Message)
}

func (e *TransportError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	switch {
	case e.Status == http.StatusUnauthorized:
		errs = append(errs, ErrUnauthorized)
	case e.Status == 0:
		errs = append(errs, ErrNetwork)
	}
	return errs
}

// Message extracts the user-facing message carried by err, if any.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	var trErr *TransportError
	if errors.As(err, &trErr) {
		return trErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
