package client

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport the backend could not be reached or answered with something unusable.
	ErrTransport = errors.New("backend transport failure")
	// ErrBusiness the backend answered success=false.
	ErrBusiness = errors.New("backend rejected request")
)

// TransportError network, status or decoding failure of one backend call
type TransportError struct {
	Endpoint   string // e.g. "GET /sensor-config"
	StatusCode int    // 0 when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() []error { return []error{ErrTransport, e.Err} }

// BusinessError success=false reply carrying the server message
type BusinessError struct {
	Endpoint string
	Message  string
}

func (e *BusinessError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: request rejected", e.Endpoint)
	}
	return fmt.Sprintf("%s: %s", e.Endpoint, e.Message)
}

func (e *BusinessError) Unwrap() error { return ErrBusiness }
