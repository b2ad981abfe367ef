package rfidscan

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInput indicates the RFID ID or the device ID is empty after trimming.
	ErrMissingInput = errors.New("rfid id and device id are required")
	// ErrInvalidRequest indicates the marshaled payload does not match ScanRequestSchema.
	ErrInvalidRequest = errors.New("scan request does not match schema")
	// ErrInvalidBody indicates the response body is not valid JSON.
	ErrInvalidBody = errors.New("response body is not valid JSON")
)

// TransportError reports any failure while performing a scan call:
// building the request, reaching the server, reading or parsing the reply.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
