// Package rfidscan submits RFID scans to the attendance backend and turns
// each reply into a single dialog outcome.
package rfidscan

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"
)

// ScanRequestSchema describes the JSON body accepted by the scan endpoint.
const ScanRequestSchema = `{
  "type":"object",
  "properties":{
    "rfidId":{"type":"string","minLength":1},
    "deviceId":{"type":"string","minLength":1}
  },
  "required":["rfidId","deviceId"],
  "additionalProperties":false
}`

var validate = validator.New(validator.WithRequiredStructEnabled())

// ScanRequest is the body of one scan call. It is built per activation and
// dropped once the call returns.
type ScanRequest struct {
	RFIDID   string `json:"rfidId"   validate:"required"`
	DeviceID string `json:"deviceId" validate:"required"`
}

// NewScanRequest trims both identifiers and rejects the pair if either is empty.
func NewScanRequest(rfidID, deviceID string) (ScanRequest, error) {
	req := ScanRequest{
		RFIDID:   strings.TrimSpace(rfidID),
		DeviceID: strings.TrimSpace(deviceID),
	}

	if err := validate.Struct(req); err != nil {
		return ScanRequest{}, fmt.Errorf("%w: %v", ErrMissingInput, err)
	}

	return req, nil
}

// Payload marshals the request and checks it against ScanRequestSchema.
func (r ScanRequest) Payload() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal scan request: %w", err)
	}

	if err := validatePayload(data); err != nil {
		return nil, err
	}

	return data, nil
}

func validatePayload(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(ScanRequestSchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("validate scan request: %w", err)
	}

	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, err := range result.Errors() {
		errs = append(errs, err.String())
	}

	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(errs, "; "))
}
