package rfidscan

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// FormState is the activation state of a scan form.
type FormState int32

const (
	// StateIdle means the form is waiting for an activation.
	StateIdle FormState = iota
	// StateAwaitingResponse means a scan call is in flight.
	StateAwaitingResponse
)

func (s FormState) String() string {
	if s == StateAwaitingResponse {
		return "awaiting-response"
	}

	return "idle"
}

// Form field labels and the action caption.
const (
	LabelRFIDID   = "RFID ID:"
	LabelDeviceID = "Device ID:"
	ActionScan    = "Scan"
)

// ScanForm holds the form logic independent of any UI toolkit.
type ScanForm struct {
	scanner   Scanner
	presenter Presenter
	log       zerolog.Logger
	state     atomic.Int32
}

// NewScanForm binds a scanner and the presenter that shows each outcome.
func NewScanForm(scanner Scanner, presenter Presenter, log zerolog.Logger) (*ScanForm, error) {
	if scanner == nil {
		return nil, fmt.Errorf("scan form requires a scanner")
	}

	if presenter == nil {
		return nil, fmt.Errorf("scan form requires a presenter")
	}

	return &ScanForm{scanner: scanner, presenter: presenter, log: log}, nil
}

// State reports whether a call is in flight.
func (f *ScanForm) State() FormState {
	return FormState(f.state.Load())
}

// Submit validates the two fields and, if both are present, performs
// exactly one scan call. It always yields exactly one outcome.
func (f *ScanForm) Submit(ctx context.Context, rfidID, deviceID string) Outcome {
	req, err := NewScanRequest(rfidID, deviceID)
	if err != nil {
		f.log.Debug().Err(err).Msg("scan rejected before sending")

		return inputErrorOutcome()
	}

	f.state.Store(int32(StateAwaitingResponse))
	defer f.state.Store(int32(StateIdle))

	resp, err := f.scanner.Scan(ctx, req)
	if err != nil {
		var te *TransportError
		if !errors.As(err, &te) {
			te = &TransportError{Err: err}
		}

		f.log.Warn().Err(te).Msg("scan request failed")

		return failureOutcome(te)
	}

	f.log.Info().
		Str("rfid_id", req.RFIDID).
		Str("device_id", req.DeviceID).
		Int("status", resp.StatusCode).
		Msg("scan completed")

	return responseOutcome(resp)
}

// Trigger handles one activation of the Scan action: it submits the
// current field values and shows the resulting outcome.
func (f *ScanForm) Trigger(ctx context.Context, rfidID, deviceID string) (Outcome, error) {
	out := f.Submit(ctx, rfidID, deviceID)
	if err := f.presenter.Present(out); err != nil {
		return out, fmt.Errorf("present %s outcome: %w", out.Kind, err)
	}

	return out, nil
}
