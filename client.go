package rfidscan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// Endpoint is the attendance backend scan route. It is fixed.
const Endpoint = "http://localhost:5000/api/rfid-scans/scan"

// Scanner submits one scan request and returns the server reply.
// Any failure during the call is reported as a *TransportError.
type Scanner interface {
	Scan(ctx context.Context, req ScanRequest) (Response, error)
}

// Response is a reply whose body parsed as JSON.
// Body holds the compact JSON text of that body.
type Response struct {
	StatusCode int
	Body       string
}

// Accepted reports whether the server took the scan (200 or 201).
func (r Response) Accepted() bool {
	return r.StatusCode == http.StatusOK || r.StatusCode == http.StatusCreated
}

// Client posts scan requests to the attendance backend.
type Client struct {
	opts ClientOptions
}

var _ Scanner = (*Client)(nil)

// NewClient constructs a scan client.
func NewClient(opts ...ClientOption) (*Client, error) {
	resolved, err := resolveClientOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Client{opts: resolved}, nil
}

// Scan issues a single POST with no retry.
func (c *Client) Scan(ctx context.Context, req ScanRequest) (Response, error) {
	payload, err := req.Payload()
	if err != nil {
		return Response{}, &TransportError{Op: "encode request", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return Response{}, &TransportError{Op: "build request", Err: err}
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)

	log := c.opts.Logger.With().
		Str("request_id", requestID).
		Str("rfid_id", req.RFIDID).
		Str("device_id", req.DeviceID).
		Logger()
	log.Debug().Str("url", c.opts.Endpoint).Msg("posting scan")

	resp, err := c.opts.HTTPClient.Do(httpReq)
	if err != nil {
		log.Debug().Err(err).Msg("scan call failed")

		return Response{}, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, &TransportError{Op: "read response", Err: err}
	}

	body, err := renderBody(data)
	if err != nil {
		log.Debug().Int("status", resp.StatusCode).Err(err).Msg("undecodable reply")

		return Response{}, &TransportError{Op: "decode response", Err: err}
	}

	log.Debug().Int("status", resp.StatusCode).Msg("scan reply")

	return Response{StatusCode: resp.StatusCode, Body: body}, nil
}

func renderBody(data []byte) (string, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}

	var b bytes.Buffer
	if err := json.Compact(&b, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}

	return b.String(), nil
}
