// internal/contact/client.go
//
// Folio – Contact workflow: intake API client.
//
// Context
//   One POST per accepted submission:
//
//     POST <endpoint>
//     Content-Type: application/json
//     {"name": …, "email": …, "phone": …, "message": …, "subject": …}
//
//   The reply is decoded regardless of status code.  The intake API answers
//   `{"success": false, "message": …}` on business failures with a non-2xx
//   status, so the body, not the status, decides the outcome.  A body that is
//   not JSON is a transport fault.
//
// Notes
//   • No auth, retry, or idempotency key.
//   • On js/wasm net/http rides on the browser's fetch.
//
//------------------------------------------------------------------------------

package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPClient is satisfied by *http.Client and by test doubles.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Submission is the request body.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Subject string `json:"subject"`
}

// Reply is the intake API's answer.  Message is optional.
type Reply struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TransportError wraps any failure to perform or parse the exchange.  The
// cause is for logs only.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("contact %s: %v", e.Op, e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// Client posts submissions to one fixed endpoint.
type Client struct {
	endpoint string
	timeout  time.Duration
	http     HTTPClient
}

// NewClient returns a Client for endpoint.  A nil hc means http.DefaultClient.
// timeout <= 0 leaves the exchange unbounded.
func NewClient(endpoint string, timeout time.Duration, hc HTTPClient) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{endpoint: endpoint, timeout: timeout, http: hc}
}

// Endpoint returns the intake URL.
func (c *Client) Endpoint() string { return c.endpoint }

// Send performs the exchange.  Any returned error is a *TransportError.
func (c *Client) Send(ctx context.Context, sub Submission) (Reply, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	payload, err := json.Marshal(sub)
	if err != nil {
		return Reply{}, &TransportError{Op: "encode", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Reply{}, &TransportError{Op: "request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Reply{}, &TransportError{Op: "post", Err: err}
	}
	defer resp.Body.Close()

	var rep Reply
	if err := json.NewDecoder(resp.Body).Decode(&rep); err != nil {
		return Reply{}, &TransportError{Op: "decode", Err: fmt.Errorf("status %d: %w", resp.StatusCode, err)}
	}
	return rep, nil
}
