// Package predict forwards prediction requests to the external model
// service and relays its answer unchanged.
package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"medcost-api/internal"
)

// Request carries the six model inputs exactly as the caller sent them.
// Absent fields are left out of the forwarded body.
type Request struct {
	Age      json.RawMessage `json:"age,omitempty"`
	Sex      json.RawMessage `json:"sex,omitempty"`
	BMI      json.RawMessage `json:"bmi,omitempty"`
	Children json.RawMessage `json:"children,omitempty"`
	Smoker   json.RawMessage `json:"smoker,omitempty"`
	Region   json.RawMessage `json:"region,omitempty"`
}

// Response is the upstream body and its content type.
type Response struct {
	Body        []byte
	ContentType string
}

type Client struct {
	URL  string
	HTTP *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		URL:  url,
		HTTP: &http.Client{Timeout: timeout},
	}
}

// Predict posts req to the prediction endpoint. Transport failures, timeouts
// and non-2xx answers are all reported as internal.ErrUpstream.
func (c *Client) Predict(ctx context.Context, req Request) (*Response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding request: %w", internal.ErrUpstream, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", internal.ErrUpstream, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client().Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", internal.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %w", internal.ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d: %s", internal.ErrUpstream, resp.StatusCode, truncate(body, 256))
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/json"
	}

	return &Response{Body: body, ContentType: ct}, nil
}

func (c *Client) client() *http.Client {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
