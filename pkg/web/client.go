package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-petr/credit-manager/pkg/errorspkg"
)

// StatusError is returned by Client when the server answers with a non 2xx status.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Message)
}

// Unwrap reports server side failures as errorspkg.ErrUnavailable.
func (e *StatusError) Unwrap() error {
	if e.Code >= http.StatusInternalServerError {
		return errorspkg.ErrUnavailable
	}

	return nil
}

// Client calls JSON APIs of external collaborators.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for baseURL with the given request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Do sends in as the JSON body and decodes the JSON response into out.
// Either may be nil.
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader

	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}

		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", errorspkg.ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		var r Response

		raw, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		if err := json.Unmarshal(raw, &r); err != nil || r.Error == "" {
			r.Error = strings.TrimSpace(string(raw))
		}

		return &StatusError{Code: res.StatusCode, Message: r.Error}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
