package compiler

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/numkem/wasmrelay"
)

// Client talks to the compiler service. One Client is built at startup
// and shared between jobs; the underlying http.Client pools connections
// and is safe for concurrent use.
type Client struct {
	baseURL string
	hc      *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		hc:      &http.Client{},
	}
}

// Submit sends the raw source code to the compiler and decodes its
// reply. It makes exactly one call and never retries; deadlines and
// cancellation come from the caller's context.
func (c *Client) Submit(ctx context.Context, code string) (*wasmrelay.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/run", strings.NewReader(code))
	if err != nil {
		return nil, fmt.Errorf("failed to build compiler request: %v", err)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	log.WithFields(log.Fields{
		"status":     res.StatusCode,
		"body_bytes": len(body),
	}).Debug("got response from compiler")

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, &BackendError{Status: res.StatusCode, Body: string(body)}
	}

	resp, err := wasmrelay.Unmarshal(body)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	return resp, nil
}
