package tripapi

import (
	"context"
	"eld-trip-planner/internal/ports"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// errorBody is the optional failure payload of the backend.
type errorBody struct {
	Error string `json:"error"`
}

func (c *Client) newRequest(
	ctx context.Context,
	method string,
	url string,
	body io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// do executes req and turns any non-2xx answer into a *ports.BackendError
// carrying the body's "error" field when there is one.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

		var eb errorBody
		_ = json.Unmarshal(b, &eb)

		return nil, &ports.BackendError{
			Status:  resp.StatusCode,
			Message: strings.TrimSpace(eb.Error),
		}
	}

	return resp, nil
}
