package tripapi

import (
	"bytes"
	"context"
	"eld-trip-planner/internal/domain"
	"eld-trip-planner/internal/platform/obs"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const calculatePath = "/api/calculate-trip/"

// Client implements TripCalculator against the trip-calculation backend.
//
// Every call is a single request: nothing is retried, and no timeout is
// added on top of the transport defaults. The client is safe for
// concurrent use.
type Client struct {
	session *http.Client
	baseURL string
}

// NewClient returns a client sending requests to baseURL. A nil httpClient
// uses a plain http.Client.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		session: httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// CalculateTrip posts the trip request and decodes the computed plan.
func (c *Client) CalculateTrip(
	ctx context.Context,
	tripReq domain.TripRequest,
) (_ domain.TripResult, err error) {
	defer obs.Time(ctx, "tripapi.CalculateTrip")(&err)

	payload, err := json.Marshal(tripReq)
	if err != nil {
		return domain.TripResult{}, fmt.Errorf("calculate trip: marshal request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.url(calculatePath), bytes.NewReader(payload))
	if err != nil {
		return domain.TripResult{}, fmt.Errorf("calculate trip: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return domain.TripResult{}, fmt.Errorf("calculate trip: %w", err)
	}
	defer resp.Body.Close()

	var result domain.TripResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.TripResult{}, fmt.Errorf("calculate trip: decode response: %w", err)
	}

	return result, nil
}

// ResolveLog fetches the log locator of a trip result and returns the
// document locator it points to.
func (c *Client) ResolveLog(ctx context.Context, locator string) (_ domain.LogDocument, err error) {
	defer obs.Time(ctx, "tripapi.ResolveLog")(&err)

	if strings.TrimSpace(locator) == "" {
		return domain.LogDocument{}, errors.New("resolve log: locator must be non-empty")
	}

	req, err := c.newRequest(ctx, http.MethodGet, c.url(locator), nil)
	if err != nil {
		return domain.LogDocument{}, fmt.Errorf("resolve log: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return domain.LogDocument{}, fmt.Errorf("resolve log %q: %w", locator, err)
	}
	defer resp.Body.Close()

	var doc domain.LogDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return domain.LogDocument{}, fmt.Errorf("resolve log: decode response: %w", err)
	}

	if doc.PDFURL == "" {
		return domain.LogDocument{}, fmt.Errorf("resolve log %q: response has no pdfUrl", locator)
	}

	return doc, nil
}

// url joins a backend path onto the base. Absolute locators are used as-is.
func (c *Client) url(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.baseURL + path
}
