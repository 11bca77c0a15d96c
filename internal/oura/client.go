package oura

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sam-roberts/oura-data-visualiser/internal"
)

// FetchError means a feed could not be fetched or parsed. It aborts the
// whole run: the day join needs both feeds, so a partial fetch is unusable.
// A day simply having no records is not a FetchError.
type FetchError struct {
	Feed string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("oura: fetching %s feed: %v", e.Feed, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client talks to the Oura v2 REST API. Both feeds share the same shape:
// a GET with bearer auth and start_date/end_date params, returning a
// top-level "data" array.
type Client struct {
	Token      string
	HTTPClient *http.Client
	validate   *validator.Validate
	logger     internal.Logger
}

func NewClient(token string, logger internal.Logger) *Client {
	return &Client{
		Token:      token,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		validate:   validator.New(),
		logger:     logger,
	}
}

// FetchDailySleep returns the per-day summary records (score plus
// contributors) between start and end inclusive.
func (c *Client) FetchDailySleep(ctx context.Context, feedURL, start, end string) ([]internal.DailySummary, error) {
	var records []internal.DailySummary
	if err := c.getData(ctx, feedURL, start, end, &records); err != nil {
		return nil, &FetchError{Feed: "daily sleep", Err: err}
	}
	for i, r := range records {
		if err := c.validate.Struct(r); err != nil {
			return nil, &FetchError{Feed: "daily sleep", Err: fmt.Errorf("record %d invalid: %w", i, err)}
		}
	}
	return records, nil
}

// FetchSessions returns the per-session detail records. A single day may
// contribute several (main sleep plus naps).
func (c *Client) FetchSessions(ctx context.Context, feedURL, start, end string) ([]internal.SleepSession, error) {
	var records []internal.SleepSession
	if err := c.getData(ctx, feedURL, start, end, &records); err != nil {
		return nil, &FetchError{Feed: "sleep sessions", Err: err}
	}
	for i, r := range records {
		if err := c.validate.Struct(r); err != nil {
			return nil, &FetchError{Feed: "sleep sessions", Err: fmt.Errorf("record %d invalid: %w", i, err)}
		}
	}
	return records, nil
}

func (c *Client) getData(ctx context.Context, feedURL, start, end string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		c.logger.Errorf("failed to create request: %v", err)
		return err
	}
	q := url.Values{}
	q.Set("start_date", start)
	q.Set("end_date", end)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.logger.Errorf("failed to call %s: %v", feedURL, err)
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.logger.Errorf("%s returned %d", feedURL, resp.StatusCode)
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.logger.Errorf("failed to decode %s response: %v", feedURL, err)
		return err
	}
	if envelope.Data == nil {
		return fmt.Errorf("response has no data array")
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		c.logger.Errorf("failed to decode %s records: %v", feedURL, err)
		return err
	}
	return nil
}
