package roster

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/compliance-hris/attendance-backend-go/internal/domain/shift"
)

// Client calls the external shift roster service over HTTP. Every failure
// mode — transport error, non-200 status, body that is not a JSON list, empty
// list — surfaces as shift.ErrRosterUnavailable so callers cannot mistake an
// outage for "no shifts".
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetShiftDetails implements shift.RosterClient.
func (c *Client) GetShiftDetails(ctx context.Context, shiftID int64, date string) ([]shift.RosterEntry, error) {
	payload := map[string]interface{}{
		"shiftid": shiftID,
		"date":    date,
	}
	return c.post(ctx, "/ShiftRoster/GetShiftDetails", payload)
}

// ShiftDetailed implements shift.RosterClient.
func (c *Client) ShiftDetailed(ctx context.Context, shiftID int64, fromDate, toDate string) ([]shift.RosterEntry, error) {
	payload := map[string]interface{}{
		"shiftid":  shiftID,
		"fromdate": fromDate,
		"todate":   toDate,
	}
	return c.post(ctx, "/ShiftRoster/ShiftDetailed", payload)
}

func (c *Client) post(ctx context.Context, path string, payload map[string]interface{}) ([]shift.RosterEntry, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode roster request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build roster request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shift.ErrRosterUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", shift.ErrRosterUnavailable, resp.StatusCode)
	}

	var entries []shift.RosterEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: malformed response body", shift.ErrRosterUnavailable)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: empty shift details", shift.ErrRosterUnavailable)
	}

	return entries, nil
}
