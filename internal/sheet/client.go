package sheet

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"github.com/osse101/GuildRaffle_Go/internal/domain"
	"github.com/osse101/GuildRaffle_Go/internal/logger"
)

// Client downloads the response table from its CSV export endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a client for the given export URL. A nil httpClient
// falls back to a default with a fetch timeout.
func NewClient(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return &Client{url: url, httpClient: httpClient}
}

// ExportURL derives the CSV export endpoint from a sheet share link. The
// sheet ID sits in a fixed path segment of the link.
func ExportURL(shareURL string) (string, error) {
	parts := strings.Split(shareURL, "/")
	if len(parts) <= shareURLIDSegment || parts[shareURLIDSegment] == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidSheetURL, shareURL)
	}
	return fmt.Sprintf(ExportURLFormat, parts[shareURLIDSegment]), nil
}

// Fetch downloads and decodes the full response table, header row included.
func (c *Client) Fetch(ctx context.Context) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToFetchSheet, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToFetchSheet, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %s %d", ErrContextFailedToFetchSheet, ErrMsgUnexpectedStatus, resp.StatusCode)
	}

	rows, err := csv.NewReader(resp.Body).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToParseCSV, err)
	}

	logger.FromContext(ctx).Debug(LogMsgFetchedResponses, "rows", len(rows))
	return rows, nil
}
