package sheet

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var (
	ErrFetchFailed      = errors.New("sheet fetch failed")
	ErrUnexpectedStatus = errors.New("unexpected sheet response status")
)

const defaultTimeout = 30 * time.Second

// HTTPSource downloads a spreadsheet's CSV export.
type HTTPSource struct {
	url    string
	client *http.Client
}

type HTTPConfig struct {
	URL     string
	Timeout time.Duration
	Client  *http.Client
}

func NewHTTPSource(cfg HTTPConfig) *HTTPSource {
	client := cfg.Client
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	return &HTTPSource{url: cfg.URL, client: client}
}

func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	const fn = "HTTPSource:Fetch"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", fmt.Errorf("%s:%w:%w", fn, ErrFetchFailed, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s:%w:%w", fn, ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%s:%w: %d %s", fn, ErrUnexpectedStatus, resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s:%w:%w", fn, ErrFetchFailed, err)
	}
	slog.InfoContext(ctx, "Sheet fetched", "url", s.url, "bytes", len(body))
	return string(body), nil
}

// APISource reads a sheet range through the Sheets v4 values API and renders
// it as CSV so it flows through the same parser as an export download.
type APISource struct {
	spreadsheetID string
	readRange     string
	options       []option.ClientOption
}

type APIConfig struct {
	SpreadsheetID string
	Range         string
	APIKey        string
	// Extra client options, e.g. an endpoint override.
	Options []option.ClientOption
}

func NewAPISource(cfg APIConfig) *APISource {
	opts := make([]option.ClientOption, 0, len(cfg.Options)+1)
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	opts = append(opts, cfg.Options...)
	readRange := cfg.Range
	if readRange == "" {
		readRange = "A1:Z"
	}
	return &APISource{
		spreadsheetID: cfg.SpreadsheetID,
		readRange:     readRange,
		options:       opts,
	}
}

func (s *APISource) Fetch(ctx context.Context) (string, error) {
	const fn = "APISource:Fetch"
	srv, err := sheets.NewService(ctx, s.options...)
	if err != nil {
		return "", fmt.Errorf("%s:%w:%w", fn, ErrFetchFailed, err)
	}
	resp, err := srv.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("%s:%w:%w", fn, ErrFetchFailed, err)
	}

	// The API drops trailing empty cells; pad so column counts match the export.
	width := 0
	for _, row := range resp.Values {
		width = max(width, len(row))
	}

	var b strings.Builder
	w := csv.NewWriter(&b)
	for _, row := range resp.Values {
		record := make([]string, width)
		for i, cell := range row {
			record[i] = fmt.Sprint(cell)
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("%s:%w:%w", fn, ErrFetchFailed, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("%s:%w:%w", fn, ErrFetchFailed, err)
	}
	slog.InfoContext(ctx, "Sheet values fetched", "spreadsheet_id", s.spreadsheetID, "rows", len(resp.Values))
	return b.String(), nil
}
