package client

import (
	"context"
	"net/http"
)

// GetReportHTML fetches the rendered report document.
func (c *Client) GetReportHTML(ctx context.Context) (string, error) {
	raw, err := c.doRaw(ctx, http.MethodGet, "/report")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ExportReport renders and captures the report. An empty format uses the
// server-side report setting; "png" and "pdf" override it.
func (c *Client) ExportReport(ctx context.Context, format string) (*ExportResult, error) {
	var body any
	if format != "" {
		body = map[string]string{"format": format}
	}
	var out ExportResult
	if err := c.do(ctx, http.MethodPost, "/report/export", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
