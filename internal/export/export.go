// Package export renders the report HTML into a downloadable artifact. The
// page is loaded in a headless browser and captured either as a full-page
// PNG screenshot or as an A4 portrait PDF with 10mm margins.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zaoqi-icu/negoprep/internal/config"
	"github.com/zaoqi-icu/negoprep/internal/domain/negotiation"
	"github.com/zaoqi-icu/negoprep/internal/logging"
	apperrors "github.com/zaoqi-icu/negoprep/pkg/errors"
)

// filenamePrefix is the fixed stem of every exported file; the generation
// date and format extension complete it.
const filenamePrefix = "negotiation-report-"

// Result describes one completed export.
type Result struct {
	Filename   string                   `json:"filename"`
	Path       string                   `json:"path"`
	Format     negotiation.ExportFormat `json:"format"`
	Size       int                      `json:"size"`
	ArchiveKey string                   `json:"archiveKey,omitempty"`
}

// Archiver uploads a finished artifact to durable storage. Implemented by
// the MinIO archive; nil disables archiving.
type Archiver interface {
	Store(ctx context.Context, filename string, payload []byte, contentType string) (string, error)
}

// Recorder counts export attempts. Implemented by the metrics package.
type Recorder interface {
	Export(format, result string)
}

type nopRecorder struct{}

func (nopRecorder) Export(string, string) {}

// captureFunc renders the HTML file at path into raw artifact bytes. The
// production implementation drives a headless browser (see browser.go);
// tests substitute a stub.
type captureFunc func(ctx context.Context, htmlPath string, format negotiation.ExportFormat, cfg config.ExportConfig) ([]byte, error)

// Exporter turns report HTML into PNG or PDF files under the configured
// output directory.
type Exporter struct {
	cfg     config.ExportConfig
	log     logging.Logger
	archive Archiver
	metrics Recorder
	clock   func() time.Time
	capture captureFunc
}

// Option customises an Exporter.
type Option func(*Exporter)

// WithArchiver attaches an artifact archive.
func WithArchiver(a Archiver) Option {
	return func(e *Exporter) { e.archive = a }
}

// WithRecorder attaches a metrics sink.
func WithRecorder(r Recorder) Option {
	return func(e *Exporter) { e.metrics = r }
}

// WithClock overrides the time source used for file names.
func WithClock(clock func() time.Time) Option {
	return func(e *Exporter) { e.clock = clock }
}

func withCapture(fn captureFunc) Option {
	return func(e *Exporter) { e.capture = fn }
}

// New returns an Exporter writing into cfg.OutputDir.
func New(cfg config.ExportConfig, log logging.Logger, opts ...Option) *Exporter {
	e := &Exporter{
		cfg:     cfg,
		log:     log.Named("export"),
		metrics: nopRecorder{},
		clock:   time.Now,
		capture: captureWithBrowser,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export renders html into an artifact of the given format, writes it to the
// output directory, and optionally archives it. An archive failure is logged
// but does not fail the export; the local file is already on disk.
func (e *Exporter) Export(ctx context.Context, html string, format negotiation.ExportFormat) (*Result, error) {
	switch format {
	case negotiation.FormatPNG, negotiation.FormatPDF:
	default:
		e.metrics.Export(string(format), "error")
		return nil, apperrors.Newf(apperrors.ErrCodeExportFormatUnsupported, "unsupported export format %q", string(format))
	}

	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	result, err := e.export(ctx, html, format)
	if err != nil {
		e.metrics.Export(string(format), "error")
		return nil, err
	}
	e.metrics.Export(string(format), "ok")
	return result, nil
}

func (e *Exporter) export(ctx context.Context, html string, format negotiation.ExportFormat) (*Result, error) {
	if err := os.MkdirAll(e.cfg.OutputDir, 0o755); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeExportFailed, "failed to create export output directory")
	}

	htmlPath, cleanup, err := writeTempHTML(html)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	payload, err := e.capture(ctx, htmlPath, format, e.cfg)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeExportFailed, "failed to capture report")
	}

	filename := e.filename(format)
	outPath := filepath.Join(e.cfg.OutputDir, filename)
	if err := os.WriteFile(outPath, payload, 0o644); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeExportFailed, "failed to write export file")
	}

	result := &Result{
		Filename: filename,
		Path:     outPath,
		Format:   format,
		Size:     len(payload),
	}

	if e.archive != nil {
		key, err := e.archive.Store(ctx, filename, payload, contentType(format))
		if err != nil {
			e.log.Warn("failed to archive export artifact", logging.String("filename", filename), logging.Err(err))
		} else {
			result.ArchiveKey = key
		}
	}

	e.log.Info("report exported",
		logging.String("format", string(format)),
		logging.String("path", outPath),
		logging.Int("bytes", len(payload)),
	)
	return result, nil
}

func (e *Exporter) filename(format negotiation.ExportFormat) string {
	return fmt.Sprintf("%s%s.%s", filenamePrefix, e.clock().Format("2006-01-02"), string(format))
}

func contentType(format negotiation.ExportFormat) string {
	if format == negotiation.FormatPNG {
		return "image/png"
	}
	return "application/pdf"
}

// writeTempHTML stages the report in a temp file so the browser can load it
// over file://, avoiding data-URL length limits.
func writeTempHTML(html string) (string, func(), error) {
	f, err := os.CreateTemp("", "negoprep-report-*.html")
	if err != nil {
		return "", nil, apperrors.Wrap(err, apperrors.ErrCodeExportFailed, "failed to create temp report file")
	}
	path := f.Name()
	cleanup := func() { os.Remove(path) }

	if _, err := f.WriteString(html); err != nil {
		f.Close()
		cleanup()
		return "", nil, apperrors.Wrap(err, apperrors.ErrCodeExportFailed, "failed to write temp report file")
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, apperrors.Wrap(err, apperrors.ErrCodeExportFailed, "failed to close temp report file")
	}
	return path, cleanup, nil
}
