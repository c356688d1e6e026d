package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaoqi-icu/negoprep/internal/config"
	"github.com/zaoqi-icu/negoprep/internal/domain/negotiation"
	"github.com/zaoqi-icu/negoprep/internal/logging"
	apperrors "github.com/zaoqi-icu/negoprep/pkg/errors"
)

type stubArchive struct {
	filename    string
	contentType string
	err         error
}

func (s *stubArchive) Store(_ context.Context, filename string, _ []byte, contentType string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.filename = filename
	s.contentType = contentType
	return "2026/08/" + filename, nil
}

type stubRecorder struct {
	results map[string]int
}

func (s *stubRecorder) Export(format, result string) {
	if s.results == nil {
		s.results = map[string]int{}
	}
	s.results[format+"/"+result]++
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)
	}
}

func stubCapture(payload []byte, err error) captureFunc {
	return func(_ context.Context, htmlPath string, _ negotiation.ExportFormat, _ config.ExportConfig) ([]byte, error) {
		if _, statErr := os.Stat(htmlPath); statErr != nil {
			return nil, statErr
		}
		return payload, err
	}
}

func testConfig(t *testing.T) config.ExportConfig {
	t.Helper()
	return config.ExportConfig{
		Scale:     2,
		Quality:   0.9,
		OutputDir: t.TempDir(),
		Timeout:   10 * time.Second,
	}
}

func TestExportWritesFile(t *testing.T) {
	cfg := testConfig(t)
	e := New(cfg, logging.NewNopLogger(),
		WithClock(fixedClock()),
		withCapture(stubCapture([]byte("pdf-bytes"), nil)),
	)

	result, err := e.Export(context.Background(), "<html></html>", negotiation.FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "negotiation-report-2026-08-30.pdf", result.Filename)
	assert.Equal(t, filepath.Join(cfg.OutputDir, result.Filename), result.Path)
	assert.Equal(t, negotiation.FormatPDF, result.Format)
	assert.Equal(t, len("pdf-bytes"), result.Size)
	assert.Empty(t, result.ArchiveKey)

	payload, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf-bytes"), payload)
}

func TestExportPNGFilename(t *testing.T) {
	e := New(testConfig(t), logging.NewNopLogger(),
		WithClock(fixedClock()),
		withCapture(stubCapture([]byte("png"), nil)),
	)

	result, err := e.Export(context.Background(), "<html></html>", negotiation.FormatPNG)
	require.NoError(t, err)
	assert.Equal(t, "negotiation-report-2026-08-30.png", result.Filename)
}

func TestExportUnsupportedFormat(t *testing.T) {
	rec := &stubRecorder{}
	e := New(testConfig(t), logging.NewNopLogger(),
		WithRecorder(rec),
		withCapture(stubCapture([]byte("x"), nil)),
	)

	_, err := e.Export(context.Background(), "<html></html>", negotiation.ExportFormat("docx"))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeExportFormatUnsupported))
	assert.Equal(t, 1, rec.results["docx/error"])
}

func TestExportCaptureFailure(t *testing.T) {
	rec := &stubRecorder{}
	e := New(testConfig(t), logging.NewNopLogger(),
		WithRecorder(rec),
		withCapture(stubCapture(nil, assert.AnError)),
	)

	_, err := e.Export(context.Background(), "<html></html>", negotiation.FormatPDF)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeExportFailed))
	assert.Equal(t, 1, rec.results["pdf/error"])
}

func TestExportArchives(t *testing.T) {
	archive := &stubArchive{}
	rec := &stubRecorder{}
	e := New(testConfig(t), logging.NewNopLogger(),
		WithClock(fixedClock()),
		WithArchiver(archive),
		WithRecorder(rec),
		withCapture(stubCapture([]byte("pdf"), nil)),
	)

	result, err := e.Export(context.Background(), "<html></html>", negotiation.FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "2026/08/negotiation-report-2026-08-30.pdf", result.ArchiveKey)
	assert.Equal(t, "application/pdf", archive.contentType)
	assert.Equal(t, 1, rec.results["pdf/ok"])
}

func TestExportArchiveFailureIsNonFatal(t *testing.T) {
	archive := &stubArchive{err: assert.AnError}
	e := New(testConfig(t), logging.NewNopLogger(),
		WithClock(fixedClock()),
		WithArchiver(archive),
		withCapture(stubCapture([]byte("pdf"), nil)),
	)

	result, err := e.Export(context.Background(), "<html></html>", negotiation.FormatPDF)
	require.NoError(t, err)
	assert.Empty(t, result.ArchiveKey)

	// The local file is still written.
	_, statErr := os.Stat(result.Path)
	assert.NoError(t, statErr)
}

func TestExportCleansUpTempHTML(t *testing.T) {
	var staged string
	capture := func(_ context.Context, htmlPath string, _ negotiation.ExportFormat, _ config.ExportConfig) ([]byte, error) {
		staged = htmlPath
		return []byte("ok"), nil
	}
	e := New(testConfig(t), logging.NewNopLogger(), withCapture(capture))

	_, err := e.Export(context.Background(), "<html></html>", negotiation.FormatPNG)
	require.NoError(t, err)
	require.NotEmpty(t, staged)

	_, statErr := os.Stat(staged)
	assert.True(t, os.IsNotExist(statErr))
}
