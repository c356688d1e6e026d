package export

import (
	"context"
	"io"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/zaoqi-icu/negoprep/internal/config"
	"github.com/zaoqi-icu/negoprep/internal/domain/negotiation"
)

// Report layout is a centred 800px column; the viewport leaves room for its
// horizontal padding.
const (
	viewportWidth  = 840
	viewportHeight = 1200
)

// A4 portrait dimensions and margin for PDF output.
const (
	pdfPageWidthIn  = 8.27
	pdfPageHeightIn = 11.69
	pdfMarginIn     = 10.0 / 25.4 // 10mm
)

// captureWithBrowser launches a headless browser, loads the staged report
// over file:// and captures it in the requested format. One browser per
// export keeps the engine stateless; export volume is a single user clicking
// a button.
func captureWithBrowser(ctx context.Context, htmlPath string, format negotiation.ExportFormat, cfg config.ExportConfig) ([]byte, error) {
	l := launcher.New().Headless(true)
	if cfg.BrowserBin != "" {
		l = l.Bin(cfg.BrowserBin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, err
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, err
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "file://" + htmlPath})
	if err != nil {
		return nil, err
	}

	if err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             viewportWidth,
		Height:            viewportHeight,
		DeviceScaleFactor: cfg.Scale,
	}).Call(page); err != nil {
		return nil, err
	}

	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	if format == negotiation.FormatPNG {
		return page.Screenshot(true, &proto.PageCaptureScreenshot{
			Format: proto.PageCaptureScreenshotFormatPng,
		})
	}
	return capturePDF(page)
}

func capturePDF(page *rod.Page) ([]byte, error) {
	width := pdfPageWidthIn
	height := pdfPageHeightIn
	margin := pdfMarginIn

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      &width,
		PaperHeight:     &height,
		MarginTop:       &margin,
		MarginBottom:    &margin,
		MarginLeft:      &margin,
		MarginRight:     &margin,
		PrintBackground: true,
	})
	if err != nil {
		return nil, err
	}
	return io.ReadAll(stream)
}
