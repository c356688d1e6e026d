// Package reporting renders the negotiation preparation report. The output
// is a self-contained HTML document: sections appear only when the aggregate
// holds data for them, the best alternative is highlighted with its derived
// negotiation floor, and first-offer entries pointing at deleted issues are
// silently skipped.
package reporting

import (
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/zaoqi-icu/negoprep/internal/domain/negotiation"
	"github.com/zaoqi-icu/negoprep/internal/logging"
	apperrors "github.com/zaoqi-icu/negoprep/pkg/errors"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

// Generator renders reports from negotiation aggregates. It is stateless
// apart from the clock and safe for concurrent use.
type Generator struct {
	tmpl  *template.Template
	clock func() time.Time
	log   logging.Logger
}

// Option customises a Generator.
type Option func(*Generator)

// WithClock overrides the time source used for the generation date.
func WithClock(clock func() time.Time) Option {
	return func(g *Generator) { g.clock = clock }
}

// NewGenerator parses the embedded template and returns a Generator.
func NewGenerator(log logging.Logger, opts ...Option) (*Generator, error) {
	tmpl, err := template.New("report.html.tmpl").
		Funcs(template.FuncMap{"num": formatNumber}).
		ParseFS(templateFS, "templates/report.html.tmpl")
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeReportRenderFailed, "failed to parse report template")
	}
	g := &Generator{
		tmpl:  tmpl,
		clock: time.Now,
		log:   log.Named("reporting"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Render produces the full HTML report document for the aggregate.
func (g *Generator) Render(d *negotiation.NegotiationData) (string, error) {
	var sb strings.Builder
	if err := g.tmpl.Execute(&sb, buildView(d, g.clock())); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeReportRenderFailed, "failed to render report")
	}
	return sb.String(), nil
}

// formatNumber renders a float the way the wizard displays it: no trailing
// zeros, no exponent.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type reportView struct {
	GeneratedAt  string
	Goals        *goalsView
	Issues       []negotiation.Issue
	Batna        *batnaView
	Stakeholders []negotiation.Stakeholder
	Strategy     *strategyView
	Anchor       *anchorView
}

type goalsView struct {
	Primary     string
	Secondary   []string
	Timeline    string
	Constraints []string
}

type batnaView struct {
	Best    *bestView
	Options []optionView
}

type bestView struct {
	Name        string
	Description string
	NetValue    string
	Floor       string // empty hides the floor line
	Buffer      string
}

type optionView struct {
	negotiation.BatnaOption
	NetValue string
	IsBest   bool
	Negative bool
}

type strategyView struct {
	Approach     string
	Concession   string
	TimeStrategy string
}

type anchorView struct {
	TypeLabel     string
	FirstOffers   []firstOfferView
	Justification []string
}

type firstOfferView struct {
	IssueName string
	Value     float64
	Unit      string
}

func buildView(d *negotiation.NegotiationData, now time.Time) reportView {
	view := reportView{
		GeneratedAt:  fmt.Sprintf("%d/%d/%d", now.Year(), int(now.Month()), now.Day()),
		Issues:       d.Issues,
		Stakeholders: d.Stakeholders,
	}

	if d.Goals.Primary != "" {
		view.Goals = &goalsView{
			Primary:     d.Goals.Primary,
			Secondary:   d.Goals.Secondary,
			Timeline:    d.Goals.Timeline,
			Constraints: d.Goals.Constraints,
		}
	}

	if len(d.BatnaOptions) > 0 {
		view.Batna = buildBatnaView(d)
	}

	if d.Strategy.Approach != "" {
		view.Strategy = &strategyView{
			Approach:     ApproachLabel(d.Strategy.Approach),
			Concession:   ConcessionLabel(d.Strategy.ConcessionPattern),
			TimeStrategy: d.Strategy.TimeStrategy,
		}
	}

	if d.AnchorStrategy.Type != "" {
		view.Anchor = buildAnchorView(d)
	}

	return view
}

func buildBatnaView(d *negotiation.NegotiationData) *batnaView {
	best := d.BestBatna()

	bv := &batnaView{}
	if best != nil {
		bv.Best = &bestView{
			Name:        best.Name,
			Description: best.Description,
			NetValue:    fmt.Sprintf("%.1f", best.NetValue),
		}
		if d.BottomLineBuffer != 0 {
			floor := negotiation.ComputeFloor(best, d.BottomLineBuffer)
			bv.Best.Floor = fmt.Sprintf("%.1f", floor)
			bv.Best.Buffer = formatNumber(d.BottomLineBuffer)
		}
	}

	for _, o := range d.BatnaOptions {
		bv.Options = append(bv.Options, optionView{
			BatnaOption: o,
			NetValue:    fmt.Sprintf("%.1f", o.NetValue),
			IsBest:      best != nil && o.ID == best.ID,
			Negative:    o.NetValue < 0,
		})
	}
	return bv
}

// buildAnchorView resolves first-offer entries against the issue collection
// in issue order, dropping entries whose issue no longer exists.
func buildAnchorView(d *negotiation.NegotiationData) *anchorView {
	av := &anchorView{
		TypeLabel:     AnchorLabel(d.AnchorStrategy.Type),
		Justification: d.AnchorStrategy.Justification,
	}
	for _, issue := range d.Issues {
		value, ok := d.AnchorStrategy.FirstOffer[issue.ID]
		if !ok {
			continue
		}
		av.FirstOffers = append(av.FirstOffers, firstOfferView{
			IssueName: issue.Name,
			Value:     value,
			Unit:      issue.Unit,
		})
	}
	return av
}
