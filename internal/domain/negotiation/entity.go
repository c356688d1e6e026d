// Package negotiation implements the negotiation-preparation bounded
// context: the NegotiationData aggregate and its owned entities, the BATNA
// evaluator, the fixed example datasets, and the derived step-completion
// checks. All business rules live here; persistence and presentation are
// handled by separate layers.
package negotiation

import "time"

// Wizard step numbers. The aggregate stores the active step in Metadata;
// range validation belongs to the navigating layer, not to this package.
const (
	StepGoals        = 1
	StepIssues       = 2
	StepValueRanges  = 3
	StepBatna        = 4
	StepStakeholders = 5
	StepStrategy     = 6
	StepAnchor       = 7
	StepReview       = 8
)

// Approach is the overall negotiation posture.
type Approach string

const (
	ApproachCollaborative Approach = "collaborative"
	ApproachCompetitive   Approach = "competitive"
	ApproachAccommodating Approach = "accommodating"
)

// ConcessionPattern describes how concessions are paced over the course of
// the negotiation.
type ConcessionPattern string

const (
	ConcessionLinear      ConcessionPattern = "linear"
	ConcessionExponential ConcessionPattern = "exponential"
	ConcessionStep        ConcessionPattern = "step"
)

// AnchorType classifies the opening-offer posture.
type AnchorType string

const (
	AnchorAggressive   AnchorType = "aggressive"
	AnchorModerate     AnchorType = "moderate"
	AnchorConservative AnchorType = "conservative"
)

// ExportFormat selects the report export output.
type ExportFormat string

const (
	FormatPNG ExportFormat = "png"
	FormatPDF ExportFormat = "pdf"
)

// Goal captures the negotiation objectives set in step 1. An empty Primary
// or Timeline marks the step incomplete; nothing further is enforced.
type Goal struct {
	Primary     string   `json:"primary"`
	Secondary   []string `json:"secondary"`
	Timeline    string   `json:"timeline"`
	Constraints []string `json:"constraints"`
}

// Issue is a single negotiable dimension with an ideal, acceptable, and
// bottom-line numeric value. No ordering is enforced between the three
// values: the UI assumes ideal ≥ acceptable ≥ bottom line for a "maximize"
// framing, but a bottom line above the ideal value is stored without error.
type Issue struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Importance      int     `json:"importance"` // intended range 1–10, not enforced
	IdealValue      float64 `json:"idealValue"`
	AcceptableValue float64 `json:"acceptableValue"`
	BottomLine      float64 `json:"bottomLine"`
	Unit            string  `json:"unit"`
	Description     string  `json:"description"`
}

// BatnaOption is one alternative to a negotiated agreement. NetValue is
// derived from the four components and recomputed on every create/update;
// it is never stored independently of its source fields.
type BatnaOption struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Gain        float64 `json:"gain"`
	DirectCost  float64 `json:"directCost"`
	RiskPenalty float64 `json:"riskPenalty"`
	SwitchCost  float64 `json:"switchCost"`
	NetValue    float64 `json:"netValue"`
}

// Stakeholder is a person relevant to the outcome, scored by influence and
// support (intended range 1–10, not enforced).
type Stakeholder struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Influence  int      `json:"influence"`
	Support    int      `json:"support"`
	PainPoints []string `json:"painPoints"`
	Interests  []string `json:"interests"`
}

// Strategy holds the step-6 selections.
type Strategy struct {
	Approach          Approach          `json:"approach"`
	ConcessionPattern ConcessionPattern `json:"concessionPattern"`
	TimeStrategy      string            `json:"timeStrategy"`
}

// AnchorStrategy holds the step-7 opening-offer plan. FirstOffer maps Issue
// identifiers to proposed first-offer values; keys are expected to be a
// subset of existing issue IDs but no referential integrity is enforced —
// entries pointing at deleted issues stay behind and are skipped at render.
type AnchorStrategy struct {
	Type          AnchorType         `json:"type"`
	FirstOffer    map[string]float64 `json:"firstOffer"`
	Justification []string           `json:"justification"`
}

// ReportSettings controls export presentation only; no business logic reads it.
type ReportSettings struct {
	IncludeCharts bool         `json:"includeCharts"`
	IncludeScript bool         `json:"includeScript"`
	Theme         string       `json:"theme"` // "light" | "dark"
	Format        ExportFormat `json:"format"`
}

// Metadata carries aggregate bookkeeping. IsComplete is kept for wire
// compatibility but is never written true by any operation; completion is a
// derived property (see CompletionStatus).
type Metadata struct {
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	CurrentStep int       `json:"currentStep"`
	IsComplete  bool      `json:"isComplete"`
}

// NegotiationData is the aggregate root: it exclusively owns one instance of
// every entity above. Issues, BatnaOptions and Stakeholders are ordered
// collections keyed by generated identifier. BestBatnaID references the
// option selected by the most recent CalculateBestBatna; it is not kept in
// sync automatically (see the store contract).
type NegotiationData struct {
	Goals            Goal           `json:"goals"`
	Issues           []Issue        `json:"issues"`
	BatnaOptions     []BatnaOption  `json:"batnaOptions"`
	BestBatnaID      string         `json:"bestBatnaId,omitempty"`
	BottomLineBuffer float64        `json:"bottomLineBuffer"`
	Stakeholders     []Stakeholder  `json:"stakeholders"`
	Strategy         Strategy       `json:"strategy"`
	AnchorStrategy   AnchorStrategy `json:"anchorStrategy"`
	ReportSettings   ReportSettings `json:"reportSettings"`
	Metadata         Metadata       `json:"metadata"`
}

// NewDefaultData returns the initial aggregate used on first start and after
// ResetData. Both timestamps are set to now.
func NewDefaultData(now time.Time) *NegotiationData {
	return &NegotiationData{
		Goals: Goal{
			Secondary:   []string{},
			Constraints: []string{},
		},
		Issues:       []Issue{},
		BatnaOptions: []BatnaOption{},
		Stakeholders: []Stakeholder{},
		Strategy: Strategy{
			Approach:          ApproachCollaborative,
			ConcessionPattern: ConcessionLinear,
		},
		AnchorStrategy: AnchorStrategy{
			Type:          AnchorModerate,
			FirstOffer:    map[string]float64{},
			Justification: []string{},
		},
		ReportSettings: ReportSettings{
			IncludeCharts: true,
			IncludeScript: true,
			Theme:         "light",
			Format:        FormatPDF,
		},
		Metadata: Metadata{
			CreatedAt:   now,
			UpdatedAt:   now,
			CurrentStep: StepGoals,
		},
	}
}

// IssueByID returns the issue with the given identifier, or nil.
func (d *NegotiationData) IssueByID(id string) *Issue {
	for i := range d.Issues {
		if d.Issues[i].ID == id {
			return &d.Issues[i]
		}
	}
	return nil
}

// BatnaOptionByID returns the option with the given identifier, or nil.
func (d *NegotiationData) BatnaOptionByID(id string) *BatnaOption {
	for i := range d.BatnaOptions {
		if d.BatnaOptions[i].ID == id {
			return &d.BatnaOptions[i]
		}
	}
	return nil
}

// StakeholderByID returns the stakeholder with the given identifier, or nil.
func (d *NegotiationData) StakeholderByID(id string) *Stakeholder {
	for i := range d.Stakeholders {
		if d.Stakeholders[i].ID == id {
			return &d.Stakeholders[i]
		}
	}
	return nil
}

// BestBatna resolves BestBatnaID against the current option collection.
// Returns nil when no best option has been calculated or the referenced
// option has since been removed.
func (d *NegotiationData) BestBatna() *BatnaOption {
	if d.BestBatnaID == "" {
		return nil
	}
	return d.BatnaOptionByID(d.BestBatnaID)
}

// Clone returns a deep copy of the aggregate. The store hands out clones so
// callers can never alias its internal state.
func (d *NegotiationData) Clone() *NegotiationData {
	if d == nil {
		return nil
	}
	out := *d

	out.Goals.Secondary = append([]string(nil), d.Goals.Secondary...)
	out.Goals.Constraints = append([]string(nil), d.Goals.Constraints...)

	out.Issues = append([]Issue(nil), d.Issues...)
	out.BatnaOptions = append([]BatnaOption(nil), d.BatnaOptions...)

	out.Stakeholders = make([]Stakeholder, len(d.Stakeholders))
	for i, s := range d.Stakeholders {
		cp := s
		cp.PainPoints = append([]string(nil), s.PainPoints...)
		cp.Interests = append([]string(nil), s.Interests...)
		out.Stakeholders[i] = cp
	}

	out.AnchorStrategy.FirstOffer = make(map[string]float64, len(d.AnchorStrategy.FirstOffer))
	for k, v := range d.AnchorStrategy.FirstOffer {
		out.AnchorStrategy.FirstOffer[k] = v
	}
	out.AnchorStrategy.Justification = append([]string(nil), d.AnchorStrategy.Justification...)

	return &out
}
