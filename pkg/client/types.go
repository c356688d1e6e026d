package client

import "time"

// Wire types mirroring the API's JSON shapes.

// Goal is the step-1 objectives block.
type Goal struct {
	Primary     string   `json:"primary"`
	Secondary   []string `json:"secondary"`
	Timeline    string   `json:"timeline"`
	Constraints []string `json:"constraints"`
}

// Issue is one negotiable dimension.
type Issue struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Importance      int     `json:"importance"`
	IdealValue      float64 `json:"idealValue"`
	AcceptableValue float64 `json:"acceptableValue"`
	BottomLine      float64 `json:"bottomLine"`
	Unit            string  `json:"unit"`
	Description     string  `json:"description"`
}

// BatnaOption is one alternative to a negotiated agreement.
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

// Stakeholder is a person relevant to the outcome.
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
	Approach          string `json:"approach"`
	ConcessionPattern string `json:"concessionPattern"`
	TimeStrategy      string `json:"timeStrategy"`
}

// AnchorStrategy holds the step-7 opening-offer plan.
type AnchorStrategy struct {
	Type          string             `json:"type"`
	FirstOffer    map[string]float64 `json:"firstOffer"`
	Justification []string           `json:"justification"`
}

// ReportSettings controls export presentation.
type ReportSettings struct {
	IncludeCharts bool   `json:"includeCharts"`
	IncludeScript bool   `json:"includeScript"`
	Theme         string `json:"theme"`
	Format        string `json:"format"`
}

// Metadata carries aggregate bookkeeping.
type Metadata struct {
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	CurrentStep int       `json:"currentStep"`
	IsComplete  bool      `json:"isComplete"`
}

// Plan is the whole negotiation aggregate.
type Plan struct {
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

// Completion reports which preparation steps have the data they need.
type Completion struct {
	Goals        bool `json:"goals"`
	Issues       bool `json:"issues"`
	Batna        bool `json:"batna"`
	Stakeholders bool `json:"stakeholders"`
	Strategy     bool `json:"strategy"`
	Anchor       bool `json:"anchor"`
}

// PlanEnvelope is the GET /plan payload.
type PlanEnvelope struct {
	Data       *Plan      `json:"data"`
	Completion Completion `json:"completion"`
}

// BatnaResult is the recalculation payload.
type BatnaResult struct {
	Best   *BatnaOption `json:"best"`
	Floor  float64      `json:"floor"`
	Buffer float64      `json:"buffer"`
}

// ExportResult describes one completed export.
type ExportResult struct {
	Filename   string `json:"filename"`
	Path       string `json:"path"`
	Format     string `json:"format"`
	Size       int    `json:"size"`
	ArchiveKey string `json:"archiveKey,omitempty"`
}

// Partial-update inputs; nil pointers leave the field unchanged.

// GoalsUpdate patches the goals block.
type GoalsUpdate struct {
	Primary     *string   `json:"primary,omitempty"`
	Secondary   *[]string `json:"secondary,omitempty"`
	Timeline    *string   `json:"timeline,omitempty"`
	Constraints *[]string `json:"constraints,omitempty"`
}

// IssueCreate creates an issue.
type IssueCreate struct {
	Name            string  `json:"name"`
	Importance      int     `json:"importance"`
	IdealValue      float64 `json:"idealValue"`
	AcceptableValue float64 `json:"acceptableValue"`
	BottomLine      float64 `json:"bottomLine"`
	Unit            string  `json:"unit"`
	Description     string  `json:"description"`
}

// IssueUpdate patches an issue.
type IssueUpdate struct {
	Name            *string  `json:"name,omitempty"`
	Importance      *int     `json:"importance,omitempty"`
	IdealValue      *float64 `json:"idealValue,omitempty"`
	AcceptableValue *float64 `json:"acceptableValue,omitempty"`
	BottomLine      *float64 `json:"bottomLine,omitempty"`
	Unit            *string  `json:"unit,omitempty"`
	Description     *string  `json:"description,omitempty"`
}

// BatnaOptionCreate creates an alternative; the net value is derived
// server-side.
type BatnaOptionCreate struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Gain        float64 `json:"gain"`
	DirectCost  float64 `json:"directCost"`
	RiskPenalty float64 `json:"riskPenalty"`
	SwitchCost  float64 `json:"switchCost"`
}

// BatnaOptionUpdate patches an alternative.
type BatnaOptionUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Gain        *float64 `json:"gain,omitempty"`
	DirectCost  *float64 `json:"directCost,omitempty"`
	RiskPenalty *float64 `json:"riskPenalty,omitempty"`
	SwitchCost  *float64 `json:"switchCost,omitempty"`
}

// StakeholderCreate creates a stakeholder.
type StakeholderCreate struct {
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Influence  int      `json:"influence"`
	Support    int      `json:"support"`
	PainPoints []string `json:"painPoints"`
	Interests  []string `json:"interests"`
}

// StakeholderUpdate patches a stakeholder.
type StakeholderUpdate struct {
	Name       *string   `json:"name,omitempty"`
	Role       *string   `json:"role,omitempty"`
	Influence  *int      `json:"influence,omitempty"`
	Support    *int      `json:"support,omitempty"`
	PainPoints *[]string `json:"painPoints,omitempty"`
	Interests  *[]string `json:"interests,omitempty"`
}

// StrategyUpdate patches the strategy block.
type StrategyUpdate struct {
	Approach          *string `json:"approach,omitempty"`
	ConcessionPattern *string `json:"concessionPattern,omitempty"`
	TimeStrategy      *string `json:"timeStrategy,omitempty"`
}

// AnchorUpdate patches the anchor block.
type AnchorUpdate struct {
	Type          *string             `json:"type,omitempty"`
	FirstOffer    *map[string]float64 `json:"firstOffer,omitempty"`
	Justification *[]string           `json:"justification,omitempty"`
}

// ReportSettingsUpdate patches the report settings.
type ReportSettingsUpdate struct {
	IncludeCharts *bool   `json:"includeCharts,omitempty"`
	IncludeScript *bool   `json:"includeScript,omitempty"`
	Theme         *string `json:"theme,omitempty"`
	Format        *string `json:"format,omitempty"`
}
