package planning

import "github.com/zaoqi-icu/negoprep/internal/domain/negotiation"

// Partial-update inputs. Pointer fields distinguish "leave unchanged" (nil)
// from "set to this value", so a PATCH body can update a single field without
// clobbering the rest. Create inputs use plain fields: absent values simply
// become zero values on the new entity.

// GoalsInput updates the step-1 goals.
type GoalsInput struct {
	Primary     *string   `json:"primary,omitempty"`
	Secondary   *[]string `json:"secondary,omitempty"`
	Timeline    *string   `json:"timeline,omitempty"`
	Constraints *[]string `json:"constraints,omitempty"`
}

func (in GoalsInput) apply(g *negotiation.Goal) {
	if in.Primary != nil {
		g.Primary = *in.Primary
	}
	if in.Secondary != nil {
		g.Secondary = append([]string(nil), (*in.Secondary)...)
	}
	if in.Timeline != nil {
		g.Timeline = *in.Timeline
	}
	if in.Constraints != nil {
		g.Constraints = append([]string(nil), (*in.Constraints)...)
	}
}

// IssueInput creates a new issue; the identifier is generated by the store.
type IssueInput struct {
	Name            string  `json:"name"`
	Importance      int     `json:"importance"`
	IdealValue      float64 `json:"idealValue"`
	AcceptableValue float64 `json:"acceptableValue"`
	BottomLine      float64 `json:"bottomLine"`
	Unit            string  `json:"unit"`
	Description     string  `json:"description"`
}

// IssueUpdateInput patches an existing issue.
type IssueUpdateInput struct {
	Name            *string  `json:"name,omitempty"`
	Importance      *int     `json:"importance,omitempty"`
	IdealValue      *float64 `json:"idealValue,omitempty"`
	AcceptableValue *float64 `json:"acceptableValue,omitempty"`
	BottomLine      *float64 `json:"bottomLine,omitempty"`
	Unit            *string  `json:"unit,omitempty"`
	Description     *string  `json:"description,omitempty"`
}

func (in IssueUpdateInput) apply(i *negotiation.Issue) {
	if in.Name != nil {
		i.Name = *in.Name
	}
	if in.Importance != nil {
		i.Importance = *in.Importance
	}
	if in.IdealValue != nil {
		i.IdealValue = *in.IdealValue
	}
	if in.AcceptableValue != nil {
		i.AcceptableValue = *in.AcceptableValue
	}
	if in.BottomLine != nil {
		i.BottomLine = *in.BottomLine
	}
	if in.Unit != nil {
		i.Unit = *in.Unit
	}
	if in.Description != nil {
		i.Description = *in.Description
	}
}

// BatnaOptionInput creates a new alternative. NetValue is always derived
// from the four components; any client-supplied value is ignored.
type BatnaOptionInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Gain        float64 `json:"gain"`
	DirectCost  float64 `json:"directCost"`
	RiskPenalty float64 `json:"riskPenalty"`
	SwitchCost  float64 `json:"switchCost"`
}

// BatnaOptionUpdateInput patches an existing alternative; NetValue is
// recomputed after the patch is applied.
type BatnaOptionUpdateInput struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Gain        *float64 `json:"gain,omitempty"`
	DirectCost  *float64 `json:"directCost,omitempty"`
	RiskPenalty *float64 `json:"riskPenalty,omitempty"`
	SwitchCost  *float64 `json:"switchCost,omitempty"`
}

func (in BatnaOptionUpdateInput) apply(o *negotiation.BatnaOption) {
	if in.Name != nil {
		o.Name = *in.Name
	}
	if in.Description != nil {
		o.Description = *in.Description
	}
	if in.Gain != nil {
		o.Gain = *in.Gain
	}
	if in.DirectCost != nil {
		o.DirectCost = *in.DirectCost
	}
	if in.RiskPenalty != nil {
		o.RiskPenalty = *in.RiskPenalty
	}
	if in.SwitchCost != nil {
		o.SwitchCost = *in.SwitchCost
	}
}

// StakeholderInput creates a new stakeholder.
type StakeholderInput struct {
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Influence  int      `json:"influence"`
	Support    int      `json:"support"`
	PainPoints []string `json:"painPoints"`
	Interests  []string `json:"interests"`
}

// StakeholderUpdateInput patches an existing stakeholder.
type StakeholderUpdateInput struct {
	Name       *string   `json:"name,omitempty"`
	Role       *string   `json:"role,omitempty"`
	Influence  *int      `json:"influence,omitempty"`
	Support    *int      `json:"support,omitempty"`
	PainPoints *[]string `json:"painPoints,omitempty"`
	Interests  *[]string `json:"interests,omitempty"`
}

func (in StakeholderUpdateInput) apply(s *negotiation.Stakeholder) {
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Role != nil {
		s.Role = *in.Role
	}
	if in.Influence != nil {
		s.Influence = *in.Influence
	}
	if in.Support != nil {
		s.Support = *in.Support
	}
	if in.PainPoints != nil {
		s.PainPoints = append([]string(nil), (*in.PainPoints)...)
	}
	if in.Interests != nil {
		s.Interests = append([]string(nil), (*in.Interests)...)
	}
}

// StrategyInput patches the step-6 strategy selections.
type StrategyInput struct {
	Approach          *negotiation.Approach          `json:"approach,omitempty"`
	ConcessionPattern *negotiation.ConcessionPattern `json:"concessionPattern,omitempty"`
	TimeStrategy      *string                        `json:"timeStrategy,omitempty"`
}

func (in StrategyInput) apply(s *negotiation.Strategy) {
	if in.Approach != nil {
		s.Approach = *in.Approach
	}
	if in.ConcessionPattern != nil {
		s.ConcessionPattern = *in.ConcessionPattern
	}
	if in.TimeStrategy != nil {
		s.TimeStrategy = *in.TimeStrategy
	}
}

// AnchorInput patches the step-7 opening-offer plan. FirstOffer, when set,
// replaces the whole map.
type AnchorInput struct {
	Type          *negotiation.AnchorType `json:"type,omitempty"`
	FirstOffer    *map[string]float64     `json:"firstOffer,omitempty"`
	Justification *[]string               `json:"justification,omitempty"`
}

func (in AnchorInput) apply(a *negotiation.AnchorStrategy) {
	if in.Type != nil {
		a.Type = *in.Type
	}
	if in.FirstOffer != nil {
		m := make(map[string]float64, len(*in.FirstOffer))
		for k, v := range *in.FirstOffer {
			m[k] = v
		}
		a.FirstOffer = m
	}
	if in.Justification != nil {
		a.Justification = append([]string(nil), (*in.Justification)...)
	}
}

// ReportSettingsInput patches the export presentation settings.
type ReportSettingsInput struct {
	IncludeCharts *bool                     `json:"includeCharts,omitempty"`
	IncludeScript *bool                     `json:"includeScript,omitempty"`
	Theme         *string                   `json:"theme,omitempty"`
	Format        *negotiation.ExportFormat `json:"format,omitempty"`
}

func (in ReportSettingsInput) apply(r *negotiation.ReportSettings) {
	if in.IncludeCharts != nil {
		r.IncludeCharts = *in.IncludeCharts
	}
	if in.IncludeScript != nil {
		r.IncludeScript = *in.IncludeScript
	}
	if in.Theme != nil {
		r.Theme = *in.Theme
	}
	if in.Format != nil {
		r.Format = *in.Format
	}
}
