package client

import (
	"context"
	"net/http"
)

// GetPlan fetches the aggregate and its completion status.
func (c *Client) GetPlan(ctx context.Context) (*PlanEnvelope, error) {
	var out PlanEnvelope
	if err := c.do(ctx, http.MethodGet, "/plan", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCompletion fetches only the derived per-step completion status.
func (c *Client) GetCompletion(ctx context.Context) (*Completion, error) {
	var out Completion
	if err := c.do(ctx, http.MethodGet, "/plan/completion", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateGoals patches the goals block and returns the result.
func (c *Client) UpdateGoals(ctx context.Context, in GoalsUpdate) (*Goal, error) {
	var out Goal
	if err := c.do(ctx, http.MethodPatch, "/plan/goals", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStrategy patches the strategy block.
func (c *Client) UpdateStrategy(ctx context.Context, in StrategyUpdate) (*Strategy, error) {
	var out Strategy
	if err := c.do(ctx, http.MethodPatch, "/plan/strategy", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAnchor patches the opening-offer plan.
func (c *Client) UpdateAnchor(ctx context.Context, in AnchorUpdate) (*AnchorStrategy, error) {
	var out AnchorStrategy
	if err := c.do(ctx, http.MethodPatch, "/plan/anchor", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateReportSettings patches the export presentation settings.
func (c *Client) UpdateReportSettings(ctx context.Context, in ReportSettingsUpdate) (*ReportSettings, error) {
	var out ReportSettings
	if err := c.do(ctx, http.MethodPatch, "/plan/report-settings", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetStep records the active wizard step (1-8).
func (c *Client) SetStep(ctx context.Context, step int) error {
	return c.do(ctx, http.MethodPut, "/plan/step", map[string]int{"step": step}, nil)
}

// SetBuffer stores the bottom-line safety margin.
func (c *Client) SetBuffer(ctx context.Context, buffer float64) error {
	return c.do(ctx, http.MethodPut, "/plan/buffer", map[string]float64{"buffer": buffer}, nil)
}

// Reset replaces the plan with the defaults.
func (c *Client) Reset(ctx context.Context) (*Plan, error) {
	var out Plan
	if err := c.do(ctx, http.MethodPost, "/plan/reset", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadExample replaces the plan with a fixed example dataset ("male" or
// "female").
func (c *Client) LoadExample(ctx context.Context, variant string) (*Plan, error) {
	var out Plan
	if err := c.do(ctx, http.MethodPost, "/plan/example", map[string]string{"variant": variant}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateIssue adds a negotiation issue.
func (c *Client) CreateIssue(ctx context.Context, in IssueCreate) (*Issue, error) {
	var out Issue
	if err := c.do(ctx, http.MethodPost, "/plan/issues", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateIssue patches the issue with the given identifier.
func (c *Client) UpdateIssue(ctx context.Context, id string, in IssueUpdate) (*Issue, error) {
	var out Issue
	if err := c.do(ctx, http.MethodPatch, "/plan/issues/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteIssue removes the issue with the given identifier.
func (c *Client) DeleteIssue(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/plan/issues/"+id, nil, nil)
}

// CreateBatnaOption adds an alternative.
func (c *Client) CreateBatnaOption(ctx context.Context, in BatnaOptionCreate) (*BatnaOption, error) {
	var out BatnaOption
	if err := c.do(ctx, http.MethodPost, "/plan/batna-options", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBatnaOption patches the alternative with the given identifier.
func (c *Client) UpdateBatnaOption(ctx context.Context, id string, in BatnaOptionUpdate) (*BatnaOption, error) {
	var out BatnaOption
	if err := c.do(ctx, http.MethodPatch, "/plan/batna-options/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBatnaOption removes the alternative with the given identifier.
func (c *Client) DeleteBatnaOption(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/plan/batna-options/"+id, nil, nil)
}

// RecalculateBatna reselects the best alternative and returns it with the
// derived negotiation floor.
func (c *Client) RecalculateBatna(ctx context.Context) (*BatnaResult, error) {
	var out BatnaResult
	if err := c.do(ctx, http.MethodPost, "/plan/batna/recalculate", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateStakeholder adds a stakeholder.
func (c *Client) CreateStakeholder(ctx context.Context, in StakeholderCreate) (*Stakeholder, error) {
	var out Stakeholder
	if err := c.do(ctx, http.MethodPost, "/plan/stakeholders", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStakeholder patches the stakeholder with the given identifier.
func (c *Client) UpdateStakeholder(ctx context.Context, id string, in StakeholderUpdate) (*Stakeholder, error) {
	var out Stakeholder
	if err := c.do(ctx, http.MethodPatch, "/plan/stakeholders/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteStakeholder removes the stakeholder with the given identifier.
func (c *Client) DeleteStakeholder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/plan/stakeholders/"+id, nil, nil)
}
