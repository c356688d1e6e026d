// End-to-end tests driving the full HTTP stack through the public SDK: real
// router, store and report generator over a file-backed snapshot, with only
// the browser capture stubbed out.
package e2e_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaoqi-icu/negoprep/internal/domain/negotiation"
	"github.com/zaoqi-icu/negoprep/internal/export"
	api "github.com/zaoqi-icu/negoprep/internal/interfaces/http"
	"github.com/zaoqi-icu/negoprep/internal/logging"
	"github.com/zaoqi-icu/negoprep/internal/planning"
	"github.com/zaoqi-icu/negoprep/internal/reporting"
	"github.com/zaoqi-icu/negoprep/internal/storage/file"
	"github.com/zaoqi-icu/negoprep/pkg/client"
)

// stubExporter records the last requested format without driving a browser.
type stubExporter struct {
	lastFormat negotiation.ExportFormat
}

func (s *stubExporter) Export(_ context.Context, _ string, format negotiation.ExportFormat) (*export.Result, error) {
	s.lastFormat = format
	return &export.Result{
		Filename: "negotiation-report-2026-08-30." + string(format),
		Format:   format,
		Size:     1024,
	}, nil
}

func startServer(t *testing.T) (*client.Client, *stubExporter) {
	t.Helper()
	ctx := context.Background()
	log := logging.NewNopLogger()

	snap, err := file.New(t.TempDir(), "negotiation-data", log)
	require.NoError(t, err)
	store := planning.NewStore(ctx, snap, log)

	gen, err := reporting.NewGenerator(log)
	require.NoError(t, err)

	exporter := &stubExporter{}
	router := api.NewRouter(api.RouterConfig{
		Mode:   "test",
		Plan:   api.NewPlanHandler(store, log),
		Report: api.NewReportHandler(store, gen, exporter, log),
		Health: api.NewHealthHandler("e2e"),
		Log:    log,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return client.New(srv.URL), exporter
}

// TestWizardFlow walks the whole preparation wizard: goals, issues,
// alternatives, stakeholders, strategy, anchor, report.
func TestWizardFlow(t *testing.T) {
	ctx := context.Background()
	c, _ := startServer(t)

	// Step 1: goals.
	primary := "以合理彩礼达成双方满意的婚约"
	timeline := "3个月内"
	goal, err := c.UpdateGoals(ctx, client.GoalsUpdate{Primary: &primary, Timeline: &timeline})
	require.NoError(t, err)
	assert.Equal(t, primary, goal.Primary)

	// Step 2: issues.
	issue, err := c.CreateIssue(ctx, client.IssueCreate{
		Name: "彩礼金额", Importance: 10,
		IdealValue: 15, AcceptableValue: 20, BottomLine: 25, Unit: "万元",
	})
	require.NoError(t, err)
	require.NotEmpty(t, issue.ID)

	// Step 3: alternatives. Net values: 10-2-1-1 = 6 and 8-2-1-1 = 4.
	strong, err := c.CreateBatnaOption(ctx, client.BatnaOptionCreate{
		Name: "推迟婚期", Gain: 10, DirectCost: 2, RiskPenalty: 1, SwitchCost: 1,
	})
	require.NoError(t, err)
	assert.InDelta(t, 6.0, strong.NetValue, 1e-9)

	weak, err := c.CreateBatnaOption(ctx, client.BatnaOptionCreate{
		Name: "简化仪式", Gain: 8, DirectCost: 2, RiskPenalty: 1, SwitchCost: 1,
	})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, weak.NetValue, 1e-9)

	require.NoError(t, c.SetBuffer(ctx, 3))

	result, err := c.RecalculateBatna(ctx)
	require.NoError(t, err)
	require.NotNil(t, result.Best)
	assert.Equal(t, strong.ID, result.Best.ID)
	assert.InDelta(t, 6.0, result.Best.NetValue, 1e-9)
	assert.InDelta(t, 3.0, result.Floor, 1e-9)
	assert.InDelta(t, 3.0, result.Buffer, 1e-9)

	// Step 4: stakeholders.
	st, err := c.CreateStakeholder(ctx, client.StakeholderCreate{
		Name: "女方父亲", Role: "决策者", Influence: 9, Support: 5,
		PainPoints: []string{"担心女儿婚后生活质量"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, st.ID)

	// Steps 5-6: strategy and anchor.
	approach := "collaborative"
	_, err = c.UpdateStrategy(ctx, client.StrategyUpdate{Approach: &approach})
	require.NoError(t, err)

	anchorType := "moderate"
	offers := map[string]float64{issue.ID: 15}
	_, err = c.UpdateAnchor(ctx, client.AnchorUpdate{Type: &anchorType, FirstOffer: &offers})
	require.NoError(t, err)

	require.NoError(t, c.SetStep(ctx, 7))

	// Completion reflects every populated section.
	envelope, err := c.GetPlan(ctx)
	require.NoError(t, err)
	assert.True(t, envelope.Completion.Goals)
	assert.True(t, envelope.Completion.Issues)
	assert.True(t, envelope.Completion.Batna)
	assert.True(t, envelope.Completion.Stakeholders)
	assert.True(t, envelope.Completion.Strategy)
	assert.True(t, envelope.Completion.Anchor)
	assert.Equal(t, 7, envelope.Data.Metadata.CurrentStep)
	assert.Equal(t, strong.ID, envelope.Data.BestBatnaID)

	completion, err := c.GetCompletion(ctx)
	require.NoError(t, err)
	assert.True(t, completion.Goals && completion.Issues && completion.Batna)

	// Step 7: report.
	html, err := c.GetReportHTML(ctx)
	require.NoError(t, err)
	assert.Contains(t, html, primary)
	assert.Contains(t, html, "推迟婚期")
	assert.Contains(t, html, "净价值: 6.0")
	assert.Contains(t, html, "谈判底线: 3.0")
	assert.Contains(t, html, "女方父亲")
}

func TestExampleResetCycle(t *testing.T) {
	ctx := context.Background()
	c, _ := startServer(t)

	plan, err := c.LoadExample(ctx, "male")
	require.NoError(t, err)
	assert.Len(t, plan.Issues, 5)
	assert.Equal(t, "2", plan.BestBatnaID)
	assert.Equal(t, 1, plan.Metadata.CurrentStep)

	plan, err = c.Reset(ctx)
	require.NoError(t, err)
	assert.Empty(t, plan.Issues)
	assert.Empty(t, plan.BestBatnaID)

	_, err = c.LoadExample(ctx, "unknown")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "PLAN_004", apiErr.Code)
}

func TestExportThroughSDK(t *testing.T) {
	ctx := context.Background()
	c, exporter := startServer(t)

	result, err := c.ExportReport(ctx, "png")
	require.NoError(t, err)
	assert.Equal(t, negotiation.FormatPNG, exporter.lastFormat)
	assert.Equal(t, "png", result.Format)
	assert.True(t, strings.HasPrefix(result.Filename, "negotiation-report-"))

	// Empty format falls back to the stored report setting (pdf by default).
	_, err = c.ExportReport(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, negotiation.FormatPDF, exporter.lastFormat)
}

func TestRemovingBestLeavesDanglingReference(t *testing.T) {
	ctx := context.Background()
	c, _ := startServer(t)

	option, err := c.CreateBatnaOption(ctx, client.BatnaOptionCreate{Name: "候选", Gain: 5})
	require.NoError(t, err)

	result, err := c.RecalculateBatna(ctx)
	require.NoError(t, err)
	require.NotNil(t, result.Best)

	require.NoError(t, c.DeleteBatnaOption(ctx, option.ID))

	// Removal never reselects; the stale reference resolves to no best.
	envelope, err := c.GetPlan(ctx)
	require.NoError(t, err)
	assert.Equal(t, option.ID, envelope.Data.BestBatnaID)
	assert.Empty(t, envelope.Data.BatnaOptions)
	assert.False(t, envelope.Completion.Batna)
}
