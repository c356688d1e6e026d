package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaoqi-icu/negoprep/internal/domain/negotiation"
	"github.com/zaoqi-icu/negoprep/internal/logging"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	fixed := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	g, err := NewGenerator(logging.NewNopLogger(), WithClock(func() time.Time { return fixed }))
	require.NoError(t, err)
	return g
}

func TestRenderEmptyAggregate(t *testing.T) {
	g := newTestGenerator(t)
	d := negotiation.NewDefaultData(time.Now())

	html, err := g.Render(d)
	require.NoError(t, err)

	assert.Contains(t, html, "彩礼谈判准备报告")
	assert.Contains(t, html, "生成日期: 2026/8/30")

	// Data-dependent sections are absent on an empty aggregate.
	assert.NotContains(t, html, "谈判目标")
	assert.NotContains(t, html, "关键议题")
	assert.NotContains(t, html, "BATNA分析")
	assert.NotContains(t, html, "利益相关者分析")

	// Strategy and anchor have non-empty defaults, so they do render.
	assert.Contains(t, html, "谈判策略")
	assert.Contains(t, html, "开场锚点策略")
}

func TestRenderFullExample(t *testing.T) {
	g := newTestGenerator(t)
	d, err := negotiation.NewExampleData(negotiation.VariantBuyer, time.Now())
	require.NoError(t, err)

	html, err := g.Render(d)
	require.NoError(t, err)

	assert.Contains(t, html, "谈判目标")
	assert.Contains(t, html, "把婚礼总支出控制在20万以内并于8月前举行")

	assert.Contains(t, html, "关键议题")
	assert.Contains(t, html, "彩礼金额")
	assert.Contains(t, html, "重要性: 10/10")
	assert.Contains(t, html, "15 万元")

	assert.Contains(t, html, "BATNA分析")
	assert.Contains(t, html, "最佳BATNA: 改为旅行婚礼")
	assert.Contains(t, html, "净价值: 6.0 万元")
	assert.Contains(t, html, "谈判底线: 3.0 万元 (缓冲: 3 万元)")

	assert.Contains(t, html, "利益相关者分析")
	assert.Contains(t, html, "女方父亲")

	assert.Contains(t, html, "合作型")
	assert.Contains(t, html, "阶梯让步")

	assert.Contains(t, html, "温和锚点")
	assert.Contains(t, html, "首次报价")
	assert.Contains(t, html, "支撑理由")
}

func TestRenderBestHighlight(t *testing.T) {
	g := newTestGenerator(t)
	d, err := negotiation.NewExampleData(negotiation.VariantBuyer, time.Now())
	require.NoError(t, err)

	html, err := g.Render(d)
	require.NoError(t, err)
	assert.Contains(t, html, "改为旅行婚礼 ⭐")
	assert.NotContains(t, html, "推迟婚期6个月 ⭐")
}

func TestRenderZeroBufferHidesFloor(t *testing.T) {
	g := newTestGenerator(t)
	d, err := negotiation.NewExampleData(negotiation.VariantBuyer, time.Now())
	require.NoError(t, err)
	d.BottomLineBuffer = 0

	html, err := g.Render(d)
	require.NoError(t, err)
	assert.NotContains(t, html, "谈判底线:")
}

func TestRenderDanglingBestReference(t *testing.T) {
	g := newTestGenerator(t)
	d, err := negotiation.NewExampleData(negotiation.VariantBuyer, time.Now())
	require.NoError(t, err)

	// Remove the referenced option; the best block disappears but the
	// comparison list still renders.
	d.BatnaOptions = d.BatnaOptions[:1]

	html, err := g.Render(d)
	require.NoError(t, err)
	assert.NotContains(t, html, "最佳BATNA")
	assert.Contains(t, html, "所有BATNA选项对比")
	assert.Contains(t, html, "推迟婚期6个月")
}

func TestRenderSkipsDanglingFirstOffer(t *testing.T) {
	g := newTestGenerator(t)
	d := negotiation.NewDefaultData(time.Now())
	d.Issues = []negotiation.Issue{{ID: "1", Name: "彩礼金额", Unit: "万元"}}
	d.AnchorStrategy.FirstOffer = map[string]float64{
		"1":       15,
		"deleted": 99,
	}

	html, err := g.Render(d)
	require.NoError(t, err)
	assert.Contains(t, html, "彩礼金额:")
	assert.Contains(t, html, "15 万元")
	assert.NotContains(t, html, "99")
}

func TestRenderEscapesUserContent(t *testing.T) {
	g := newTestGenerator(t)
	d := negotiation.NewDefaultData(time.Now())
	d.Goals.Primary = `<script>alert("x")</script>`
	d.Goals.Timeline = "soon"

	html, err := g.Render(d)
	require.NoError(t, err)
	assert.NotContains(t, html, `<script>alert`)
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "合作型", ApproachLabel(negotiation.ApproachCollaborative))
	assert.Equal(t, "竞争型", ApproachLabel(negotiation.ApproachCompetitive))
	assert.Equal(t, "迁就型", ApproachLabel(negotiation.ApproachAccommodating))

	assert.Equal(t, "线性让步", ConcessionLabel(negotiation.ConcessionLinear))
	assert.Equal(t, "递减让步", ConcessionLabel(negotiation.ConcessionExponential))
	assert.Equal(t, "阶梯让步", ConcessionLabel(negotiation.ConcessionStep))

	assert.Contains(t, AnchorLabel(negotiation.AnchorAggressive), "激进锚点")
	assert.Contains(t, AnchorLabel(negotiation.AnchorModerate), "温和锚点")
	assert.Contains(t, AnchorLabel(negotiation.AnchorConservative), "保守锚点")
}
