package reporting

import "github.com/zaoqi-icu/negoprep/internal/domain/negotiation"

// Chinese display labels for the strategy enums. Unknown values fall through
// to the last label of each group, matching the renderer the report layout
// was ported from.

// ApproachLabel returns the display name for a negotiation approach.
func ApproachLabel(a negotiation.Approach) string {
	switch a {
	case negotiation.ApproachCollaborative:
		return "合作型"
	case negotiation.ApproachCompetitive:
		return "竞争型"
	default:
		return "迁就型"
	}
}

// ConcessionLabel returns the display name for a concession pattern.
func ConcessionLabel(p negotiation.ConcessionPattern) string {
	switch p {
	case negotiation.ConcessionLinear:
		return "线性让步"
	case negotiation.ConcessionExponential:
		return "递减让步"
	default:
		return "阶梯让步"
	}
}

// AnchorLabel returns the display description for an anchor type.
func AnchorLabel(t negotiation.AnchorType) string {
	switch t {
	case negotiation.AnchorAggressive:
		return "激进锚点 - 设定较高的初始报价，为后续让步留出空间"
	case negotiation.AnchorModerate:
		return "温和锚点 - 设定合理的初始报价，平衡期望与现实"
	default:
		return "保守锚点 - 设定较为保守的初始报价，降低谈判风险"
	}
}
