package negotiation

import (
	"time"

	"github.com/zaoqi-icu/negoprep/pkg/errors"
)

// ExampleVariant selects one of the two fixed example datasets. The wire
// values ("male" for the buyer-side persona, "female" for the recipient
// side) are kept for compatibility with previously persisted state.
type ExampleVariant string

const (
	VariantBuyer     ExampleVariant = "male"
	VariantRecipient ExampleVariant = "female"
)

// ParseExampleVariant validates a wire value.
func ParseExampleVariant(s string) (ExampleVariant, error) {
	switch ExampleVariant(s) {
	case VariantBuyer, VariantRecipient:
		return ExampleVariant(s), nil
	}
	return "", errors.Newf(errors.ErrCodePlanUnknownExample, "unknown example variant %q", s)
}

// NewExampleData returns the fixed example aggregate for the given variant.
// The result is a full replacement for the current aggregate: CurrentStep is
// reset to 1 and both timestamps are set to now. Each call builds a fresh
// value, so callers may mutate the result freely.
func NewExampleData(variant ExampleVariant, now time.Time) (*NegotiationData, error) {
	switch variant {
	case VariantBuyer:
		return newBuyerExample(now), nil
	case VariantRecipient:
		return newRecipientExample(now), nil
	}
	return nil, errors.Newf(errors.ErrCodePlanUnknownExample, "unknown example variant %q", string(variant))
}

// newBuyerExample is the 小李 case: a Shenzhen IT engineer preparing the
// groom side of a bride-price negotiation.
func newBuyerExample(now time.Time) *NegotiationData {
	d := NewDefaultData(now)

	d.Goals = Goal{
		Primary:   "把婚礼总支出控制在20万以内并于8月前举行",
		Secondary: []string{"维护双方家庭关系", "确保婚后生活质量", "避免过度负债"},
		Timeline:  "3个月内完成谈判并确定婚期",
		Constraints: []string{
			"个人存款有限", "不愿意贷款", "女方家庭期望较高", "深圳生活成本压力",
		},
	}

	d.Issues = []Issue{
		{
			ID: "1", Name: "彩礼金额", Importance: 10,
			IdealValue: 15, AcceptableValue: 18, BottomLine: 22, Unit: "万元",
			Description: "最核心的谈判议题，直接影响总预算",
		},
		{
			ID: "2", Name: "婚房署名", Importance: 8,
			IdealValue: 100, AcceptableValue: 50, BottomLine: 0, Unit: "%男方占比",
			Description: "房产证署名比例，影响未来安全感",
		},
		{
			ID: "3", Name: "三金重量", Importance: 6,
			IdealValue: 15, AcceptableValue: 24, BottomLine: 30, Unit: "克",
			Description: "金饰总重量，体现诚意但成本较高",
		},
		{
			ID: "4", Name: "家电装修预算", Importance: 7,
			IdealValue: 5, AcceptableValue: 8, BottomLine: 12, Unit: "万元",
			Description: "新房装修和家电采购预算",
		},
		{
			ID: "5", Name: "婚礼规模", Importance: 5,
			IdealValue: 150, AcceptableValue: 200, BottomLine: 300, Unit: "人",
			Description: "婚宴人数直接影响成本",
		},
	}

	d.BatnaOptions = []BatnaOption{
		{
			ID: "1", Name: "推迟婚期6个月",
			Description: "等存款增加5万，但女方家庭压力增大",
			Gain:        5, DirectCost: 0, RiskPenalty: 1, SwitchCost: 0, NetValue: 4,
		},
		{
			ID: "2", Name: "改为旅行婚礼",
			Description: "全套支出≤10万，但缺少传统仪式感",
			Gain:        10, DirectCost: 0, RiskPenalty: 3, SwitchCost: 1, NetValue: 6,
		},
		{
			ID: "3", Name: "向父母借款",
			Description: "增加5万预算空间，但增加家庭负担",
			Gain:        5, DirectCost: 0.5, RiskPenalty: 2, SwitchCost: 0.5, NetValue: 2,
		},
	}
	d.BestBatnaID = "2" // 旅行婚礼净值最高
	d.BottomLineBuffer = 3

	d.Stakeholders = []Stakeholder{
		{
			ID: "1", Name: "女方父亲", Role: "决策者", Influence: 9, Support: 4,
			PainPoints: []string{"担心女儿嫁得不体面", "在亲戚面前没面子", "彩礼低于当地平均水平"},
			Interests:  []string{"女儿婚后幸福", "家族声誉", "经济安全感"},
		},
		{
			ID: "2", Name: "女方母亲", Role: "影响者", Influence: 8, Support: 5,
			PainPoints: []string{"担心女儿受委屈", "婚礼不够隆重", "三金质量不够"},
			Interests:  []string{"女儿生活质量", "婚礼仪式感", "邻里认可"},
		},
		{
			ID: "3", Name: "小舅子(女方弟弟)", Role: "关键盟友", Influence: 7, Support: 6,
			PainPoints: []string{"姐姐嫁人后家庭关系变化", "男方是否靠谱"},
			Interests:  []string{"姐姐幸福", "家庭和谐", "个人发展机会"},
		},
		{
			ID: "4", Name: "女方本人", Role: "当事人", Influence: 6, Support: 7,
			PainPoints: []string{"父母期望与男友能力的矛盾", "婚后生活压力"},
			Interests:  []string{"爱情与现实的平衡", "未来生活稳定", "家庭和睦"},
		},
	}

	d.Strategy = Strategy{
		Approach:          ApproachCollaborative,
		ConcessionPattern: ConcessionStep,
		TimeStrategy:      "先建立信任关系，再逐步讨论具体数字；利用8月婚期的时间压力，但不急于求成",
	}

	d.AnchorStrategy = AnchorStrategy{
		Type: AnchorModerate,
		FirstOffer: map[string]float64{
			"1": 15,  // 彩礼15万
			"2": 100, // 房产男方全署名
			"3": 15,  // 三金15克
			"4": 5,   // 家电装修5万
			"5": 150, // 婚礼150人
		},
		Justification: []string{
			"根据深圳同城10起近两年彩礼调研，平均区间13-20万",
			"房产由男方全款购买，署名体现产权清晰",
			"三金选择足金材质，重量适中体现心意",
			"家电装修预算考虑实用性和经济性",
			"婚礼规模控制在亲友范围，注重质量而非数量",
		},
	}

	return d
}

// newRecipientExample is the recipient-side persona. Like the source
// dataset, it pre-fills goals and issues only; the remaining steps keep
// their defaults.
func newRecipientExample(now time.Time) *NegotiationData {
	d := NewDefaultData(now)

	d.Goals = Goal{
		Primary:   "获得体现诚意和保障的彩礼安排，确保婚后生活稳定",
		Secondary: []string{"维护家庭体面和声誉", "获得合理的经济保障", "确保婚礼隆重得体"},
		Timeline:  "2个月内达成一致",
		Constraints: []string{
			"当地彩礼习俗标准18万", "父母面子和期望", "亲戚朋友的比较压力",
		},
	}

	d.Issues = []Issue{
		{
			ID: "1", Name: "彩礼金额", Importance: 10,
			IdealValue: 20, AcceptableValue: 18, BottomLine: 15, Unit: "万元",
			Description: "体现男方诚意和家庭重视程度",
		},
		{
			ID: "2", Name: "婚房署名", Importance: 9,
			IdealValue: 50, AcceptableValue: 50, BottomLine: 30, Unit: "%女方占比",
			Description: "婚后安全感的重要保障",
		},
	}

	return d
}
