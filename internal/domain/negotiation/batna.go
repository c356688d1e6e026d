package negotiation

// This file implements the BATNA evaluator: net-value derivation, best-option
// selection, and the negotiation floor. All functions are pure; absence of
// data yields defined defaults (nil or 0), never an error. Inputs are not
// validated — negative costs simply add to the net value, and a negative
// buffer widens the floor instead of narrowing it.

// ComputeNetValue returns gain − direct cost − risk penalty − switch cost
// for the given option.
func ComputeNetValue(o BatnaOption) float64 {
	return o.Gain - o.DirectCost - o.RiskPenalty - o.SwitchCost
}

// SelectBest returns the option with the strictly maximal NetValue, using a
// left-to-right fold where a later option only replaces the current best when
// its net value is strictly greater — ties keep the earliest-seen option.
// Returns nil for an empty collection. The returned pointer addresses a copy,
// never the caller's slice.
func SelectBest(options []BatnaOption) *BatnaOption {
	if len(options) == 0 {
		return nil
	}
	best := options[0]
	for _, o := range options[1:] {
		if o.NetValue > best.NetValue {
			best = o
		}
	}
	return &best
}

// ComputeFloor derives the negotiation floor from the best alternative:
// best.NetValue − buffer. With no alternative yet (best == nil) the floor
// is 0 regardless of the buffer.
func ComputeFloor(best *BatnaOption, buffer float64) float64 {
	if best == nil {
		return 0
	}
	return best.NetValue - buffer
}
