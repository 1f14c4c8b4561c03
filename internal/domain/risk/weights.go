package risk

// WeightTable maps a canonical test kind to its contribution weight in
// the organization risk index. Immutable after process start.
type WeightTable map[string]float64

// DefaultWeights returns the statutory weighting: harassment findings
// weigh heavier, maturity/governance diagnostics slightly lighter,
// everything else neutral.
func DefaultWeights() WeightTable {
	return WeightTable{
		"assedio": 1.3,
		"mgrp":    0.95,
	}
}

// Weight resolves a kind's weight; unknown kinds default to 1.0.
func (t WeightTable) Weight(kind string) float64 {
	if w, ok := t[kind]; ok {
		return w
	}
	return 1.0
}
