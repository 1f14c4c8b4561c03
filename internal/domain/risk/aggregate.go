package risk

import "math"

// Risk level labels for the organization-wide index. Higher index is
// worse — the opposite polarity of the wellbeing percent.
const (
	RiscoAlto          = "Alto"
	RiscoMedio         = "Médio"
	RiscoBaixo         = "Baixo"
	RiscoIndeterminado = "N/A"
)

const (
	limiteRiscoAlto  = 70
	limiteRiscoMedio = 40
)

// ScoredResult is one scored assessment entering the aggregation.
type ScoredResult struct {
	Kind    string
	Percent int
}

// AggregateResult is the organization-wide psychosocial risk index.
type AggregateResult struct {
	RiskIndex float64 `json:"indice_risco"`
	RiskLevel string  `json:"nivel_risco"`
}

// Aggregate combines per-test risk signals into one weighted index.
//
// The weight is applied twice: once converting the wellbeing deficit
// into a contribution, once again in the weighted mean. That reproduces
// the organization-level numbers of the legacy platform; collapsing it
// to a single application changes the output and must not be done
// without a product decision.
func Aggregate(scores []ScoredResult, weights WeightTable) AggregateResult {
	var num, den float64
	for _, s := range scores {
		w := weights.Weight(s.Kind)
		contribution := float64(100-s.Percent) * w
		num += contribution * w
		den += w
	}
	if den == 0 {
		return AggregateResult{RiskIndex: 0, RiskLevel: RiscoIndeterminado}
	}
	idx := math.Round(num/den*10) / 10
	return AggregateResult{RiskIndex: idx, RiskLevel: levelFor(idx)}
}

func levelFor(idx float64) string {
	switch {
	case idx >= limiteRiscoAlto:
		return RiscoAlto
	case idx >= limiteRiscoMedio:
		return RiscoMedio
	default:
		return RiscoBaixo
	}
}
