package finance

import (
	"math"
	"time"
)

// Tiered per-head monthly pricing by headcount band.
const (
	tierSmallPrice  = 15 // até 50 colaboradores
	tierMediumPrice = 25 // 51..200
	tierLargePrice  = 35 // acima de 200
)

// TierPrice returns the per-head monthly price for a company size.
func TierPrice(headcount int) float64 {
	switch {
	case headcount <= 50:
		return tierSmallPrice
	case headcount <= 200:
		return tierMediumPrice
	default:
		return tierLargePrice
	}
}

// Project derives MRR/ARR and simple growth/churn ratios from the
// company directory. Growth counts companies created in the current
// calendar month against active totals; churn counts deactivations in
// the same month against all companies. Projections compound the net
// monthly rate.
func Project(now time.Time, companies []Company) FinancialSnapshot {
	var (
		mrr              float64
		active           int
		createdThisMonth int
		churnedThisMonth int
	)
	for _, c := range companies {
		if sameMonth(c.CriadoEm, now) {
			createdThisMonth++
		}
		if c.DesativadaEm != nil && sameMonth(*c.DesativadaEm, now) {
			churnedThisMonth++
		}
		if !c.Ativa {
			continue
		}
		active++
		mrr += float64(c.Headcount) * TierPrice(c.Headcount)
	}

	var growth, churn float64
	if active > 0 {
		growth = float64(createdThisMonth) / float64(active)
	}
	if len(companies) > 0 {
		churn = float64(churnedThisMonth) / float64(len(companies))
	}

	ticket := 0.0
	if active > 0 {
		ticket = mrr / float64(active)
	}

	rate := 1 + growth - churn
	return FinancialSnapshot{
		MRR:                round2(mrr),
		ARR:                round2(mrr * 12),
		TicketMedio:        round2(ticket),
		CrescimentoMRR:     round2(growth * 100),
		Churn:              round2(churn * 100),
		ProjecaoProximoMes: round2(mrr * rate),
		ProjecaoTrimestre:  round2(mrr*rate + mrr*rate*rate + mrr*rate*rate*rate),
	}
}

func sameMonth(t, ref time.Time) bool {
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
