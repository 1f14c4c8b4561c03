package finance

import "time"

// Company é a visão mínima de uma empresa para projeção financeira.
type Company struct {
	ID            string     `json:"id"`
	Nome          string     `json:"nome"`
	Ativa         bool       `json:"ativa"`
	Headcount     int        `json:"headcount"`
	CriadoEm      time.Time  `json:"criado_em"`
	DesativadaEm  *time.Time `json:"desativada_em,omitempty"`
}

// FinancialSnapshot is the derived adoption/revenue picture.
type FinancialSnapshot struct {
	MRR                float64 `json:"mrr"`
	ARR                float64 `json:"arr"`
	TicketMedio        float64 `json:"ticketMedio"`
	CrescimentoMRR     float64 `json:"crescimentoMRR"`
	Churn              float64 `json:"churn"`
	ProjecaoProximoMes float64 `json:"projecaoProximoMes"`
	ProjecaoTrimestre  float64 `json:"projecaoTrimestre"`
}
