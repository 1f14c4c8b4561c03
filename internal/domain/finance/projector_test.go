package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTierPrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 15.0, TierPrice(1))
	assert.Equal(t, 15.0, TierPrice(50))
	assert.Equal(t, 25.0, TierPrice(51))
	assert.Equal(t, 25.0, TierPrice(200))
	assert.Equal(t, 35.0, TierPrice(201))
	assert.Equal(t, 35.0, TierPrice(5000))
}

func TestProjectEmptyDirectory(t *testing.T) {
	t.Parallel()

	got := Project(time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), nil)
	assert.Equal(t, FinancialSnapshot{}, got)
}

func TestProjectStableBase(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	old := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	companies := []Company{
		{ID: "a", Ativa: true, Headcount: 40, CriadoEm: old},  // 40*15 = 600
		{ID: "b", Ativa: true, Headcount: 120, CriadoEm: old}, // 120*25 = 3000
		{ID: "c", Ativa: true, Headcount: 300, CriadoEm: old}, // 300*35 = 10500
	}

	got := Project(now, companies)

	assert.Equal(t, 14100.0, got.MRR)
	assert.Equal(t, 169200.0, got.ARR)
	assert.Equal(t, 4700.0, got.TicketMedio)
	assert.Equal(t, 0.0, got.CrescimentoMRR)
	assert.Equal(t, 0.0, got.Churn)
	// taxa neutra: projeções repetem o MRR
	assert.Equal(t, 14100.0, got.ProjecaoProximoMes)
	assert.Equal(t, 42300.0, got.ProjecaoTrimestre)
}

func TestProjectGrowthAndChurn(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	old := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	companies := []Company{
		{ID: "a", Ativa: true, Headcount: 10, CriadoEm: old},       // 150
		{ID: "b", Ativa: true, Headcount: 10, CriadoEm: thisMonth}, // 150, nova no mês
		{ID: "c", Ativa: false, Headcount: 10, CriadoEm: old, DesativadaEm: &thisMonth},
		{ID: "d", Ativa: false, Headcount: 10, CriadoEm: old}, // churn antigo, ignorado
	}

	got := Project(now, companies)

	assert.Equal(t, 300.0, got.MRR)
	assert.Equal(t, 50.0, got.CrescimentoMRR) // 1 criada / 2 ativas
	assert.Equal(t, 25.0, got.Churn)          // 1 desativada / 4 empresas

	// taxa = 1 + 0.5 - 0.25 = 1.25
	assert.Equal(t, 375.0, got.ProjecaoProximoMes)
	assert.InDelta(t, 375.0+468.75+585.94, got.ProjecaoTrimestre, 0.01)
}
