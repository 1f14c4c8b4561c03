package recommend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackLowWellbeingYieldsSingleUrgent(t *testing.T) {
	t.Parallel()

	got := Fallback(ReportInput{
		EmpresaID:             "emp-1",
		GeneralWellbeingIndex: 35,
		RiskIndex:             65.0,
		RiskLevel:             "Médio",
		CoveragePercent:       90,
		ResultCount:           12,
	})

	urgent := 0
	for _, r := range got.Recomendacoes {
		if r.Categoria == "Urgente" {
			urgent++
			assert.Equal(t, PrioridadeAlta, r.Prioridade)
		}
	}
	assert.Equal(t, 1, urgent)
}

func TestFallbackRuleTable(t *testing.T) {
	t.Parallel()

	t.Run("healthy company gets only prevention", func(t *testing.T) {
		t.Parallel()
		got := Fallback(ReportInput{
			GeneralWellbeingIndex: 82,
			CoveragePercent:       95,
			ResultCount:           30,
		})
		require.Len(t, got.Recomendacoes, 1)
		assert.Equal(t, "Prevenção", got.Recomendacoes[0].Categoria)
		assert.Equal(t, PrioridadeBaixa, got.Recomendacoes[0].Prioridade)
	})

	t.Run("critical nr1 factors add compliance item", func(t *testing.T) {
		t.Parallel()
		got := Fallback(ReportInput{
			GeneralWellbeingIndex: 70,
			CoveragePercent:       85,
			CriticalNR1Factors:    []string{"assedio", "carga_trabalho"},
		})
		require.Len(t, got.Recomendacoes, 2)
		assert.Equal(t, "Conformidade", got.Recomendacoes[0].Categoria)
		assert.Contains(t, got.Recomendacoes[0].Descricao, "assedio, carga_trabalho")
	})

	t.Run("low coverage adds participation item", func(t *testing.T) {
		t.Parallel()
		got := Fallback(ReportInput{
			GeneralWellbeingIndex: 70,
			CoveragePercent:       42,
		})
		require.Len(t, got.Recomendacoes, 2)
		assert.Equal(t, "Participação", got.Recomendacoes[0].Categoria)
		assert.Equal(t, PrioridadeMedia, got.Recomendacoes[0].Prioridade)
		assert.Contains(t, got.Recomendacoes[0].Descricao, "42%")
	})

	t.Run("all rules fire in fixed order", func(t *testing.T) {
		t.Parallel()
		got := Fallback(ReportInput{
			GeneralWellbeingIndex: 30,
			CoveragePercent:       50,
			CriticalNR1Factors:    []string{"assedio"},
		})
		require.Len(t, got.Recomendacoes, 4)
		assert.Equal(t, "Urgente", got.Recomendacoes[0].Categoria)
		assert.Equal(t, "Conformidade", got.Recomendacoes[1].Categoria)
		assert.Equal(t, "Participação", got.Recomendacoes[2].Categoria)
		assert.Equal(t, "Prevenção", got.Recomendacoes[3].Categoria)
	})
}

func TestFallbackNarrativeSections(t *testing.T) {
	t.Parallel()

	input := ReportInput{
		EmpresaID:             "emp-1",
		GeneralWellbeingIndex: 55,
		RiskIndex:             48.4,
		RiskLevel:             "Médio",
		CoveragePercent:       77,
		CriticalDimensions:    []string{"reconhecimento"},
		CriticalNR1Factors:    []string{"assedio"},
	}
	got := Fallback(input)

	assert.True(t, strings.HasPrefix(got.Sintese, "Síntese:"))
	assert.Contains(t, got.Sintese, "55/100")
	assert.Contains(t, got.Sintese, "48.4")
	assert.Contains(t, got.Sintese, "requer atenção")
	assert.Contains(t, got.Sintese, "Dimensões em nível crítico: reconhecimento.")
	assert.Contains(t, got.Sintese, "Fatores NR-1 em nível crítico: assedio.")
	assert.Contains(t, got.Sintese, "Recomendação técnica:")
}

func TestFallbackIsDeterministic(t *testing.T) {
	t.Parallel()

	input := ReportInput{
		GeneralWellbeingIndex: 44,
		RiskIndex:             61.2,
		RiskLevel:             "Médio",
		CoveragePercent:       60,
		CriticalDimensions:    []string{"demanda", "controle"},
	}
	first := Fallback(input)
	second := Fallback(input)
	assert.Equal(t, first, second)
}
