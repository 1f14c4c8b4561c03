package recommend

import (
	"fmt"
	"strings"

	"github.com/bemviver/psicorisk/internal/domain/risk"
)

// Fallback produces the deterministic narrative and recommendation set
// used whenever the external service is unavailable or the company has
// no history yet. Pure function of its input: identical snapshots yield
// byte-identical output.
func Fallback(input ReportInput) NarrativeResult {
	return NarrativeResult{
		Sintese:       fallbackNarrative(input),
		Recomendacoes: fallbackRecommendations(input),
	}
}

// fallbackRecommendations applies the fixed rule table, in order.
func fallbackRecommendations(input ReportInput) []Recommendation {
	var recs []Recommendation

	if input.GeneralWellbeingIndex < 50 {
		recs = append(recs, Recommendation{
			Categoria:  "Urgente",
			Prioridade: PrioridadeAlta,
			Titulo:     "Plano de ação imediato de saúde mental",
			Descricao: "O índice geral de bem-estar está abaixo de 50. Estruture um plano de ação imediato com " +
				"acompanhamento psicológico, revisão de carga de trabalho e canais de escuta ativa.",
		})
	}

	if len(input.CriticalNR1Factors) > 0 {
		recs = append(recs, Recommendation{
			Categoria:  "Conformidade",
			Prioridade: PrioridadeAlta,
			Titulo:     "Tratar fatores de risco NR-1 em nível crítico",
			Descricao: "Fatores classificados como críticos: " + strings.Join(input.CriticalNR1Factors, ", ") +
				". Registre as medidas de controle no inventário de riscos e reavalie em até 90 dias.",
		})
	}

	if input.CoveragePercent < 80 {
		recs = append(recs, Recommendation{
			Categoria:  "Participação",
			Prioridade: PrioridadeMedia,
			Titulo:     "Ampliar a adesão às avaliações",
			Descricao: fmt.Sprintf("A cobertura atual é de %d%% dos colaboradores. Realize campanhas internas para "+
				"atingir ao menos 80%% e dar validade estatística ao diagnóstico.", input.CoveragePercent),
		})
	}

	recs = append(recs, Recommendation{
		Categoria:  "Prevenção",
		Prioridade: PrioridadeBaixa,
		Titulo:     "Manter programas contínuos de bem-estar",
		Descricao: "Sustente programas permanentes de qualidade de vida, pausas ativas e educação sobre saúde " +
			"mental para consolidar os resultados ao longo do tempo.",
	})

	return recs
}

// fallbackNarrative builds the templated multi-section narrative from
// the numeric snapshot alone.
func fallbackNarrative(input ReportInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Síntese: a organização apresenta índice geral de bem-estar de %d/100, "+
		"com índice de risco psicossocial de %.1f (%s) e cobertura de %d%% dos colaboradores.\n\n",
		input.GeneralWellbeingIndex, input.RiskIndex, input.RiskLevel, input.CoveragePercent)

	b.WriteString("Diagnóstico: ")
	switch risk.Classify(input.GeneralWellbeingIndex).Nivel {
	case risk.NivelCritico:
		b.WriteString("o cenário é crítico e exige intervenção imediata da liderança, com priorização de ações corretivas sobre os fatores de maior severidade.")
	case risk.NivelAtencao:
		b.WriteString("o cenário requer atenção: há sinais consistentes de desgaste que tendem a se agravar sem intervenção estruturada.")
	case risk.NivelModerado:
		b.WriteString("o cenário é moderado, com oportunidades claras de melhoria em dimensões específicas.")
	default:
		b.WriteString("o cenário é positivo; o foco recomendado é a manutenção das práticas atuais e o monitoramento contínuo.")
	}
	b.WriteString("\n\n")

	if len(input.CriticalDimensions) > 0 {
		fmt.Fprintf(&b, "Dimensões em nível crítico: %s.\n\n", strings.Join(input.CriticalDimensions, ", "))
	}
	if len(input.CriticalNR1Factors) > 0 {
		fmt.Fprintf(&b, "Fatores NR-1 em nível crítico: %s.\n\n", strings.Join(input.CriticalNR1Factors, ", "))
	}

	b.WriteString("Recomendação técnica: manter o ciclo periódico de avaliação, documentar as medidas adotadas " +
		"no programa de gerenciamento de riscos e reavaliar os indicadores no próximo ciclo.")

	return b.String()
}
