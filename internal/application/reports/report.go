package reports

import (
	"time"

	"github.com/bemviver/psicorisk/internal/domain/recommend"
	"github.com/bemviver/psicorisk/internal/domain/risk"
)

// DimensionReport is one classified dimension in the assembled report.
type DimensionReport struct {
	DimensionID string  `json:"dimensao_id"`
	Kind        string  `json:"tipo_teste"`
	RawValue    float64 `json:"valor"`
	ScaleMax    float64 `json:"escala_max"`
	Percent     int     `json:"percentual"`
	Nivel       string  `json:"nivel"`
	Severity    int     `json:"severidade"`
	Color       string  `json:"cor"`
	NR1         bool    `json:"fator_nr1"`
}

// OrganizationRiskReport is the normalized output consumed by the
// presentation layer. Assembled fresh per request; nothing here is
// cached across requests.
type OrganizationRiskReport struct {
	ID                    string                     `json:"id"`
	EmpresaID             string                     `json:"empresa_id"`
	GeneratedAt           time.Time                  `json:"gerado_em"`
	GeneralWellbeingIndex int                        `json:"indice_bem_estar_geral"`
	RiskIndex             float64                    `json:"indice_risco"`
	RiskLevel             string                     `json:"nivel_risco"`
	CoveragePercent       int                        `json:"cobertura_percentual"`
	Dimensions            []DimensionReport          `json:"dimensoes"`
	CriticalAlerts        []string                   `json:"alertas_criticos"`
	Compliance            risk.ComplianceStatus      `json:"conformidade"`
	NarrativeSource       string                     `json:"origem_narrativa"` // ia | fallback
	Narrative             string                     `json:"narrativa"`
	Recommendations       []recommend.Recommendation `json:"recomendacoes"`
}
