package recommend

// Priority values for recommendations.
const (
	PrioridadeAlta  = "alta"
	PrioridadeMedia = "media"
	PrioridadeBaixa = "baixa"
)

// Recommendation is one prioritized action item. The AI path and the
// deterministic fallback both produce exactly this shape.
type Recommendation struct {
	Categoria  string `json:"categoria"`
	Prioridade string `json:"prioridade"`
	Titulo     string `json:"titulo"`
	Descricao  string `json:"descricao"`
}

// NarrativeResult is the full generator output: an executive narrative
// plus the recommendation list.
type NarrativeResult struct {
	Sintese       string           `json:"sintese"`
	Recomendacoes []Recommendation `json:"recomendacoes"`
}

// ReportInput carries the numeric report snapshot the generator works
// from. It is the structured prompt payload for the AI path and the
// rule input for the fallback.
type ReportInput struct {
	EmpresaID             string   `json:"empresa_id"`
	GeneralWellbeingIndex int      `json:"indice_bem_estar"`
	RiskIndex             float64  `json:"indice_risco"`
	RiskLevel             string   `json:"nivel_risco"`
	CoveragePercent       int      `json:"cobertura_percentual"`
	ResultCount           int      `json:"total_resultados"`
	CriticalDimensions    []string `json:"dimensoes_criticas,omitempty"`
	CriticalNR1Factors    []string `json:"fatores_nr1_criticos,omitempty"`
}
