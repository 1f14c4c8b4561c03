package risk

// Classification labels, shared constants across the whole engine.
const (
	NivelCritico  = "Crítico"
	NivelAtencao  = "Atenção"
	NivelModerado = "Moderado"
	NivelBom      = "Bom"
)

// Wellbeing band boundaries. A boundary value belongs to the
// higher-scoring bucket: 40 is Atenção, not Crítico.
const (
	LimiteCritico  = 40
	LimiteAtencao  = 60
	LimiteModerado = 75
)

// Classification maps a wellbeing percent to a label plus a severity
// tier (3 = worst) and a display color.
type Classification struct {
	Nivel    string `json:"nivel"`
	Severity int    `json:"severidade"`
	Color    string `json:"cor"`
}

// Classify buckets a 0–100 wellbeing percent. Thresholds are fixed
// configuration; changing them is a config change, not a call-site
// decision.
func Classify(percent int) Classification {
	switch {
	case percent < LimiteCritico:
		return Classification{Nivel: NivelCritico, Severity: 3, Color: "vermelho"}
	case percent < LimiteAtencao:
		return Classification{Nivel: NivelAtencao, Severity: 2, Color: "laranja"}
	case percent < LimiteModerado:
		return Classification{Nivel: NivelModerado, Severity: 1, Color: "amarelo"}
	default:
		return Classification{Nivel: NivelBom, Severity: 0, Color: "verde"}
	}
}
