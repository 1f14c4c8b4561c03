package results

import (
	"math"
	"sort"
)

// ExtractDimensions turns the kind-specific metadata bag of a canonical
// record into normalized dimension scores. Each canonical kind knows its
// own layout; a branch that cannot find dimension data returns an empty
// slice, never an error — heterogeneous metadata is the steady state of
// the legacy stores, not an exception.
func ExtractDimensions(c CanonicalResult) []DimensionScore {
	switch c.Kind {
	case KindQVT:
		return extractQVT(c.Metadata)
	case KindRPO:
		return extractRPO(c.Metadata)
	case KindKarasekSiegrist, KindClima:
		return extractDimensionMap(c.Metadata, 5)
	case KindAssedio, KindEstresse, KindMGRP:
		return extractDimensionMap(c.Metadata, 100)
	default:
		return nil
	}
}

// qvtFields are the dedicated 1–5 metadata fields of the QVT store, in
// fixed output order.
var qvtFields = []string{
	"satisfacao",
	"relacao_lideranca",
	"carga_trabalho",
	"equilibrio_vida_trabalho",
	"ambiente_fisico",
}

func extractQVT(meta map[string]any) []DimensionScore {
	var out []DimensionScore
	for _, field := range qvtFields {
		v, ok := numberField(meta, field)
		if !ok {
			continue
		}
		out = append(out, DimensionScore{
			DimensionID: field,
			RawValue:    v,
			ScaleMax:    5,
			Percent:     percentOf(v, 5),
		})
	}
	return out
}

// NR1Factors is the fixed set of regulatory risk categories reported by
// the RPO inventory.
var NR1Factors = []string{
	"assedio",
	"autonomia",
	"carga_trabalho",
	"reconhecimento",
	"relacoes_socioprofissionais",
	"seguranca_emprego",
}

func extractRPO(meta map[string]any) []DimensionScore {
	factors, ok := mapField(meta, "fatores_nr1")
	if !ok {
		factors, ok = mapField(meta, "fatores")
	}
	if !ok {
		return nil
	}
	return dimensionsFromMap(factors, 100)
}

func extractDimensionMap(meta map[string]any, scale float64) []DimensionScore {
	dims, ok := mapField(meta, "dimensoes")
	if !ok {
		dims, ok = mapField(meta, "pontuacoes_dimensoes")
	}
	if !ok {
		return nil
	}
	return dimensionsFromMap(dims, scale)
}

// dimensionsFromMap handles the two entry shapes seen in the wild: a
// bare number, or an object carrying "media"/"pontuacao" plus an
// optional pre-computed "nivel". Keys are sorted so output order is
// reproducible.
func dimensionsFromMap(dims map[string]any, scale float64) []DimensionScore {
	keys := make([]string, 0, len(dims))
	for k := range dims {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []DimensionScore
	for _, id := range keys {
		switch v := dims[id].(type) {
		case float64:
			out = append(out, DimensionScore{
				DimensionID: id,
				RawValue:    v,
				ScaleMax:    scale,
				Percent:     percentOf(v, scale),
			})
		case map[string]any:
			raw, ok := numberField(v, "media")
			if !ok {
				raw, ok = numberField(v, "pontuacao")
			}
			if !ok {
				continue
			}
			nivel, _ := v["nivel"].(string)
			out = append(out, DimensionScore{
				DimensionID: id,
				RawValue:    raw,
				ScaleMax:    scale,
				Nivel:       nivel,
				Percent:     percentOf(raw, scale),
			})
		}
	}
	return out
}

// ExtractAlerts reads the free-form critical alert list some RPO rows
// carry. Missing or malformed entries are skipped.
func ExtractAlerts(c CanonicalResult) []string {
	raw, ok := c.Metadata["alertas_criticos"]
	if !ok {
		return nil
	}
	arr, ok := raw.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range arr {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// OverallPercent resolves the wellbeing percent of a canonical record:
// the explicit total when present, then known metadata total fields,
// then the mean of its dimension percents. The boolean is false when no
// score is resolvable; such records are excluded from aggregation.
func (c CanonicalResult) OverallPercent(dims []DimensionScore) (int, bool) {
	if c.ScoreTotal != nil {
		return percentOf(*c.ScoreTotal, c.Kind.ScaleMax()), true
	}
	for _, field := range []string{"pontuacao_total", "indice_geral"} {
		if v, ok := numberField(c.Metadata, field); ok {
			return percentOf(v, c.Kind.ScaleMax()), true
		}
	}
	if len(dims) > 0 {
		sum := 0
		for _, d := range dims {
			sum += d.Percent
		}
		return roundHalfUp(float64(sum) / float64(len(dims))), true
	}
	return 0, false
}

// percentOf normalizes a raw value on the given scale to 0–100 with
// arithmetic rounding (0.5 rounds up), clamped.
func percentOf(v, scale float64) int {
	if scale == 0 {
		return 0
	}
	p := roundHalfUp(v / scale * 100)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func numberField(m map[string]any, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func mapField(m map[string]any, key string) (map[string]any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m[key].(map[string]any)
	return v, ok
}
