package results

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func canonical(kind TestKind, meta map[string]any) CanonicalResult {
	return CanonicalResult{
		RawResult: RawResult{
			ID:         "r1",
			SubjectID:  "colab-1",
			OccurredAt: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
			Metadata:   meta,
		},
		Kind: kind,
	}
}

func TestExtractDimensionsEmptyMetadata(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ExtractDimensions(canonical(KindKarasekSiegrist, map[string]any{})))
	assert.Empty(t, ExtractDimensions(canonical(KindQVT, nil)))
	assert.Empty(t, ExtractDimensions(canonical(KindRPO, map[string]any{"outro_campo": 1.0})))
	assert.Empty(t, ExtractDimensions(canonical(KindDesconhecido, map[string]any{"dimensoes": map[string]any{"x": 3.0}})))
}

func TestExtractDimensionsMapShapes(t *testing.T) {
	t.Parallel()

	t.Run("bare numbers on 1-5 scale", func(t *testing.T) {
		t.Parallel()
		c := canonical(KindKarasekSiegrist, map[string]any{
			"dimensoes": map[string]any{
				"demanda":   4.0,
				"controle":  2.5,
				"lideranca": 3.33,
			},
		})
		dims := ExtractDimensions(c)
		require.Len(t, dims, 3)
		// keys come back sorted
		assert.Equal(t, "controle", dims[0].DimensionID)
		assert.Equal(t, 50, dims[0].Percent)
		assert.Equal(t, "demanda", dims[1].DimensionID)
		assert.Equal(t, 80, dims[1].Percent)
		assert.Equal(t, "lideranca", dims[2].DimensionID)
		assert.Equal(t, 67, dims[2].Percent) // 3.33/5*100 = 66.6 rounds up
	})

	t.Run("object entries with media and nivel", func(t *testing.T) {
		t.Parallel()
		c := canonical(KindClima, map[string]any{
			"pontuacoes_dimensoes": map[string]any{
				"reconhecimento": map[string]any{"media": 1.5, "nivel": "Crítico"},
				"comunicacao":    map[string]any{"pontuacao": 4.5},
			},
		})
		dims := ExtractDimensions(c)
		require.Len(t, dims, 2)
		assert.Equal(t, "comunicacao", dims[0].DimensionID)
		assert.Equal(t, 90, dims[0].Percent)
		assert.Equal(t, "reconhecimento", dims[1].DimensionID)
		assert.Equal(t, 30, dims[1].Percent)
		assert.Equal(t, "Crítico", dims[1].Nivel)
	})

	t.Run("malformed entries are skipped", func(t *testing.T) {
		t.Parallel()
		c := canonical(KindKarasekSiegrist, map[string]any{
			"dimensoes": map[string]any{
				"ok":      3.0,
				"texto":   "não numérico",
				"vazio":   map[string]any{"nivel": "Bom"},
				"aninhar": []any{1.0},
			},
		})
		dims := ExtractDimensions(c)
		require.Len(t, dims, 1)
		assert.Equal(t, "ok", dims[0].DimensionID)
	})
}

func TestExtractDimensionsQVT(t *testing.T) {
	t.Parallel()

	c := canonical(KindQVT, map[string]any{
		"satisfacao":        4.0,
		"relacao_lideranca": 2.0,
		"carga_trabalho":    3.0,
		"campo_ignorado":    5.0,
	})
	dims := ExtractDimensions(c)
	require.Len(t, dims, 3)
	assert.Equal(t, "satisfacao", dims[0].DimensionID)
	assert.Equal(t, 80, dims[0].Percent)
	assert.Equal(t, "relacao_lideranca", dims[1].DimensionID)
	assert.Equal(t, 40, dims[1].Percent)
	assert.Equal(t, "carga_trabalho", dims[2].DimensionID)
	assert.Equal(t, 60, dims[2].Percent)
}

func TestExtractDimensionsRPO(t *testing.T) {
	t.Parallel()

	c := canonical(KindRPO, map[string]any{
		"fatores_nr1": map[string]any{
			"assedio":        map[string]any{"pontuacao": 35.0, "nivel": "Crítico"},
			"carga_trabalho": 62.0,
		},
	})
	dims := ExtractDimensions(c)
	require.Len(t, dims, 2)
	assert.Equal(t, "assedio", dims[0].DimensionID)
	assert.Equal(t, 35, dims[0].Percent)
	assert.Equal(t, "Crítico", dims[0].Nivel)
	assert.Equal(t, "carga_trabalho", dims[1].DimensionID)
	assert.Equal(t, 62, dims[1].Percent)
}

func TestExtractAlerts(t *testing.T) {
	t.Parallel()

	c := canonical(KindRPO, map[string]any{
		"alertas_criticos": []any{"assédio reportado", "", 42.0, "sobrecarga"},
	})
	assert.Equal(t, []string{"assédio reportado", "sobrecarga"}, ExtractAlerts(c))

	assert.Nil(t, ExtractAlerts(canonical(KindRPO, map[string]any{})))
	assert.Nil(t, ExtractAlerts(canonical(KindRPO, map[string]any{"alertas_criticos": "não é lista"})))
}

func TestOverallPercent(t *testing.T) {
	t.Parallel()

	t.Run("explicit total on 1-5 kind", func(t *testing.T) {
		t.Parallel()
		c := canonical(KindQVT, nil)
		total := 3.5
		c.ScoreTotal = &total
		p, ok := c.OverallPercent(nil)
		require.True(t, ok)
		assert.Equal(t, 70, p)
	})

	t.Run("explicit total on 0-100 kind passes through", func(t *testing.T) {
		t.Parallel()
		c := canonical(KindEstresse, nil)
		total := 55.0
		c.ScoreTotal = &total
		p, ok := c.OverallPercent(nil)
		require.True(t, ok)
		assert.Equal(t, 55, p)
	})

	t.Run("total inside metadata", func(t *testing.T) {
		t.Parallel()
		c := canonical(KindMGRP, map[string]any{"pontuacao_total": 81.0})
		p, ok := c.OverallPercent(nil)
		require.True(t, ok)
		assert.Equal(t, 81, p)
	})

	t.Run("mean of dimension percents", func(t *testing.T) {
		t.Parallel()
		c := canonical(KindClima, nil)
		dims := []DimensionScore{{Percent: 50}, {Percent: 71}}
		p, ok := c.OverallPercent(dims)
		require.True(t, ok)
		assert.Equal(t, 61, p) // 60.5 rounds up
	})

	t.Run("no resolvable score", func(t *testing.T) {
		t.Parallel()
		c := canonical(KindClima, map[string]any{})
		_, ok := c.OverallPercent(nil)
		assert.False(t, ok)
	})
}
