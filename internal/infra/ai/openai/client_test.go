package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bemviver/psicorisk/internal/domain/recommend"
)

const validPayload = `{
	"sintese": "a organização apresenta risco moderado",
	"recomendacoes": [
		{"categoria": "Prevenção", "prioridade": "baixa", "titulo": "Manter programas", "descricao": "..."}
	]
}`

func TestParseNarrativePlainJSON(t *testing.T) {
	t.Parallel()

	got, err := parseNarrative(validPayload)
	require.NoError(t, err)
	assert.Equal(t, "a organização apresenta risco moderado", got.Sintese)
	require.Len(t, got.Recomendacoes, 1)
	assert.Equal(t, recommend.PrioridadeBaixa, got.Recomendacoes[0].Prioridade)
}

func TestParseNarrativeFencedJSON(t *testing.T) {
	t.Parallel()

	got, err := parseNarrative("```json\n" + validPayload + "\n```")
	require.NoError(t, err)
	assert.Equal(t, "a organização apresenta risco moderado", got.Sintese)
}

func TestParseNarrativeMalformed(t *testing.T) {
	t.Parallel()

	_, err := parseNarrative("não é json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed narrative JSON")
}

func TestParseNarrativeMissingSintese(t *testing.T) {
	t.Parallel()

	_, err := parseNarrative(`{"sintese": "  ", "recomendacoes": []}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing sintese")
}

func TestStripCodeFence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"{}", "{}"},
		{"```json\n{}\n```", "{}"},
		{"```\n{}\n```", "{}"},
		{"  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
		{"```{}", "{}"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, stripCodeFence(tc.in), "input %q", tc.in)
	}
}
