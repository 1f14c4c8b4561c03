package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		label string
		want  TestKind
	}{
		{"qvt", KindQVT},
		{"QVT", KindQVT},
		{"Qualidade de Vida no Trabalho", KindQVT},
		{"qualidade-vida-trabalho", KindQVT},
		{"rpo", KindRPO},
		{"Riscos Psicossociais Ocupacionais", KindRPO},
		{"inventario-psicossocial", KindRPO},
		{"karasek-siegrist", KindKarasekSiegrist},
		{"Teste Karasek", KindKarasekSiegrist},
		{"clima-organizacional", KindClima},
		{"Pesquisa de Clima", KindClima},
		{"assedio", KindAssedio},
		{"Assédio Moral", KindAssedio},
		{"estresse", KindEstresse},
		{"stress ocupacional", KindEstresse},
		{"mgrp", KindMGRP},
		{"Maturidade em Gestão", KindMGRP},
		{"governança", KindMGRP},
		{"algo-que-nao-existe", KindDesconhecido},
		{"", KindDesconhecido},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeKind(tc.label), "label %q", tc.label)
	}
}

func TestScaleMax(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5.0, KindQVT.ScaleMax())
	assert.Equal(t, 5.0, KindKarasekSiegrist.ScaleMax())
	assert.Equal(t, 5.0, KindClima.ScaleMax())
	assert.Equal(t, 100.0, KindRPO.ScaleMax())
	assert.Equal(t, 100.0, KindEstresse.ScaleMax())
	assert.Equal(t, 100.0, KindDesconhecido.ScaleMax())
}

func TestSourcePriority(t *testing.T) {
	t.Parallel()

	assert.Greater(t, SourceRPO.Priority(), SourceQVT.Priority())
	assert.Greater(t, SourceQVT.Priority(), SourceGeneric.Priority())
}
