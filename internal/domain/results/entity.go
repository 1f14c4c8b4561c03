package results

import (
	"strings"
	"time"
)

// ID tipe para um resultado de avaliação
type ResultID string

// SourceTable enum: de qual tabela o registro veio
type SourceTable string

const (
	SourceGeneric SourceTable = "generic"
	SourceQVT     SourceTable = "qvt"
	SourceRPO     SourceTable = "rpo"
)

// Priority returns the specialization rank of the source table.
// Specialized stores carry richer rows and win ties during dedup.
func (t SourceTable) Priority() int {
	switch t {
	case SourceRPO:
		return 2
	case SourceQVT:
		return 1
	default:
		return 0
	}
}

// TestKind is the canonical tag for a test type after synonym folding.
type TestKind string

const (
	KindKarasekSiegrist TestKind = "karasek-siegrist"
	KindQVT             TestKind = "qvt"
	KindRPO             TestKind = "rpo"
	KindClima           TestKind = "clima-organizacional"
	KindAssedio         TestKind = "assedio"
	KindEstresse        TestKind = "estresse"
	KindMGRP            TestKind = "mgrp"
	KindDesconhecido    TestKind = "desconhecido"
)

// ScaleMax is the native score scale of a test kind. Questionnaire-style
// kinds store 1–5 averages; inventory-style kinds already store 0–100.
func (k TestKind) ScaleMax() float64 {
	switch k {
	case KindKarasekSiegrist, KindQVT, KindClima:
		return 5
	default:
		return 100
	}
}

// kindSynonyms maps free-text labels to canonical kinds by substring match.
// Ordered: first hit wins, so the more specific needles come first.
var kindSynonyms = []struct {
	needle string
	kind   TestKind
}{
	{"karasek", KindKarasekSiegrist},
	{"siegrist", KindKarasekSiegrist},
	{"qualidade de vida", KindQVT},
	{"qualidade-vida", KindQVT},
	{"qvt", KindQVT},
	{"riscos psicossociais", KindRPO},
	{"psicossoc", KindRPO},
	{"rpo", KindRPO},
	{"clima", KindClima},
	{"assedio", KindAssedio},
	{"estresse", KindEstresse},
	{"stress", KindEstresse},
	{"maturidade", KindMGRP},
	{"governanca", KindMGRP},
	{"mgrp", KindMGRP},
}

var accentFolder = strings.NewReplacer(
	"á", "a", "à", "a", "ã", "a", "â", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "õ", "o", "ô", "o",
	"ú", "u",
	"ç", "c",
)

// NormalizeKind folds a free-form test label into a canonical TestKind.
// Labels in the wild are inconsistent ("QVT", "Qualidade de Vida no
// Trabalho", "qualidade-vida-trabalho"), so matching is by substring,
// never by exact equality.
func NormalizeKind(label string) TestKind {
	s := accentFolder.Replace(strings.ToLower(strings.TrimSpace(label)))
	for _, syn := range kindSynonyms {
		if strings.Contains(s, syn.needle) {
			return syn.kind
		}
	}
	return KindDesconhecido
}

// RawResult is one persisted assessment attempt as read from any store.
type RawResult struct {
	ID         ResultID       `json:"id"`
	Source     SourceTable    `json:"source_table"`
	SubjectID  string         `json:"colaborador_id"`
	CompanyID  string         `json:"empresa_id,omitempty"`
	TestKind   string         `json:"tipo_teste"`
	SessionKey string         `json:"sessao,omitempty"`
	ParentID   ResultID       `json:"resultado_pai_id,omitempty"`
	ScoreTotal *float64       `json:"pontuacao_total,omitempty"`
	OccurredAt time.Time      `json:"realizado_em"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// CanonicalResult is the single record chosen to represent one logical
// assessment attempt after dedup. Source rows are never mutated; losers
// are simply excluded from aggregation.
type CanonicalResult struct {
	RawResult
	Kind     TestKind `json:"tipo_canonico"`
	GroupKey string   `json:"-"`
}

// DimensionScore is one normalized sub-facet score. Derived on every
// read, never persisted.
type DimensionScore struct {
	DimensionID string  `json:"dimensao_id"`
	RawValue    float64 `json:"valor"`
	ScaleMax    float64 `json:"escala_max"`
	Nivel       string  `json:"nivel,omitempty"`
	Percent     int     `json:"percentual"`
}
