package recommend

import (
	"context"
	"errors"
)

// ErrQuotaExceeded indicates the narrative provider returned a
// quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("narrative quota exceeded")

// NarrativeClient port for the external generative service. Any error —
// network, quota, malformed JSON — is treated identically by callers:
// one attempt, then the deterministic fallback.
type NarrativeClient interface {
	Generate(ctx context.Context, input ReportInput) (NarrativeResult, error)
}
