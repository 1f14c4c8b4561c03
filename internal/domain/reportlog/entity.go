package reportlog

import "time"

// ReportID identifier type
type ReportID string

// Narrative origin tags.
const (
	OrigemIA       = "ia"
	OrigemFallback = "fallback"
)

// Entry is one generated risk report kept for auditing and retrieval.
// The assembled report itself lives in ReportJSON; the archived artifact
// URL points at the object store copy when the upload succeeded.
type Entry struct {
	ID          ReportID  `json:"id"`
	EmpresaID   string    `json:"empresa_id"`
	Origem      string    `json:"origem"` // ia | fallback
	ReportJSON  string    `json:"report_json"`
	ArtifactURL string    `json:"artifact_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
