package narrerrors

import "time"

// NarrativeError records one failed attempt against the external
// narrative service. Written whenever the engine degrades to the
// deterministic fallback, so ops can follow up on provider issues.
type NarrativeError struct {
	ID          int64     `json:"id"`
	EmpresaID   string    `json:"empresa_id"`
	ReportID    string    `json:"report_id"`
	Stage       string    `json:"stage,omitempty"` // request | parse
	Message     string    `json:"message"`
	DetailsJSON string    `json:"details_json,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
