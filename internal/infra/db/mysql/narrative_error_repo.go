package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	domain "github.com/bemviver/psicorisk/internal/domain/narrerrors"
)

type NarrativeErrorRepository struct {
	db *sql.DB
}

func NewNarrativeErrorRepository(db *sql.DB) *NarrativeErrorRepository {
	return &NarrativeErrorRepository{db: db}
}

func (r *NarrativeErrorRepository) Save(ctx context.Context, e *domain.NarrativeError) error {
	const q = `
INSERT INTO narrativa_falhas
  (empresa_id, report_id, stage, message, details_json, created_at)
VALUES (?,?,?,?,?,?)
`
	empresa := stringOrDash(e.EmpresaID)
	report := stringOrDash(e.ReportID)
	stage := stringOrDash(e.Stage)
	msg := e.Message
	if strings.TrimSpace(msg) == "" {
		msg = "-"
	}
	details := e.DetailsJSON
	if strings.TrimSpace(details) == "" {
		details = "{}"
	} else {
		// ensure valid json; if invalid, wrap as string field
		var js any
		if json.Unmarshal([]byte(details), &js) != nil {
			b, _ := json.Marshal(map[string]string{"raw": details})
			details = string(b)
		}
	}
	created := e.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := r.db.ExecContext(ctx, q, empresa, report, stage, msg, details, created)
	return err
}

func (r *NarrativeErrorRepository) ListByCompany(ctx context.Context, empresa string, limit int) ([]*domain.NarrativeError, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT id, empresa_id, report_id, stage, message, details_json, created_at
FROM narrativa_falhas
WHERE empresa_id = ?
ORDER BY created_at DESC, id DESC
LIMIT ?;`
	rows, err := r.db.QueryContext(ctx, q, empresa, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.NarrativeError
	for rows.Next() {
		var e domain.NarrativeError
		var created time.Time
		if err := rows.Scan(&e.ID, &e.EmpresaID, &e.ReportID, &e.Stage, &e.Message, &e.DetailsJSON, &created); err != nil {
			return nil, err
		}
		e.CreatedAt = created
		out = append(out, &e)
	}
	return out, rows.Err()
}
