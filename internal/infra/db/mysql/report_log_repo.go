package mysql

import (
	"context"
	"database/sql"
	"strings"
	"time"

	domain "github.com/bemviver/psicorisk/internal/domain/reportlog"
)

type ReportLogRepository struct {
	db *sql.DB
}

func NewReportLogRepository(db *sql.DB) *ReportLogRepository {
	return &ReportLogRepository{db: db}
}

// Save inserts a generated report record
func (r *ReportLogRepository) Save(ctx context.Context, e *domain.Entry) error {
	const q = `
INSERT INTO relatorios_gerados
  (id, empresa_id, origem, report_json, artifact_url, created_at)
VALUES (?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
  empresa_id=VALUES(empresa_id), origem=VALUES(origem), report_json=VALUES(report_json), artifact_url=VALUES(artifact_url);
`
	empresa := stringOrDash(e.EmpresaID)
	origem := stringOrDash(e.Origem)
	report := e.ReportJSON
	if strings.TrimSpace(report) == "" {
		// report_json column requires valid JSON; use empty object
		report = "{}"
	}
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, q, e.ID, empresa, origem, report, e.ArtifactURL, createdAt)
	return err
}

// Paginate returns a page of report records ordered by created_at desc
func (r *ReportLogRepository) Paginate(ctx context.Context, empresa string, page, pageSize int) ([]*domain.Entry, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	const q = `
SELECT id, empresa_id, origem, report_json, artifact_url, created_at
FROM relatorios_gerados
WHERE empresa_id=?
ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?;
`
	rows, err := r.db.QueryContext(ctx, q, empresa, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Entry
	for rows.Next() {
		var e domain.Entry
		var created time.Time
		if err := rows.Scan(&e.ID, &e.EmpresaID, &e.Origem, &e.ReportJSON, &e.ArtifactURL, &created); err != nil {
			return nil, err
		}
		e.CreatedAt = created
		out = append(out, &e)
	}
	return out, rows.Err()
}

// LatestByCompany returns the most recent generated report for a company
func (r *ReportLogRepository) LatestByCompany(ctx context.Context, empresa string) (*domain.Entry, error) {
	const q = `
SELECT id, empresa_id, origem, report_json, artifact_url, created_at
FROM relatorios_gerados
WHERE empresa_id=?
ORDER BY created_at DESC, id DESC
LIMIT 1;`
	row := r.db.QueryRowContext(ctx, q, empresa)
	var e domain.Entry
	var created time.Time
	if err := row.Scan(&e.ID, &e.EmpresaID, &e.Origem, &e.ReportJSON, &e.ArtifactURL, &created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	e.CreatedAt = created
	return &e, nil
}
