package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/rotisserie/eris"

	domain "github.com/bemviver/psicorisk/internal/domain/results"
)

// ResultRepository reads the specialized psychosocial stores: the QVT
// questionnaire table and the RPO/NR-1 inventory table. Rows may
// reference a parent record in the generic store; the deduplicator uses
// that linkage to collapse cross-table duplicates.
type ResultRepository struct {
	db *sql.DB
}

func NewResultRepository(db *sql.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// FetchByCompany returns the union of both specialized tables for a
// company, unordered.
func (r *ResultRepository) FetchByCompany(ctx context.Context, companyID string) ([]domain.RawResult, error) {
	qvt, err := r.fetch(ctx, qvtQuery, companyID, domain.SourceQVT, "qvt")
	if err != nil {
		return nil, err
	}
	rpo, err := r.fetch(ctx, rpoQuery, companyID, domain.SourceRPO, "rpo")
	if err != nil {
		return nil, err
	}
	return append(qvt, rpo...), nil
}

const qvtQuery = `
SELECT id, colaborador_id, empresa_id, tipo_teste, sessao, resultado_pai_id, pontuacao_total, realizado_em, metadata
FROM qvt_resultados
WHERE empresa_id=$1;`

const rpoQuery = `
SELECT id, colaborador_id, empresa_id, tipo_teste, sessao, resultado_pai_id, pontuacao_total, realizado_em, metadata
FROM rpo_resultados
WHERE empresa_id=$1;`

func (r *ResultRepository) fetch(ctx context.Context, query, companyID string, source domain.SourceTable, table string) ([]domain.RawResult, error) {
	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: query %s_resultados", table)
	}
	defer rows.Close()

	var out []domain.RawResult
	for rows.Next() {
		var (
			res      domain.RawResult
			tipo     sql.NullString
			sessao   sql.NullString
			parent   sql.NullString
			total    sql.NullFloat64
			metadata []byte
		)
		if err := rows.Scan(&res.ID, &res.SubjectID, &res.CompanyID, &tipo,
			&sessao, &parent, &total, &res.OccurredAt, &metadata); err != nil {
			return nil, eris.Wrapf(err, "postgres: scan %s_resultados", table)
		}
		res.Source = source
		res.TestKind = tipo.String
		if res.TestKind == "" {
			// specialized tables hold one kind each; the label column is
			// optional there
			res.TestKind = table
		}
		res.SessionKey = sessao.String
		res.ParentID = domain.ResultID(parent.String)
		if total.Valid {
			v := total.Float64
			res.ScoreTotal = &v
		}
		res.Metadata = decodeMetadata(metadata)
		out = append(out, res)
	}
	return out, eris.Wrapf(rows.Err(), "postgres: iterate %s_resultados", table)
}

// decodeMetadata tolerates NULL, empty and malformed metadata columns.
func decodeMetadata(raw []byte) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}
