package mysql

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"

	domain "github.com/bemviver/psicorisk/internal/domain/results"
)

// ResultRepository reads the generic assessment store. One row per
// attempt of any test kind; dimension sub-scores live in the metadata
// JSON column.
type ResultRepository struct {
	db *sql.DB
}

func NewResultRepository(db *sql.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// FetchByCompany returns every raw attempt of a company, unordered.
func (r *ResultRepository) FetchByCompany(ctx context.Context, companyID string) ([]domain.RawResult, error) {
	const q = `
SELECT id, colaborador_id, empresa_id, tipo_teste, sessao, pontuacao_total, realizado_em, metadata
FROM avaliacao_resultados
WHERE empresa_id=?;
`
	rows, err := r.db.QueryContext(ctx, q, companyID)
	if err != nil {
		return nil, eris.Wrap(err, "mysql: query avaliacao_resultados")
	}
	defer rows.Close()

	var out []domain.RawResult
	for rows.Next() {
		var (
			res      domain.RawResult
			sessao   sql.NullString
			total    sql.NullFloat64
			metadata []byte
		)
		if err := rows.Scan(&res.ID, &res.SubjectID, &res.CompanyID, &res.TestKind,
			&sessao, &total, &res.OccurredAt, &metadata); err != nil {
			return nil, eris.Wrap(err, "mysql: scan avaliacao_resultados")
		}
		res.Source = domain.SourceGeneric
		res.SessionKey = sessao.String
		if total.Valid {
			v := total.Float64
			res.ScoreTotal = &v
		}
		res.Metadata = decodeMetadata(metadata)
		out = append(out, res)
	}
	return out, eris.Wrap(rows.Err(), "mysql: iterate avaliacao_resultados")
}
