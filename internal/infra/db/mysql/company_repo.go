package mysql

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"

	domain "github.com/bemviver/psicorisk/internal/domain/finance"
)

// CompanyRepository reads the company/collaborator directory used by
// compliance coverage and the financial projector.
type CompanyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// ListCompanies returns every company with its active headcount.
func (r *CompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	const q = `
SELECT e.id, e.nome, e.ativa, e.criado_em, e.desativada_em,
       COALESCE(COUNT(c.id), 0) AS headcount
FROM empresas e
LEFT JOIN colaboradores c ON c.empresa_id = e.id AND c.ativo = 1
GROUP BY e.id, e.nome, e.ativa, e.criado_em, e.desativada_em;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, eris.Wrap(err, "mysql: query empresas")
	}
	defer rows.Close()

	var out []domain.Company
	for rows.Next() {
		var (
			c           domain.Company
			desativada  sql.NullTime
		)
		if err := rows.Scan(&c.ID, &c.Nome, &c.Ativa, &c.CriadoEm, &desativada, &c.Headcount); err != nil {
			return nil, eris.Wrap(err, "mysql: scan empresas")
		}
		if desativada.Valid {
			t := desativada.Time
			c.DesativadaEm = &t
		}
		out = append(out, c)
	}
	return out, eris.Wrap(rows.Err(), "mysql: iterate empresas")
}

// ActiveCollaborators counts the active subject pool of one company.
func (r *CompanyRepository) ActiveCollaborators(ctx context.Context, companyID string) (int, error) {
	const q = `SELECT COUNT(*) FROM colaboradores WHERE empresa_id=? AND ativo=1;`
	var n int
	if err := r.db.QueryRowContext(ctx, q, companyID).Scan(&n); err != nil {
		return 0, eris.Wrap(err, "mysql: count colaboradores")
	}
	return n, nil
}
