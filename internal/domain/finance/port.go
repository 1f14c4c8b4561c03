package finance

import "context"

// Directory port (leitura do cadastro de empresas e colaboradores)
type Directory interface {
	ListCompanies(ctx context.Context) ([]Company, error)
	ActiveCollaborators(ctx context.Context, companyID string) (int, error)
}
