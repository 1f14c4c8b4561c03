package finance

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/bemviver/psicorisk/internal/application"
	domain "github.com/bemviver/psicorisk/internal/domain/finance"
)

// Service exposes the financial/adoption projection use-case.
type Service struct {
	Directory domain.Directory
	Clock     application.Clock
}

func NewService(dir domain.Directory, clock application.Clock) *Service {
	return &Service{Directory: dir, Clock: clock}
}

// Snapshot projects MRR/ARR and adoption ratios from the current
// company directory.
func (s *Service) Snapshot(ctx context.Context) (domain.FinancialSnapshot, error) {
	companies, err := s.Directory.ListCompanies(ctx)
	if err != nil {
		return domain.FinancialSnapshot{}, eris.Wrap(err, "finance: list companies")
	}
	return domain.Project(s.Clock.Now(), companies), nil
}
