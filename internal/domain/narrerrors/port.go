package narrerrors

import "context"

// Repository defines persistence for narrative failures
type Repository interface {
	Save(ctx context.Context, e *NarrativeError) error
	ListByCompany(ctx context.Context, empresa string, limit int) ([]*NarrativeError, error)
}
