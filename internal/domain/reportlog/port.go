package reportlog

import "context"

// Repository port for persisting and querying generated reports
type Repository interface {
	Save(ctx context.Context, e *Entry) error
	Paginate(ctx context.Context, empresa string, page, pageSize int) ([]*Entry, error)
	LatestByCompany(ctx context.Context, empresa string) (*Entry, error)
}

// ArchiveStore port (armazenamento do artefato JSON do relatório)
type ArchiveStore interface {
	UploadReport(ctx context.Context, empresa string, id string, data []byte) (string, error)
}
