package results

import (
	"context"
	"errors"
)

// ErrAggregationUnavailable marks a persistence read failure. It is the
// only error class that aborts report generation: without raw rows there
// is nothing to aggregate.
var ErrAggregationUnavailable = errors.New("aggregation unavailable: raw results could not be read")

// Source port (interface para leitura de resultados brutos)
type Source interface {
	FetchByCompany(ctx context.Context, companyID string) ([]RawResult, error)
}
