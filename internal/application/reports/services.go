package reports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bemviver/psicorisk/internal/application"
	"github.com/bemviver/psicorisk/internal/domain/finance"
	"github.com/bemviver/psicorisk/internal/domain/narrerrors"
	"github.com/bemviver/psicorisk/internal/domain/recommend"
	"github.com/bemviver/psicorisk/internal/domain/reportlog"
	"github.com/bemviver/psicorisk/internal/domain/results"
	"github.com/bemviver/psicorisk/internal/domain/risk"
)

// DefaultNarrativeTimeout bounds the single attempt against the
// narrative service. No retry: a degraded-but-deterministic report beats
// a slow one.
const DefaultNarrativeTimeout = 20 * time.Second

// Service implements the report assembly use-cases.
// Stateless per request; safe for concurrent use.
type Service struct {
	Generic     results.Source
	Specialized results.Source
	Directory   finance.Directory
	Narrator    recommend.NarrativeClient
	Reports     reportlog.Repository
	Failures    narrerrors.Repository
	Archive     reportlog.ArchiveStore
	Clock       application.Clock

	Weights          risk.WeightTable
	NarrativeTimeout time.Duration
}

// GenerateReport reads one snapshot of raw results, dedupes and scores
// it, and assembles the full organization risk report. Persistence-read
// failures are the only hard error; everything downstream degrades.
func (s *Service) GenerateReport(ctx context.Context, empresaID string) (*OrganizationRiskReport, error) {
	raw, err := s.fetchRaw(ctx, empresaID)
	if err != nil {
		return nil, err
	}

	canonical := results.Dedupe(raw)
	now := s.Clock.Now()

	report := &OrganizationRiskReport{
		ID:             uuid.New().String(),
		EmpresaID:      empresaID,
		GeneratedAt:    now,
		Dimensions:     []DimensionReport{},
		CriticalAlerts: []string{},
	}

	var (
		scored       []risk.ScoredResult
		percentSum   int
		criticalDims []string
		criticalNR1  []string
		lastAt       *time.Time
		subjects     = map[string]bool{}
	)

	for _, c := range canonical {
		dims := results.ExtractDimensions(c)
		for _, d := range dims {
			cls := risk.Classify(d.Percent)
			nivel := d.Nivel
			if nivel == "" {
				nivel = cls.Nivel
			}
			report.Dimensions = append(report.Dimensions, DimensionReport{
				DimensionID: d.DimensionID,
				Kind:        string(c.Kind),
				RawValue:    d.RawValue,
				ScaleMax:    d.ScaleMax,
				Percent:     d.Percent,
				Nivel:       nivel,
				Severity:    cls.Severity,
				Color:       cls.Color,
				NR1:         c.Kind == results.KindRPO,
			})
			if nivel == risk.NivelCritico || cls.Nivel == risk.NivelCritico {
				if c.Kind == results.KindRPO {
					criticalNR1 = append(criticalNR1, d.DimensionID)
				} else {
					criticalDims = append(criticalDims, d.DimensionID)
				}
			}
		}

		report.CriticalAlerts = append(report.CriticalAlerts, results.ExtractAlerts(c)...)

		if p, ok := c.OverallPercent(dims); ok {
			scored = append(scored, risk.ScoredResult{Kind: string(c.Kind), Percent: p})
			percentSum += p
		}

		if c.SubjectID != "" {
			subjects[c.SubjectID] = true
		}
		if lastAt == nil || c.OccurredAt.After(*lastAt) {
			t := c.OccurredAt
			lastAt = &t
		}
	}

	if len(scored) > 0 {
		report.GeneralWellbeingIndex = roundHalfUp(float64(percentSum) / float64(len(scored)))
	}
	agg := risk.Aggregate(scored, s.Weights)
	report.RiskIndex = agg.RiskIndex
	report.RiskLevel = agg.RiskLevel

	total, err := s.Directory.ActiveCollaborators(ctx, empresaID)
	if err != nil {
		return nil, eris.Wrap(results.ErrAggregationUnavailable, err.Error())
	}
	report.Compliance = risk.EvaluateCompliance(len(canonical), lastAt, total, len(subjects))
	report.CoveragePercent = report.Compliance.CoveragePercent

	input := recommend.ReportInput{
		EmpresaID:             empresaID,
		GeneralWellbeingIndex: report.GeneralWellbeingIndex,
		RiskIndex:             report.RiskIndex,
		RiskLevel:             report.RiskLevel,
		CoveragePercent:       report.CoveragePercent,
		ResultCount:           len(canonical),
		CriticalDimensions:    criticalDims,
		CriticalNR1Factors:    criticalNR1,
	}
	narrative, source := s.generateNarrative(ctx, report.ID, input)
	report.Narrative = narrative.Sintese
	report.Recommendations = narrative.Recomendacoes
	report.NarrativeSource = source

	s.persistReport(ctx, report)
	return report, nil
}

// EvaluateCompliance computes the compliance block alone, without
// narrative or archiving.
func (s *Service) EvaluateCompliance(ctx context.Context, empresaID string) (risk.ComplianceStatus, error) {
	raw, err := s.fetchRaw(ctx, empresaID)
	if err != nil {
		return risk.ComplianceStatus{}, err
	}
	canonical := results.Dedupe(raw)

	var lastAt *time.Time
	subjects := map[string]bool{}
	for _, c := range canonical {
		if c.SubjectID != "" {
			subjects[c.SubjectID] = true
		}
		if lastAt == nil || c.OccurredAt.After(*lastAt) {
			t := c.OccurredAt
			lastAt = &t
		}
	}

	total, err := s.Directory.ActiveCollaborators(ctx, empresaID)
	if err != nil {
		return risk.ComplianceStatus{}, eris.Wrap(results.ErrAggregationUnavailable, err.Error())
	}
	return risk.EvaluateCompliance(len(canonical), lastAt, total, len(subjects)), nil
}

// ListReports returns a page of previously generated reports.
func (s *Service) ListReports(ctx context.Context, empresaID string, page, pageSize int) ([]*reportlog.Entry, error) {
	return s.Reports.Paginate(ctx, empresaID, page, pageSize)
}

// LatestReport returns the most recent generated report, or nil when the
// company has no history yet.
func (s *Service) LatestReport(ctx context.Context, empresaID string) (*reportlog.Entry, error) {
	return s.Reports.LatestByCompany(ctx, empresaID)
}

// ListNarrativeFailures returns the recent narrative-provider failures
// for ops follow-up.
func (s *Service) ListNarrativeFailures(ctx context.Context, empresaID string, limit int) ([]*narrerrors.NarrativeError, error) {
	return s.Failures.ListByCompany(ctx, empresaID, limit)
}

// fetchRaw reads both stores concurrently and returns the union. Either
// store failing aborts the whole read as ErrAggregationUnavailable.
func (s *Service) fetchRaw(ctx context.Context, empresaID string) ([]results.RawResult, error) {
	var generic, specialized []results.RawResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		generic, err = s.Generic.FetchByCompany(gctx, empresaID)
		return err
	})
	if s.Specialized != nil {
		g.Go(func() error {
			var err error
			specialized, err = s.Specialized.FetchByCompany(gctx, empresaID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(results.ErrAggregationUnavailable, err.Error())
	}
	return append(generic, specialized...), nil
}

// generateNarrative tries the external service once and falls back to
// the deterministic rule table on any failure or when there is no
// history at all. Failures never propagate to the caller.
func (s *Service) generateNarrative(ctx context.Context, reportID string, input recommend.ReportInput) (recommend.NarrativeResult, string) {
	if s.Narrator == nil || input.ResultCount == 0 {
		return recommend.Fallback(input), reportlog.OrigemFallback
	}

	timeout := s.NarrativeTimeout
	if timeout <= 0 {
		timeout = DefaultNarrativeTimeout
	}
	nctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := s.Narrator.Generate(nctx, input)
	if err != nil {
		zap.L().Warn("narrativa externa indisponível, usando fallback",
			zap.String("empresa_id", input.EmpresaID),
			zap.Error(err),
		)
		s.recordFailure(input.EmpresaID, reportID, err)
		return recommend.Fallback(input), reportlog.OrigemFallback
	}
	return res, reportlog.OrigemIA
}

// recordFailure logs the provider failure for ops follow-up.
// Best-effort: the audit row must not break report generation.
func (s *Service) recordFailure(empresaID, reportID string, cause error) {
	if s.Failures == nil {
		return
	}
	details, _ := json.Marshal(map[string]string{"error": cause.Error()})
	e := &narrerrors.NarrativeError{
		EmpresaID:   empresaID,
		ReportID:    reportID,
		Stage:       "request",
		Message:     cause.Error(),
		DetailsJSON: string(details),
		CreatedAt:   s.Clock.Now(),
	}
	if err := s.Failures.Save(context.Background(), e); err != nil {
		zap.L().Warn("falha ao registrar erro de narrativa", zap.Error(err))
	}
}

// persistReport writes the audit row and archives the JSON artifact.
// Both are best-effort: the report itself is the deliverable.
func (s *Service) persistReport(ctx context.Context, report *OrganizationRiskReport) {
	if s.Reports == nil {
		return
	}
	data, err := json.Marshal(report)
	if err != nil {
		zap.L().Warn("falha ao serializar relatório para auditoria", zap.Error(err))
		return
	}

	var artifactURL string
	if s.Archive != nil {
		artifactURL, err = s.Archive.UploadReport(ctx, report.EmpresaID, report.ID, data)
		if err != nil {
			zap.L().Warn("falha ao arquivar artefato do relatório",
				zap.String("report_id", report.ID),
				zap.Error(err),
			)
		}
	}

	entry := &reportlog.Entry{
		ID:          reportlog.ReportID(report.ID),
		EmpresaID:   report.EmpresaID,
		Origem:      report.NarrativeSource,
		ReportJSON:  string(data),
		ArtifactURL: artifactURL,
		CreatedAt:   report.GeneratedAt,
	}
	if err := s.Reports.Save(ctx, entry); err != nil {
		zap.L().Warn("falha ao persistir relatório gerado",
			zap.String("report_id", report.ID),
			zap.Error(err),
		)
	}
}

func roundHalfUp(v float64) int {
	return int(v + 0.5)
}
