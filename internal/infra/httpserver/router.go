package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appfinance "github.com/bemviver/psicorisk/internal/application/finance"
	appreports "github.com/bemviver/psicorisk/internal/application/reports"
	"github.com/bemviver/psicorisk/internal/domain/recommend"
	"github.com/bemviver/psicorisk/internal/domain/results"
	"github.com/bemviver/psicorisk/internal/middleware"
)

type Router struct {
	reportsSvc *appreports.Service
	financeSvc *appfinance.Service
}

func NewRouter(reportsSvc *appreports.Service, financeSvc *appfinance.Service, limiter *middleware.RateLimiter, checkers map[string]middleware.HealthChecker) http.Handler {
	r := &Router{reportsSvc: reportsSvc, financeSvc: financeSvc}
	mux := chi.NewRouter()

	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	mux.Get("/health", middleware.HealthHandler(checkers))
	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/live", middleware.LivenessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/v1/empresas/{empresa}", func(rt chi.Router) {
		if limiter != nil {
			rt.Use(limiter.Middleware)
		}
		rt.Get("/relatorio-risco", r.wrap(r.handleRiskReport))
		rt.Get("/conformidade", r.wrap(r.handleCompliance))
		rt.Get("/relatorios", r.wrap(r.handleListReports))
		rt.Get("/relatorios/ultimo", r.wrap(r.handleLatestReport))
		rt.Get("/narrativa-falhas", r.wrap(r.handleNarrativeFailures))
	})

	mux.Get("/v1/admin/financeiro", r.wrap(r.handleFinance))

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

type validationError struct{ error }

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			var vErr validationError
			switch {
			case errors.As(err, &vErr):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, sql.ErrNoRows):
				http.Error(w, "not found", http.StatusNotFound)
			case errors.Is(err, results.ErrAggregationUnavailable):
				http.Error(w, "aggregation unavailable", http.StatusServiceUnavailable)
			case errors.Is(err, recommend.ErrQuotaExceeded):
				http.Error(w, "narrative quota exceeded", http.StatusTooManyRequests)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		}
	}
}

// GET /v1/empresas/{empresa}/relatorio-risco
func (r *Router) handleRiskReport(w http.ResponseWriter, req *http.Request) error {
	empresa := chi.URLParam(req, "empresa")
	if err := middleware.ValidateEmpresaID(empresa); err != nil {
		return validationError{err}
	}

	report, err := r.reportsSvc.GenerateReport(req.Context(), empresa)
	if err != nil {
		middleware.IncrementReportsFailed()
		return err
	}
	middleware.IncrementReports()
	if report.NarrativeSource == "fallback" {
		middleware.IncrementReportsFallback()
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(report)
}

// GET /v1/empresas/{empresa}/conformidade
func (r *Router) handleCompliance(w http.ResponseWriter, req *http.Request) error {
	empresa := chi.URLParam(req, "empresa")
	if err := middleware.ValidateEmpresaID(empresa); err != nil {
		return validationError{err}
	}

	status, err := r.reportsSvc.EvaluateCompliance(req.Context(), empresa)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(status)
}

// GET /v1/empresas/{empresa}/relatorios?page=&page_size=
func (r *Router) handleListReports(w http.ResponseWriter, req *http.Request) error {
	empresa := chi.URLParam(req, "empresa")
	if err := middleware.ValidateEmpresaID(empresa); err != nil {
		return validationError{err}
	}
	page, size, err := middleware.ParsePagination(
		req.URL.Query().Get("page"),
		req.URL.Query().Get("page_size"),
	)
	if err != nil {
		return validationError{err}
	}

	list, err := r.reportsSvc.ListReports(req.Context(), empresa, page, size)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(list)
}

// GET /v1/empresas/{empresa}/relatorios/ultimo
func (r *Router) handleLatestReport(w http.ResponseWriter, req *http.Request) error {
	empresa := chi.URLParam(req, "empresa")
	if err := middleware.ValidateEmpresaID(empresa); err != nil {
		return validationError{err}
	}

	entry, err := r.reportsSvc.LatestReport(req.Context(), empresa)
	if err != nil {
		return err
	}
	if entry == nil {
		return sql.ErrNoRows
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(entry)
}

// GET /v1/empresas/{empresa}/narrativa-falhas?limit=
func (r *Router) handleNarrativeFailures(w http.ResponseWriter, req *http.Request) error {
	empresa := chi.URLParam(req, "empresa")
	if err := middleware.ValidateEmpresaID(empresa); err != nil {
		return validationError{err}
	}
	limit := 20
	if v := req.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 100 {
			return validationError{fmt.Errorf("invalid limit: %s", v)}
		}
		limit = n
	}

	list, err := r.reportsSvc.ListNarrativeFailures(req.Context(), empresa, limit)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(list)
}

// GET /v1/admin/financeiro
func (r *Router) handleFinance(w http.ResponseWriter, req *http.Request) error {
	snapshot, err := r.financeSvc.Snapshot(req.Context())
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(snapshot)
}
