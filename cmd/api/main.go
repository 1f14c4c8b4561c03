package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bemviver/psicorisk/internal/application"
	appfinance "github.com/bemviver/psicorisk/internal/application/finance"
	appreports "github.com/bemviver/psicorisk/internal/application/reports"
	"github.com/bemviver/psicorisk/internal/config"
	"github.com/bemviver/psicorisk/internal/domain/recommend"
	"github.com/bemviver/psicorisk/internal/domain/reportlog"
	"github.com/bemviver/psicorisk/internal/domain/risk"
	aiclient "github.com/bemviver/psicorisk/internal/infra/ai/openai"
	mysqlp "github.com/bemviver/psicorisk/internal/infra/db/mysql"
	pgp "github.com/bemviver/psicorisk/internal/infra/db/postgres"
	"github.com/bemviver/psicorisk/internal/infra/httpserver"
	minioStore "github.com/bemviver/psicorisk/internal/infra/storage"
	"github.com/bemviver/psicorisk/internal/middleware"
)

func main() {
	_ = godotenv.Load()

	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	if err := cfg.InitLogger(); err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer zap.L().Sync()

	ctx := context.Background()

	// conecta no store genérico (MySQL)
	mdb, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
	if err != nil {
		zap.L().Fatal("mysql connect error", zap.Error(err))
	}
	defer mdb.Close()

	// conecta no store especializado (Postgres)
	pdb, err := pgp.Connect(ctx, cfg.PostgresDSN())
	if err != nil {
		zap.L().Fatal("postgres connect error", zap.Error(err))
	}
	defer pdb.Close()

	// repositórios
	genericRepo := mysqlp.NewResultRepository(mdb)
	specializedRepo := pgp.NewResultRepository(pdb)
	companyRepo := mysqlp.NewCompanyRepository(mdb)
	reportRepo := mysqlp.NewReportLogRepository(mdb)
	failureRepo := mysqlp.NewNarrativeErrorRepository(mdb)

	// arquivo de relatórios (MinIO); opcional
	var archive reportlog.ArchiveStore
	if cfg.Minio.Endpoint != "" {
		store, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			zap.L().Fatal("minio init error", zap.Error(err))
		}
		archive = store
	}

	// cliente de narrativa (opcional: sem chave, só fallback)
	var narrator recommend.NarrativeClient
	if cfg.OpenAI.APIKey != "" {
		narrator = aiclient.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	}

	weights := risk.DefaultWeights()
	for kind, w := range cfg.Policy.Weights {
		weights[kind] = w
	}

	narrativeTimeout := appreports.DefaultNarrativeTimeout
	if cfg.OpenAI.TimeoutSeconds > 0 {
		narrativeTimeout = time.Duration(cfg.OpenAI.TimeoutSeconds) * time.Second
	}

	reportsSvc := &appreports.Service{
		Generic:          genericRepo,
		Specialized:      specializedRepo,
		Directory:        companyRepo,
		Narrator:         narrator,
		Reports:          reportRepo,
		Failures:         failureRepo,
		Archive:          archive,
		Clock:            application.SystemClock{},
		Weights:          weights,
		NarrativeTimeout: narrativeTimeout,
	}
	financeSvc := appfinance.NewService(companyRepo, application.SystemClock{})

	burst, refill := cfg.Policy.RateLimitBurst, cfg.Policy.RateLimitRefill
	if burst <= 0 {
		burst = 30
	}
	if refill <= 0 {
		refill = 10
	}
	limiter := middleware.NewRateLimiter(burst, refill)

	checkers := map[string]middleware.HealthChecker{
		"mysql":    &middleware.DatabaseHealthChecker{DB: mdb},
		"postgres": &middleware.DatabaseHealthChecker{DB: pdb},
	}

	mux := httpserver.NewRouter(reportsSvc, financeSvc, limiter, checkers)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zap.L().Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	zap.L().Info("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		zap.L().Warn("shutdown error", zap.Error(err))
	}
}
