package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bryanwahyu/penilai-edu/internal/application"
	appassess "github.com/bryanwahyu/penilai-edu/internal/application/assessments"
	"github.com/bryanwahyu/penilai-edu/internal/config"
	domai "github.com/bryanwahyu/penilai-edu/internal/domain/ai"
	"github.com/bryanwahyu/penilai-edu/internal/domain/analysis"
	"github.com/bryanwahyu/penilai-edu/internal/domain/analysiserrors"
	"github.com/bryanwahyu/penilai-edu/internal/infra/ai/gemini"
	openaiClient "github.com/bryanwahyu/penilai-edu/internal/infra/ai/openai"
	mysqlp "github.com/bryanwahyu/penilai-edu/internal/infra/db/mysql"
	postgresp "github.com/bryanwahyu/penilai-edu/internal/infra/db/postgres"
	"github.com/bryanwahyu/penilai-edu/internal/infra/httpserver"
	minioStore "github.com/bryanwahyu/penilai-edu/internal/infra/storage"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config; a missing provider credential fails here, before any request
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// connect database (driver from config)
	var db *sql.DB
	var analyses analysis.Repository
	var failures analysiserrors.Repository
	switch cfg.Database.Driver {
	case "postgres":
		db, err = postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		analyses = postgresp.NewAnalysisRepository(db)
		failures = postgresp.NewAnalysisErrorRepository(db)
	default:
		db, err = mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		analyses = mysqlp.NewAnalysisRepository(db)
		failures = mysqlp.NewAnalysisErrorRepository(db)
	}
	defer db.Close()

	// init minio archive for raw model replies
	store, err := minioStore.New(ctx,
		cfg.Minio.Endpoint,
		cfg.Minio.Region,
		cfg.Minio.BucketName,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		log.Fatalf("minio init error: %v", err)
	}

	// init generator
	var gen domai.Generator
	switch cfg.AI.Provider {
	case "openai":
		gen = openaiClient.NewClient(cfg.AI.APIKey, cfg.AI.Model)
	default:
		gen = gemini.NewClient(cfg.AI.APIKey, cfg.AI.Model)
	}
	log.Printf("assessment analyzer initialized with %s provider", cfg.AI.Provider)

	// init service
	svc := &appassess.Service{
		Generator: gen,
		Provider:  cfg.AI.Provider,
		Analyses:  analyses,
		Failures:  failures,
		Archive:   store,
		Clock:     application.SystemClock{},
	}

	// init router
	handler := httpserver.NewRouter(svc, db, cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // analyze blocks on the LLM call
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
