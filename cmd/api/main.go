package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	"adocato/internal/adapters/auth/jwt"
	"adocato/internal/adapters/storage/postgres"
	"adocato/internal/platform/config"
	"adocato/internal/platform/logger"
	"adocato/internal/ports/auth"
	"adocato/internal/router"
)

// @title Adocato API
// @version 1.0
// @description API de gestão de adoção de gatos e relatórios de leilão beneficente.
// @BasePath /
func main() {
	cfg := config.FromEnv()
	log := logger.NewFromEnv()

	// Sem chave de assinatura o servidor sobe em modo dev, autenticando
	// pelo header X-Debug-User-ID.
	var verifier auth.AuthVerifier
	if cfg.JWTSigningKey != "" {
		verifier = jwt.NewVerifier(cfg.JWTSigningKey)
	} else {
		log.Warn("JWT_SIGNING_KEY ausente, autenticação em modo dev", nil)
	}

	var db *sql.DB
	if cfg.DBDSN != "" {
		if err := postgres.Migrate(cfg.DBDSN, cfg.MigrationsDir); err != nil {
			log.Error("falha nas migrações", map[string]any{"err": err.Error()})
			os.Exit(1)
		}

		opened, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Error("falha abrindo postgres", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		db = opened
		defer db.Close()
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		DB:           db,
		BlobDir:      cfg.BlobDir,
		Log:          log,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": cfg.Addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
