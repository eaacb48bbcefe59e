package config

import "os"

// Server concentra a configuração lida do ambiente para o main ficar enxuto.
type Server struct {
	Addr          string
	DBDSN         string
	MigrationsDir string
	JWTSigningKey string
	BlobDir       string
}

func FromEnv() Server {
	addr := os.Getenv("ADDR")
	if addr == "" {
		if p := os.Getenv("PORT"); p != "" {
			addr = ":" + p
		} else {
			addr = ":8080"
		}
	}

	migrations := os.Getenv("MIGRATIONS_DIR")
	if migrations == "" {
		migrations = "migrations"
	}

	blobDir := os.Getenv("BLOB_DIR")
	if blobDir == "" {
		blobDir = "uploads"
	}

	return Server{
		Addr:          addr,
		DBDSN:         os.Getenv("DB_DSN"),
		MigrationsDir: migrations,
		JWTSigningKey: os.Getenv("JWT_SIGNING_KEY"),
		BlobDir:       blobDir,
	}
}
