package router

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "adocato/docs"
	fsblob "adocato/internal/adapters/blob/fs"
	mem "adocato/internal/adapters/storage/memory"
	pg "adocato/internal/adapters/storage/postgres"
	"adocato/internal/domain/adotantes"
	"adocato/internal/domain/coordenadores"
	"adocato/internal/domain/gatos"
	"adocato/internal/domain/leilao"
	"adocato/internal/domain/racas"
	"adocato/internal/domain/solicitacoes"
	"adocato/internal/middleware"
	"adocato/internal/platform/logger"
	"adocato/internal/platform/metrics"
	"adocato/internal/ports/auth"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // pode ser nil (modo dev)

	// Opcional: com DB usa Postgres, sem DB cai no armazenamento em memória.
	DB *sql.DB

	// Diretório base dos uploads (fotos e documentos).
	BlobDir string

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		racaRepo        racas.Repository
		gatoRepo        gatos.Repository
		adotanteRepo    adotantes.Repository
		coordenadorRepo coordenadores.Repository
		solicitacaoRepo solicitacoes.Repository
		leilaoRepo      leilao.Repository
	)

	// Sem DB explícita, tenta pelo ambiente (dev/handoff).
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else if opts.Log != nil {
				opts.Log.Warn("postgres indisponível, usando memória", map[string]any{"err": err.Error()})
			}
		}
	}

	if db != nil {
		racaRepo = pg.NewRacasRepo(db)
		gatoRepo = pg.NewGatosRepo(db)
		adotanteRepo = pg.NewAdotantesRepo(db)
		coordenadorRepo = pg.NewCoordenadoresRepo(db)
		solicitacaoRepo = pg.NewSolicitacoesRepo(db)
		leilaoRepo = pg.NewLeilaoRepo(db)
	} else {
		memdb := mem.NewDB()
		racaRepo = mem.NewRacaRepo(memdb)
		gatoRepo = mem.NewGatoRepo(memdb)
		adotanteRepo = mem.NewAdotanteRepo(memdb)
		coordenadorRepo = mem.NewCoordenadorRepo(memdb)
		solicitacaoRepo = mem.NewSolicitacaoRepo(memdb)
		leilaoRepo = mem.NewLeilaoRepo(memdb)
	}

	blobDir := opts.BlobDir
	if blobDir == "" {
		blobDir = "uploads"
	}
	blobs := fsblob.New(blobDir)

	m := metrics.New()

	// Services por módulo
	racasSvc := racas.NewService(racaRepo)
	gatosSvc := gatos.NewService(gatoRepo, racaRepo, blobs, m)
	adotantesSvc := adotantes.NewService(adotanteRepo, blobs)
	coordenadoresSvc := coordenadores.NewService(coordenadorRepo)
	solicitacoesSvc := solicitacoes.NewService(solicitacaoRepo, gatoRepo, adotanteRepo, coordenadorRepo, blobs, m)
	leilaoSvc := leilao.NewService(leilaoRepo, m)

	// Rotas por módulo
	racas.RegisterRoutes(r, racasSvc)
	gatos.RegisterRoutes(r, gatosSvc)
	adotantes.RegisterRoutes(r, adotantesSvc)
	coordenadores.RegisterRoutes(r, coordenadoresSvc)
	solicitacoes.RegisterRoutes(r, solicitacoesSvc)
	leilao.RegisterRoutes(r, leilaoSvc)

	return r
}
