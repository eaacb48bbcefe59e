package solicitacoes

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"adocato/internal/middleware"
	"adocato/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/solicitacoes", func(sr chi.Router) {
		sr.Post("/", createSolicitacaoHandler(svc))
		sr.Get("/", listSolicitacoesHandler(svc))
		sr.Get("/{solicitacaoID}", getSolicitacaoHandler(svc))
		sr.Post("/{solicitacaoID}/recurso", recursoHandler(svc))
		sr.Post("/{solicitacaoID}/avaliacoes", avaliarHandler(svc))
		sr.Get("/{solicitacaoID}/avaliacoes", listAvaliacoesHandler(svc))
		sr.Post("/{solicitacaoID}/documentos", anexarDocumentoHandler(svc))
		sr.Get("/{solicitacaoID}/documentos", listDocumentosHandler(svc))
	})
}

type createSolicitacaoRequest struct {
	GatoID string `json:"gato_id"`
}

type solicitacaoResponse struct {
	ID         string    `json:"id"`
	AdotanteID string    `json:"adotante_id"`
	GatoID     string    `json:"gato_id"`
	Recurso    string    `json:"recurso,omitempty"`
	Status     string    `json:"status"`
	Atrasada   bool      `json:"atrasada"`
	CriadaEm   time.Time `json:"criada_em"`
}

type avaliacaoRequest struct {
	Parecer  string `json:"parecer"`
	Aprovada bool   `json:"aprovada"`
}

type avaliacaoResponse struct {
	ID            string    `json:"id"`
	SolicitacaoID string    `json:"solicitacao_id"`
	CoordenadorID string    `json:"coordenador_id"`
	Parecer       string    `json:"parecer,omitempty"`
	AvaliadaEm    time.Time `json:"avaliada_em"`
}

type recursoRequest struct {
	Texto string `json:"texto"`
}

type documentoResponse struct {
	ID            string    `json:"id"`
	SolicitacaoID string    `json:"solicitacao_id"`
	Arquivo       string    `json:"arquivo"`
	Descricao     string    `json:"descricao,omitempty"`
	EnviadoEm     time.Time `json:"enviado_em"`
}

// O adotante vem dos claims (quem está logado solicita para si),
// no mesmo espírito do owner implícito nas rotas de mascota do histórico.
func createSolicitacaoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || claims.UserID == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createSolicitacaoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sol, err := svc.Create(r.Context(), claims.UserID, req.GatoID)
		if err != nil {
			web.WriteErro(w, err, http.StatusInternalServerError, "internal error")
			return
		}

		web.WriteJSON(w, http.StatusCreated, svc.toResponse(sol))
	}
}

func listSolicitacoesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		f := Filtro{
			AdotanteID: r.URL.Query().Get("adotante"),
			Status:     Status(r.URL.Query().Get("status")),
		}

		sols, err := svc.List(r.Context(), f)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]solicitacaoResponse, 0, len(sols))
		for _, sol := range sols {
			out = append(out, svc.toResponse(sol))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

func getSolicitacaoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sol, err := svc.GetByID(r.Context(), chi.URLParam(r, "solicitacaoID"))
		if err != nil {
			http.Error(w, "solicitação não encontrada", http.StatusNotFound)
			return
		}
		web.WriteJSON(w, http.StatusOK, svc.toResponse(sol))
	}
}

// O coordenador avaliador vem dos claims.
func avaliarHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || claims.UserID == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req avaliacaoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		av, err := svc.Avaliar(r.Context(), chi.URLParam(r, "solicitacaoID"), claims.UserID, req.Parecer, req.Aprovada)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "solicitação não encontrada", http.StatusNotFound)
			case errors.Is(err, ErrCoordenadorInvalido):
				http.Error(w, "apenas coordenadores avaliam solicitações", http.StatusForbidden)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		web.WriteJSON(w, http.StatusCreated, toAvaliacaoResponse(av))
	}
}

func listAvaliacoesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		avs, err := svc.ListAvaliacoes(r.Context(), chi.URLParam(r, "solicitacaoID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]avaliacaoResponse, 0, len(avs))
		for _, av := range avs {
			out = append(out, toAvaliacaoResponse(av))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

func recursoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req recursoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sol, err := svc.Recorrer(r.Context(), chi.URLParam(r, "solicitacaoID"), req.Texto)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "solicitação não encontrada", http.StatusNotFound)
			case errors.Is(err, ErrStatusInvalido):
				http.Error(w, "recurso só cabe em solicitação reprovada", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		web.WriteJSON(w, http.StatusOK, svc.toResponse(sol))
	}
}

func anexarDocumentoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		file, header, err := r.FormFile("arquivo")
		if err != nil {
			http.Error(w, "campo arquivo obrigatório (multipart)", http.StatusBadRequest)
			return
		}
		defer file.Close()

		doc, err := svc.AnexarDocumento(
			r.Context(),
			chi.URLParam(r, "solicitacaoID"),
			r.FormValue("descricao"),
			header.Filename,
			file,
		)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "solicitação não encontrada", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		web.WriteJSON(w, http.StatusCreated, toDocumentoResponse(doc))
	}
}

func listDocumentosHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		docs, err := svc.ListDocumentos(r.Context(), chi.URLParam(r, "solicitacaoID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]documentoResponse, 0, len(docs))
		for _, doc := range docs {
			out = append(out, toDocumentoResponse(doc))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

func (s *Service) toResponse(sol Solicitacao) solicitacaoResponse {
	return solicitacaoResponse{
		ID:         sol.ID,
		AdotanteID: sol.AdotanteID,
		GatoID:     sol.GatoID,
		Recurso:    sol.Recurso,
		Status:     string(sol.Status),
		Atrasada:   s.Atrasada(sol),
		CriadaEm:   sol.CriadaEm,
	}
}

func toAvaliacaoResponse(av Avaliacao) avaliacaoResponse {
	return avaliacaoResponse{
		ID:            av.ID,
		SolicitacaoID: av.SolicitacaoID,
		CoordenadorID: av.CoordenadorID,
		Parecer:       av.Parecer,
		AvaliadaEm:    av.AvaliadaEm,
	}
}

func toDocumentoResponse(doc Documento) documentoResponse {
	return documentoResponse{
		ID:            doc.ID,
		SolicitacaoID: doc.SolicitacaoID,
		Arquivo:       doc.Arquivo,
		Descricao:     doc.Descricao,
		EnviadoEm:     doc.EnviadoEm,
	}
}
