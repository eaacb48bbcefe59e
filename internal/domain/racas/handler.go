package racas

import (
	"encoding/json"
	"net/http"
	"time"

	"adocato/internal/middleware"
	"adocato/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/racas", func(rr chi.Router) {
		rr.Post("/", createRacaHandler(svc))
		rr.Get("/", listRacasHandler(svc))
		rr.Get("/{racaID}", getRacaHandler(svc))
		rr.Patch("/{racaID}", updateRacaHandler(svc))
	})
}

type racaRequest struct {
	Nome string `json:"nome"`
}

type racaResponse struct {
	ID           string    `json:"id"`
	Nome         string    `json:"nome"`
	CriadaEm     time.Time `json:"criada_em"`
	AtualizadaEm time.Time `json:"atualizada_em"`
}

func createRacaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req racaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		raca, err := svc.Create(r.Context(), req.Nome)
		if err != nil {
			web.WriteErro(w, err, http.StatusInternalServerError, "internal error")
			return
		}

		web.WriteJSON(w, http.StatusCreated, toRacaResponse(raca))
	}
}

func listRacasHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		racas, err := svc.List(r.Context(), r.URL.Query().Get("nome"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]racaResponse, 0, len(racas))
		for _, raca := range racas {
			out = append(out, toRacaResponse(raca))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

func getRacaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raca, err := svc.GetByID(r.Context(), chi.URLParam(r, "racaID"))
		if err != nil {
			http.Error(w, "raça não encontrada", http.StatusNotFound)
			return
		}
		web.WriteJSON(w, http.StatusOK, toRacaResponse(raca))
	}
}

func updateRacaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req racaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		raca, err := svc.Update(r.Context(), chi.URLParam(r, "racaID"), req.Nome)
		if err != nil {
			if err == ErrNotFound {
				http.Error(w, "raça não encontrada", http.StatusNotFound)
				return
			}
			web.WriteErro(w, err, http.StatusInternalServerError, "internal error")
			return
		}

		web.WriteJSON(w, http.StatusOK, toRacaResponse(raca))
	}
}

func toRacaResponse(r Raca) racaResponse {
	return racaResponse{
		ID:           r.ID,
		Nome:         r.Nome,
		CriadaEm:     r.CriadaEm,
		AtualizadaEm: r.AtualizadaEm,
	}
}
