package coordenadores

import (
	"encoding/json"
	"net/http"
	"time"

	"adocato/internal/middleware"
	"adocato/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/coordenadores", func(cr chi.Router) {
		cr.Post("/", createCoordenadorHandler(svc))
		cr.Get("/", listCoordenadoresHandler(svc))
		cr.Get("/{coordenadorID}", getCoordenadorHandler(svc))
	})
}

type createCoordenadorRequest struct {
	Username string `json:"username"`
	Senha    string `json:"password"`
	Nome     string `json:"nome"`
	CPF      string `json:"cpf"`
	Apelido  string `json:"apelido"`
}

type coordenadorResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Nome         string    `json:"nome"`
	CPF          string    `json:"cpf"`
	CPFFormatado string    `json:"cpf_formatado"`
	Apelido      string    `json:"apelido"`
	CriadoEm     time.Time `json:"criado_em"`
}

func createCoordenadorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createCoordenadorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Create(r.Context(), CreateInput{
			Username: req.Username,
			Senha:    req.Senha,
			Nome:     req.Nome,
			CPF:      req.CPF,
			Apelido:  req.Apelido,
		})
		if err != nil {
			web.WriteErro(w, err, http.StatusInternalServerError, "internal error")
			return
		}

		web.WriteJSON(w, http.StatusCreated, toCoordenadorResponse(c))
	}
}

func listCoordenadoresHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		coordenadores, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]coordenadorResponse, 0, len(coordenadores))
		for _, c := range coordenadores {
			out = append(out, toCoordenadorResponse(c))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

func getCoordenadorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "coordenadorID"))
		if err != nil {
			http.Error(w, "coordenador não encontrado", http.StatusNotFound)
			return
		}
		web.WriteJSON(w, http.StatusOK, toCoordenadorResponse(c))
	}
}

func toCoordenadorResponse(c Coordenador) coordenadorResponse {
	return coordenadorResponse{
		ID:           c.ID,
		Username:     c.Username,
		Nome:         c.Nome,
		CPF:          c.CPF,
		CPFFormatado: c.CPFFormatado(),
		Apelido:      c.Apelido,
		CriadoEm:     c.CriadoEm,
	}
}
