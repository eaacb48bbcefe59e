package adotantes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"adocato/internal/middleware"
	"adocato/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/adotantes", func(ar chi.Router) {
		ar.Post("/", createAdotanteHandler(svc))
		ar.Get("/", listAdotantesHandler(svc))
		ar.Get("/{adotanteID}", getAdotanteHandler(svc))
		ar.Post("/{adotanteID}/foto", uploadFotoHandler(svc))
	})
}

type createAdotanteRequest struct {
	Username       string `json:"username"`
	Senha          string `json:"password"`
	Nome           string `json:"nome"`
	CPF            string `json:"cpf"`
	DataNascimento string `json:"data_nascimento"` // YYYY-MM-DD
	Telefone       string `json:"telefone"`
}

// A senha nunca sai na resposta.
type adotanteResponse struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Nome           string     `json:"nome"`
	CPF            string     `json:"cpf"`
	CPFFormatado   string     `json:"cpf_formatado"`
	DataNascimento *time.Time `json:"data_nascimento,omitempty"`
	Idade          int        `json:"idade"`
	Telefone       string     `json:"telefone"`
	Foto           string     `json:"foto,omitempty"`
	CriadoEm       time.Time  `json:"criado_em"`
}

func createAdotanteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAdotanteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var nascimento *time.Time
		if strings.TrimSpace(req.DataNascimento) != "" {
			t, err := time.Parse("2006-01-02", req.DataNascimento)
			if err != nil {
				http.Error(w, "data_nascimento must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			nascimento = &t
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Username:       req.Username,
			Senha:          req.Senha,
			Nome:           req.Nome,
			CPF:            req.CPF,
			DataNascimento: nascimento,
			Telefone:       req.Telefone,
		})
		if err != nil {
			web.WriteErro(w, err, http.StatusInternalServerError, "internal error")
			return
		}

		web.WriteJSON(w, http.StatusCreated, toAdotanteResponse(a))
	}
}

func listAdotantesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		adotantes, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]adotanteResponse, 0, len(adotantes))
		for _, a := range adotantes {
			out = append(out, toAdotanteResponse(a))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

func getAdotanteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "adotanteID"))
		if err != nil {
			http.Error(w, "adotante não encontrado", http.StatusNotFound)
			return
		}
		web.WriteJSON(w, http.StatusOK, toAdotanteResponse(a))
	}
}

func uploadFotoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		file, header, err := r.FormFile("foto")
		if err != nil {
			http.Error(w, "campo foto obrigatório (multipart)", http.StatusBadRequest)
			return
		}
		defer file.Close()

		a, err := svc.AnexarFoto(r.Context(), chi.URLParam(r, "adotanteID"), header.Filename, file)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "adotante não encontrado", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		web.WriteJSON(w, http.StatusOK, toAdotanteResponse(a))
	}
}

func toAdotanteResponse(a Adotante) adotanteResponse {
	return adotanteResponse{
		ID:             a.ID,
		Username:       a.Username,
		Nome:           a.Nome,
		CPF:            a.CPF,
		CPFFormatado:   a.CPFFormatado(),
		DataNascimento: a.DataNascimento,
		Idade:          a.Idade(time.Now()),
		Telefone:       a.Telefone,
		Foto:           a.Foto,
		CriadoEm:       a.CriadoEm,
	}
}
