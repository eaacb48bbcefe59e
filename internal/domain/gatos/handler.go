package gatos

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
	r.Route("/gatos", func(gr chi.Router) {
		gr.Post("/", createGatoHandler(svc))
		gr.Get("/", searchGatosHandler(svc))
		gr.Get("/disponiveis", listDisponiveisHandler(svc))
		gr.Get("/{gatoID}", getGatoHandler(svc))
		gr.Patch("/{gatoID}", updateGatoHandler(svc))
		gr.Delete("/{gatoID}", deleteGatoHandler(svc))
		gr.Post("/{gatoID}/foto", uploadFotoHandler(svc))
	})

	r.Get("/racas/{racaID}/gatos", listPorRacaHandler(svc))
}

type createGatoRequest struct {
	Nome           string `json:"nome"`
	Sexo           string `json:"sexo"`
	Cor            string `json:"cor"`
	DataNascimento string `json:"data_nascimento"` // YYYY-MM-DD
	RacaID         string `json:"raca_id"`
	Descricao      string `json:"descricao"`
}

type updateGatoRequest struct {
	Nome           *string `json:"nome"`
	Sexo           *string `json:"sexo"`
	Cor            *string `json:"cor"`
	DataNascimento *string `json:"data_nascimento"` // YYYY-MM-DD
	RacaID         *string `json:"raca_id"`
	Descricao      *string `json:"descricao"`
	Disponivel     *bool   `json:"disponivel"`
}

type gatoResponse struct {
	ID             string     `json:"id"`
	RacaID         string     `json:"raca_id"`
	Nome           string     `json:"nome"`
	Sexo           string     `json:"sexo"`
	Cor            string     `json:"cor"`
	DataNascimento *time.Time `json:"data_nascimento,omitempty"`
	Idade          int        `json:"idade"`
	Descricao      string     `json:"descricao"`
	Foto           string     `json:"foto,omitempty"`
	Disponivel     bool       `json:"disponivel"`
	CriadoEm       time.Time  `json:"criado_em"`
	AtualizadoEm   time.Time  `json:"atualizado_em"`
}

func createGatoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createGatoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		nascimento, ok := parseData(w, req.DataNascimento)
		if !ok {
			return
		}

		g, err := svc.Create(r.Context(), CreateInput{
			Nome:           req.Nome,
			Sexo:           req.Sexo,
			Cor:            req.Cor,
			DataNascimento: nascimento,
			RacaID:         req.RacaID,
			Descricao:      req.Descricao,
		})
		if err != nil {
			web.WriteErro(w, err, http.StatusInternalServerError, "internal error")
			return
		}

		web.WriteJSON(w, http.StatusCreated, toGatoResponse(g))
	}
}

func searchGatosHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nome := r.URL.Query().Get("nome")

		var disponivel *bool
		switch strings.ToLower(r.URL.Query().Get("disponivel")) {
		case "true", "1":
			v := true
			disponivel = &v
		case "false", "0":
			v := false
			disponivel = &v
		}

		gatos, err := svc.Search(r.Context(), nome, disponivel)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		web.WriteJSON(w, http.StatusOK, toGatoResponses(gatos))
	}
}

func listDisponiveisHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gatos, err := svc.ListDisponiveis(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		web.WriteJSON(w, http.StatusOK, toGatoResponses(gatos))
	}
}

func listPorRacaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gatos, err := svc.ListByRaca(r.Context(), chi.URLParam(r, "racaID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		web.WriteJSON(w, http.StatusOK, toGatoResponses(gatos))
	}
}

func getGatoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := svc.GetByID(r.Context(), chi.URLParam(r, "gatoID"))
		if err != nil {
			http.Error(w, "gato não encontrado", http.StatusNotFound)
			return
		}
		web.WriteJSON(w, http.StatusOK, toGatoResponse(g))
	}
}

func updateGatoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateGatoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			Nome:       req.Nome,
			Sexo:       req.Sexo,
			Cor:        req.Cor,
			RacaID:     req.RacaID,
			Descricao:  req.Descricao,
			Disponivel: req.Disponivel,
		}
		if req.DataNascimento != nil {
			nascimento, ok := parseData(w, *req.DataNascimento)
			if !ok {
				return
			}
			in.DataNascimento = nascimento
		}

		g, err := svc.Update(r.Context(), chi.URLParam(r, "gatoID"), in)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "gato não encontrado", http.StatusNotFound)
				return
			}
			web.WriteErro(w, err, http.StatusInternalServerError, "internal error")
			return
		}

		web.WriteJSON(w, http.StatusOK, toGatoResponse(g))
	}
}

func deleteGatoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		removido, err := svc.Delete(r.Context(), chi.URLParam(r, "gatoID"))
		if err != nil {
			if errors.Is(err, ErrVinculado) {
				http.Error(w, "gato vinculado a solicitação de adoção", http.StatusConflict)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !removido {
			http.Error(w, "gato não encontrado", http.StatusNotFound)
			return
		}

		w.WriteHeader(http.StatusNoContent)
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

		g, err := svc.AnexarFoto(r.Context(), chi.URLParam(r, "gatoID"), header.Filename, file)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "gato não encontrado", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		web.WriteJSON(w, http.StatusOK, toGatoResponse(g))
	}
}

// parseData aceita vazio (nil) ou YYYY-MM-DD; escreve 400 quando inválida.
func parseData(w http.ResponseWriter, s string) (*time.Time, bool) {
	if strings.TrimSpace(s) == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		http.Error(w, "data_nascimento must be YYYY-MM-DD", http.StatusBadRequest)
		return nil, false
	}
	return &t, true
}

func toGatoResponse(g Gato) gatoResponse {
	return gatoResponse{
		ID:             g.ID,
		RacaID:         g.RacaID,
		Nome:           g.Nome,
		Sexo:           string(g.Sexo),
		Cor:            g.Cor,
		DataNascimento: g.DataNascimento,
		Idade:          g.Idade(time.Now()),
		Descricao:      g.Descricao,
		Foto:           g.Foto,
		Disponivel:     g.Disponivel,
		CriadoEm:       g.CriadoEm,
		AtualizadoEm:   g.AtualizadoEm,
	}
}

func toGatoResponses(gatos []Gato) []gatoResponse {
	out := make([]gatoResponse, 0, len(gatos))
	for _, g := range gatos {
		out = append(out, toGatoResponse(g))
	}
	return out
}
