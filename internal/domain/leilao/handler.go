package leilao

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
	r.Route("/participantes", func(pr chi.Router) {
		pr.Post("/", createParticipanteHandler(svc))
	})
	r.Route("/leiloes", func(lr chi.Router) {
		lr.Post("/", createLeilaoHandler(svc))
		lr.Get("/", listLeiloesHandler(svc))
		lr.Get("/{leilaoID}", getLeilaoHandler(svc))
		lr.Post("/{leilaoID}/itens", createItemHandler(svc))
		lr.Get("/{leilaoID}/relatorio", relatorioHandler(svc))
	})
	r.Post("/itens/{itemID}/lances", registrarLanceHandler(svc))
}

type participanteRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Endereco string `json:"endereco"`
}

type participanteResponse struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Endereco string `json:"endereco"`
}

type leilaoRequest struct {
	Inicio  time.Time `json:"inicio"`
	Termino time.Time `json:"termino"`
}

type leilaoResponse struct {
	ID      string    `json:"id"`
	Inicio  time.Time `json:"inicio"`
	Termino time.Time `json:"termino"`
}

type itemRequest struct {
	Titulo      string  `json:"titulo"`
	Descricao   string  `json:"descricao"`
	LanceMinimo float64 `json:"lance_minimo"`
}

type itemResponse struct {
	ID          string  `json:"id"`
	LeilaoID    string  `json:"leilao_id"`
	Titulo      string  `json:"titulo"`
	Descricao   string  `json:"descricao,omitempty"`
	LanceMinimo float64 `json:"lance_minimo"`
	Arrematado  bool    `json:"arrematado"`
}

type lanceRequest struct {
	Valor float64 `json:"valor"`
}

type lanceResponse struct {
	ID             string    `json:"id"`
	ItemID         string    `json:"item_id"`
	ParticipanteID string    `json:"participante_id"`
	Valor          float64   `json:"valor"`
	HoraLance      time.Time `json:"hora_lance"`
}

type itemRelatorioResponse struct {
	itemResponse
	TotalLances int `json:"total_lances"`
}

func createParticipanteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req participanteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.CreateParticipante(r.Context(), req.Nome, req.Email, req.Endereco)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		web.WriteJSON(w, http.StatusCreated, participanteResponse(p))
	}
}

func createLeilaoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req leilaoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		l, err := svc.CreateLeilao(r.Context(), req.Inicio, req.Termino)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		web.WriteJSON(w, http.StatusCreated, leilaoResponse(l))
	}
}

func listLeiloesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leiloes, err := svc.ListLeiloes(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]leilaoResponse, 0, len(leiloes))
		for _, l := range leiloes {
			out = append(out, leilaoResponse(l))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

func getLeilaoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, err := svc.GetLeilao(r.Context(), chi.URLParam(r, "leilaoID"))
		if err != nil {
			http.Error(w, "leilão não encontrado", http.StatusNotFound)
			return
		}
		web.WriteJSON(w, http.StatusOK, leilaoResponse(l))
	}
}

func createItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req itemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		item, err := svc.CreateItem(r.Context(), chi.URLParam(r, "leilaoID"), req.Titulo, req.Descricao, req.LanceMinimo)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "leilão não encontrado", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		web.WriteJSON(w, http.StatusCreated, toItemResponse(item))
	}
}

// O participante que dá o lance vem dos claims.
func registrarLanceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || claims.UserID == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req lanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		lance, err := svc.RegistrarLance(r.Context(), chi.URLParam(r, "itemID"), claims.UserID, req.Valor)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "item não encontrado", http.StatusNotFound)
			case errors.Is(err, ErrParticipanteInvalido):
				http.Error(w, "apenas participantes cadastrados dão lances", http.StatusForbidden)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		web.WriteJSON(w, http.StatusCreated, lanceResponse(lance))
	}
}

func relatorioHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		linhas, err := svc.Relatorio(r.Context(), chi.URLParam(r, "leilaoID"), r.URL.Query().Get("titulo"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "leilão não encontrado", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]itemRelatorioResponse, 0, len(linhas))
		for _, linha := range linhas {
			out = append(out, itemRelatorioResponse{
				itemResponse: toItemResponse(linha.ItemLeilao),
				TotalLances:  linha.TotalLances,
			})
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

func toItemResponse(i ItemLeilao) itemResponse {
	return itemResponse{
		ID:          i.ID,
		LeilaoID:    i.LeilaoID,
		Titulo:      i.Titulo,
		Descricao:   i.Descricao,
		LanceMinimo: i.LanceMinimo,
		Arrematado:  i.Arrematado,
	}
}
