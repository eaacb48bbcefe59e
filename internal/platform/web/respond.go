package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"adocato/internal/domain/validacao"
)

// Helpers de resposta compartilhados pelos handlers de todos os módulos
// (o mesmo writeJSON se repetia módulo a módulo; extraído quando passou de dois).

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errosResponse struct {
	Erros validacao.Erros `json:"erros"`
}

// WriteErro responde falhas de validação como {"erros": {campo: [msgs]}} com 400.
// Outros erros caem no status/msg informados.
func WriteErro(w http.ResponseWriter, err error, status int, msg string) {
	var verros validacao.Erros
	if errors.As(err, &verros) {
		WriteJSON(w, http.StatusBadRequest, errosResponse{Erros: verros})
		return
	}
	http.Error(w, msg, status)
}
