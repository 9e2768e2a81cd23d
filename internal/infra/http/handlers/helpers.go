package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/anaconecta/conecta-api/internal/entity"
	"github.com/anaconecta/conecta-api/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError traduz o erro para o envelope {"error": ...}. Recurso
// inexistente sai com a mesma mensagem genérica sempre, sem dizer qual
// recurso faltou.
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "recurso não encontrado"})
		return
	}

	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": domainErr.Message})
		return
	}

	var techErr *usecase.TechnicalError
	if errors.As(err, &techErr) {
		status := http.StatusInternalServerError
		if strings.Contains(techErr.Code, "GATEWAY") || techErr.Code == "WHATSAPP_ERROR" {
			status = http.StatusBadGateway
		}
		writeJSON(w, status, map[string]string{"error": techErr.Message})
		return
	}

	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "erro interno"})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido: " + err.Error()})
		return false
	}
	return true
}
