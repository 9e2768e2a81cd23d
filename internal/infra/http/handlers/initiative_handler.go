package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anaconecta/conecta-api/internal/usecase"
)

type InitiativeHandler struct {
	UC *usecase.InitiativeUseCase
}

func NewInitiativeHandler(uc *usecase.InitiativeUseCase) *InitiativeHandler {
	return &InitiativeHandler{UC: uc}
}

func (h *InitiativeHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	initiatives, err := h.UC.List(r.Context(), q.Get("category"), q.Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, initiatives)
}

func (h *InitiativeHandler) Get(w http.ResponseWriter, r *http.Request) {
	initiative, err := h.UC.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, initiative)
}

// Categories devolve as categorias semeadas no banco, na ordem de
// exibição.
func (h *InitiativeHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.UC.Categories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *InitiativeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.InitiativeInput
	if !decodeBody(w, r, &input) {
		return
	}

	initiative, err := h.UC.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, initiative)
}

func (h *InitiativeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.InitiativeInput
	if !decodeBody(w, r, &input) {
		return
	}

	initiative, err := h.UC.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, initiative)
}

func (h *InitiativeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.UC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "iniciativa removida"})
}
