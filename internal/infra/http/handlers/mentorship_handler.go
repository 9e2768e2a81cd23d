package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anaconecta/conecta-api/internal/usecase"
)

type MentorshipHandler struct {
	UC *usecase.MentorshipUseCase
}

func NewMentorshipHandler(uc *usecase.MentorshipUseCase) *MentorshipHandler {
	return &MentorshipHandler{UC: uc}
}

func (h *MentorshipHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	mentorships, err := h.UC.List(r.Context(), q.Get("client_id"), q.Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mentorships)
}

func (h *MentorshipHandler) Get(w http.ResponseWriter, r *http.Request) {
	mentorship, err := h.UC.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mentorship)
}

func (h *MentorshipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.MentorshipInput
	if !decodeBody(w, r, &input) {
		return
	}

	mentorship, err := h.UC.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mentorship)
}

func (h *MentorshipHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.MentorshipInput
	if !decodeBody(w, r, &input) {
		return
	}

	mentorship, err := h.UC.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mentorship)
}

func (h *MentorshipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.UC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "mentoria removida"})
}
