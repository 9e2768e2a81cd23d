package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anaconecta/conecta-api/internal/infra/http/middleware"
	"github.com/anaconecta/conecta-api/internal/usecase"
)

type PortalHandler struct {
	Portal   *usecase.PortalUseCase
	Payments *usecase.PaymentUseCase
}

func NewPortalHandler(portal *usecase.PortalUseCase, payments *usecase.PaymentUseCase) *PortalHandler {
	return &PortalHandler{Portal: portal, Payments: payments}
}

func (h *PortalHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	views, err := h.Portal.ListServices(r.Context(), r.URL.Query().Get("client_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *PortalHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateServiceInput
	if !decodeBody(w, r, &input) {
		return
	}

	view, err := h.Portal.CreateService(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *PortalHandler) GetService(w http.ResponseWriter, r *http.Request) {
	view, err := h.Portal.GetService(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *PortalHandler) AddChatMessage(w http.ResponseWriter, r *http.Request) {
	var input usecase.ChatMessageInput
	if !decodeBody(w, r, &input) {
		return
	}

	output, err := h.Portal.AddChatMessage(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, output)
}

func (h *PortalHandler) ApproveScope(w http.ResponseWriter, r *http.Request) {
	view, err := h.Portal.ApproveScope(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// PayService cobra o serviço pelo método escolhido. O valor é sempre o
// preço cadastrado, o corpo só indica método e dados do cartão.
func (h *PortalHandler) PayService(w http.ResponseWriter, r *http.Request) {
	var input usecase.ServicePaymentInput
	if !decodeBody(w, r, &input) {
		return
	}

	output, err := h.Payments.PayService(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		middleware.RecordPayment(input.Method, "failed")
		writeError(w, err)
		return
	}

	middleware.RecordPayment(output.Method, "accepted")
	writeJSON(w, http.StatusOK, output)
}

func (h *PortalHandler) CreatePodcast(w http.ResponseWriter, r *http.Request) {
	var input usecase.PodcastEpisodeInput
	if !decodeBody(w, r, &input) {
		return
	}

	episode, err := h.Portal.CreatePodcastEpisode(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, episode)
}

func (h *PortalHandler) ListPodcasts(w http.ResponseWriter, r *http.Request) {
	episodes, err := h.Portal.ListPodcasts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, episodes)
}

func (h *PortalHandler) GetPodcast(w http.ResponseWriter, r *http.Request) {
	episode, err := h.Portal.GetPodcast(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, episode)
}
