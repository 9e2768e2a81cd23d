package handlers

import (
	"net/http"

	"github.com/anaconecta/conecta-api/internal/infra/http/middleware"
	"github.com/anaconecta/conecta-api/internal/usecase"
)

type WhatsAppHandler struct {
	UC *usecase.WhatsAppUseCase
}

func NewWhatsAppHandler(uc *usecase.WhatsAppUseCase) *WhatsAppHandler {
	return &WhatsAppHandler{UC: uc}
}

func (h *WhatsAppHandler) Send(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendWhatsAppInput
	if !decodeBody(w, r, &input) {
		return
	}

	output, err := h.UC.Send(r.Context(), input)
	if err != nil {
		if usecase.IsTechnicalError(err) {
			middleware.RecordIntegrationError("whatsapp")
		}
		writeError(w, err)
		return
	}

	if output.Sent {
		middleware.RecordWhatsAppMessage("direct", "sent")
	} else {
		middleware.RecordWhatsAppMessage("direct", "deep_link")
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *WhatsAppHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var input usecase.ScheduleWhatsAppInput
	if !decodeBody(w, r, &input) {
		return
	}

	msg, err := h.UC.Schedule(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordWhatsAppMessage("scheduled", msg.Status)
	writeJSON(w, http.StatusCreated, msg)
}
