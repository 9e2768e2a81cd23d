package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anaconecta/conecta-api/internal/entity"
	"github.com/anaconecta/conecta-api/internal/infra/http/middleware"
	"github.com/anaconecta/conecta-api/internal/usecase"
)

type PaymentHandler struct {
	UC *usecase.PaymentUseCase
}

func NewPaymentHandler(uc *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{UC: uc}
}

func (h *PaymentHandler) CreatePixCharge(w http.ResponseWriter, r *http.Request) {
	var input usecase.PixChargeInput
	if !decodeBody(w, r, &input) {
		return
	}

	charge, err := h.UC.CreatePixCharge(r.Context(), input)
	if err != nil {
		if usecase.IsTechnicalError(err) {
			middleware.RecordIntegrationError("pix")
		}
		writeError(w, err)
		return
	}

	middleware.RecordPayment(entity.PaymentMethodPix, entity.PixStatusPending)
	writeJSON(w, http.StatusCreated, charge)
}

func (h *PaymentHandler) PixStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.UC.PixStatus(r.Context(), chi.URLParam(r, "reference"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *PaymentHandler) ProcessCardPayment(w http.ResponseWriter, r *http.Request) {
	var input usecase.CardPaymentInput
	if !decodeBody(w, r, &input) {
		return
	}

	output, err := h.UC.ProcessCardPayment(r.Context(), input)
	if err != nil {
		if usecase.IsTechnicalError(err) {
			middleware.RecordIntegrationError("cardpay")
		}
		middleware.RecordPayment(entity.PaymentMethodCreditCard, "failed")
		writeError(w, err)
		return
	}

	middleware.RecordPayment(entity.PaymentMethodCreditCard, output.Status)
	writeJSON(w, http.StatusOK, output)
}

// Installments devolve a simulação de parcelas para o valor informado.
func (h *PaymentHandler) Installments(w http.ResponseWriter, r *http.Request) {
	installments, err := h.UC.Installments(r.URL.Query().Get("amount"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, installments)
}
