package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Métodos de pagamento aceitos
const (
	PaymentMethodPix        = "pix"
	PaymentMethodCreditCard = "credit_card"
)

// Status de cobrança PIX
const (
	PixStatusPending = "pending"
	PixStatusPaid    = "paid"
	PixStatusExpired = "expired"
)

// Status de transação de cartão
const (
	CardStatusApproved = "approved"
	CardStatusDeclined = "declined"
)

// Cobranças PIX expiram em 24h (prazo do QR code gerado).
const PixChargeTTL = 24 * time.Hour

// PixCharge é uma cobrança PIX aguardando confirmação do pagador.
type PixCharge struct {
	Reference   string          `json:"reference"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	ClientID    string          `json:"client_id"`
	ServiceID   string          `json:"service_id"`
	PixKey      string          `json:"pix_key"`
	QRCodeURL   string          `json:"qr_code_url"`
	Status      string          `json:"status"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	ExpiresAt   time.Time       `json:"expires_at"`
	CreatedAt   time.Time       `json:"created_at"`
}

func NewPixCharge(amount decimal.Decimal, description, clientID, serviceID string) (*PixCharge, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, errors.New("amount must be greater than zero")
	}
	if strings.TrimSpace(description) == "" {
		return nil, errors.New("description is required")
	}

	now := time.Now()
	return &PixCharge{
		Reference:   "REF-" + uuid.New().String(),
		Amount:      amount,
		Description: description,
		ClientID:    clientID,
		ServiceID:   serviceID,
		Status:      PixStatusPending,
		ExpiresAt:   now.Add(PixChargeTTL),
		CreatedAt:   now,
	}, nil
}

// CardTransaction é o registro de uma tentativa de cobrança no cartão.
// Os dados do cartão em si nunca são persistidos.
type CardTransaction struct {
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	ClientID      string          `json:"client_id"`
	ServiceID     string          `json:"service_id"`
	CardBrand     string          `json:"card_brand"`
	LastDigits    string          `json:"last_digits"`
	Installments  int             `json:"installments"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

func NewCardTransaction(amount decimal.Decimal, description, clientID, serviceID, brand, lastDigits string, installments int) *CardTransaction {
	if installments < 1 {
		installments = 1
	}
	return &CardTransaction{
		TransactionID: "TX-" + uuid.New().String(),
		Amount:        amount,
		Description:   description,
		ClientID:      clientID,
		ServiceID:     serviceID,
		CardBrand:     brand,
		LastDigits:    lastDigits,
		Installments:  installments,
		CreatedAt:     time.Now(),
	}
}
