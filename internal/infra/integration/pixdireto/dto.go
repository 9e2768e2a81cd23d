package pixdireto

import "time"

type CreateChargeInput struct {
	Reference   string
	Amount      string // decimal com 2 casas, ex: "1500.00"
	Description string
}

type ChargeOutput struct {
	Reference string
	PixKey    string
	QRCodeURL string
	ExpiresAt time.Time
}

type ChargeStatusOutput struct {
	Status string // pending | paid | expired
	PaidAt *time.Time
}

type createChargeRequest struct {
	Reference   string `json:"reference"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

type chargeResponse struct {
	Reference string     `json:"reference"`
	PixKey    string     `json:"pix_key"`
	QRCodeURL string     `json:"qr_code_url"`
	ExpiresAt time.Time  `json:"expires_at"`
	Status    string     `json:"status"`
	PaidAt    *time.Time `json:"paid_at"`
}
