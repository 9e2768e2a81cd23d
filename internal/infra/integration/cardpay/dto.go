package cardpay

type ChargeInput struct {
	Amount       string // decimal com 2 casas
	Installments int
	Description  string

	CardNumber     string
	CardHolderName string
	ExpiryMonth    string
	ExpiryYear     string
	CVV            string
}

type ChargeOutput struct {
	TransactionID string
	Status        string // approved | declined
	Message       string
}

type chargeRequest struct {
	Amount       string     `json:"amount"`
	Installments int        `json:"installments"`
	Description  string     `json:"description"`
	Card         creditCard `json:"card"`
}

type creditCard struct {
	Number      string `json:"number"`
	HolderName  string `json:"holder_name"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVV         string `json:"cvv"`
}

type chargeResponse struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}
