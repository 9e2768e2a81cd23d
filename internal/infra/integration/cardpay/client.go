package cardpay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client envia cobranças avulsas ao gateway de cartão. Os dados do
// cartão só transitam aqui; nunca são persistidos.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured indica se o gateway de cartão está disponível. Sem ele
// nenhuma cobrança é tentada; o usecase devolve indisponibilidade.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.apiKey != ""
}

func (c *Client) Charge(input ChargeInput) (*ChargeOutput, error) {
	url := fmt.Sprintf("%s/charges", c.baseURL)

	payload := chargeRequest{
		Amount:       input.Amount,
		Installments: input.Installments,
		Description:  input.Description,
		Card: creditCard{
			Number:      input.CardNumber,
			HolderName:  input.CardHolderName,
			ExpiryMonth: input.ExpiryMonth,
			ExpiryYear:  input.ExpiryYear,
			CVV:         input.CVV,
		},
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar json: %w", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro na conexão com o gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gateway recusou a cobrança (status %d): %s", resp.StatusCode, string(body))
	}

	var response chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro decode gateway: %w", err)
	}

	return &ChargeOutput{
		TransactionID: response.TransactionID,
		Status:        response.Status,
		Message:       response.Message,
	}, nil
}
