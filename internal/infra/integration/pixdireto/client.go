package pixdireto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client fala com o provedor de cobranças PIX.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured indica se há provedor externo; sem ele o usecase opera em
// modo pix_direct com a chave estática do recebedor.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.apiKey != ""
}

func (c *Client) CreateCharge(input CreateChargeInput) (*ChargeOutput, error) {
	url := fmt.Sprintf("%s/charges", c.baseURL)

	payload := createChargeRequest{
		Reference:   input.Reference,
		Amount:      input.Amount,
		Description: input.Description,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao marshal cobrança: %w", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request pix: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("erro criar cobrança pix (status %d): %s", resp.StatusCode, string(body))
	}

	var response chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro decode pix: %w", err)
	}

	return &ChargeOutput{
		Reference: response.Reference,
		PixKey:    response.PixKey,
		QRCodeURL: response.QRCodeURL,
		ExpiresAt: response.ExpiresAt,
	}, nil
}

func (c *Client) ChargeStatus(reference string) (*ChargeStatusOutput, error) {
	url := fmt.Sprintf("%s/charges/%s", c.baseURL, reference)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request pix: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("erro consultar cobrança pix (status %d)", resp.StatusCode)
	}

	var response chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro decode pix: %w", err)
	}

	return &ChargeStatusOutput{Status: response.Status, PaidAt: response.PaidAt}, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}
