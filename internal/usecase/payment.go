package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/anaconecta/conecta-api/internal/entity"
	"github.com/anaconecta/conecta-api/internal/infra/integration/cardpay"
	"github.com/anaconecta/conecta-api/internal/infra/integration/pixdireto"
)

type PixChargeInput struct {
	Amount      string `json:"amount"`
	Description string `json:"description"`
	ClientID    string `json:"client_id"`
	ServiceID   string `json:"service_id"`
}

type PixStatusOutput struct {
	Reference string     `json:"reference"`
	Status    string     `json:"status"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
}

type CardPaymentInput struct {
	Amount      string `json:"amount"`
	Description string `json:"description"`
	ClientID    string `json:"client_id"`
	ServiceID   string `json:"service_id"`

	CardNumber     string `json:"card_number"`
	CardHolderName string `json:"card_holder_name"`
	ExpirationDate string `json:"expiration_date"` // MM/YY
	CVV            string `json:"cvv"`
	Installments   int    `json:"installments"`

	// Para o recibo por email; opcionais.
	PayerName  string `json:"payer_name"`
	PayerEmail string `json:"payer_email"`
}

type CardPaymentOutput struct {
	TransactionID string          `json:"transaction_id"`
	Status        string          `json:"status"`
	CardBrand     string          `json:"card_brand"`
	LastDigits    string          `json:"last_digits"`
	Installments  int             `json:"installments"`
	Amount        decimal.Decimal `json:"amount"`
	Message       string          `json:"message,omitempty"`
}

// PaymentUseCase concentra PIX e cartão. Sem provedor PIX externo opera
// em modo pix_direct, gerando a cobrança com a chave estática do
// recebedor. Sem gateway de cartão nenhuma cobrança é aceita.
type PaymentUseCase struct {
	PaymentRepo PaymentRepository
	ServiceRepo ServiceRepository
	PixGW       PixGateway
	CardGW      CardGateway
	Mailer      ReceiptMailer

	PixKey                   string
	MaxInstallments          int
	InterestFreeInstallments int
}

func NewPaymentUseCase(
	paymentRepo PaymentRepository,
	serviceRepo ServiceRepository,
	pixGW PixGateway,
	cardGW CardGateway,
	mailer ReceiptMailer,
	pixKey string,
	maxInstallments, interestFreeInstallments int,
) *PaymentUseCase {
	return &PaymentUseCase{
		PaymentRepo:              paymentRepo,
		ServiceRepo:              serviceRepo,
		PixGW:                    pixGW,
		CardGW:                   cardGW,
		Mailer:                   mailer,
		PixKey:                   pixKey,
		MaxInstallments:          maxInstallments,
		InterestFreeInstallments: interestFreeInstallments,
	}
}

func (uc *PaymentUseCase) CreatePixCharge(ctx context.Context, input PixChargeInput) (*entity.PixCharge, error) {
	amount, errs := parseAmount(input.Amount)
	if strings.TrimSpace(input.Description) == "" {
		errs = append(errs, ValidationError{"description", "is required"})
	}
	if len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	charge, err := entity.NewPixCharge(amount, input.Description, input.ClientID, input.ServiceID)
	if err != nil {
		return nil, &DomainError{Code: "INVALID_CHARGE", Message: err.Error()}
	}

	if uc.PixGW.Configured() {
		out, err := uc.PixGW.CreateCharge(pixdireto.CreateChargeInput{
			Reference:   charge.Reference,
			Amount:      charge.Amount.StringFixed(2),
			Description: charge.Description,
		})
		if err != nil {
			return nil, &TechnicalError{Code: "PIX_GATEWAY_ERROR", Message: "failed to create pix charge: " + err.Error()}
		}
		charge.PixKey = out.PixKey
		charge.QRCodeURL = out.QRCodeURL
		if !out.ExpiresAt.IsZero() {
			charge.ExpiresAt = out.ExpiresAt
		}
	} else {
		charge.PixKey = uc.PixKey
		charge.QRCodeURL = pixQRCodeURL(uc.PixKey, charge.Amount, charge.Reference)
	}

	if err := uc.PaymentRepo.CreatePixCharge(ctx, charge); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist pix charge: " + err.Error()}
	}

	return charge, nil
}

// PixStatus consulta a cobrança local e, com provedor configurado,
// sincroniza o status remoto. Falha na consulta remota não derruba a
// resposta: devolve o estado local conhecido.
func (uc *PaymentUseCase) PixStatus(ctx context.Context, reference string) (*PixStatusOutput, error) {
	charge, err := uc.PaymentRepo.FindPixChargeByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	if charge.Status == entity.PixStatusPending && time.Now().After(charge.ExpiresAt) {
		if err := uc.PaymentRepo.UpdatePixChargeStatus(ctx, charge.Reference, entity.PixStatusExpired); err != nil {
			log.Printf("⚠️ Erro ao expirar cobrança %s: %v", charge.Reference, err)
		} else {
			charge.Status = entity.PixStatusExpired
		}
	}

	if charge.Status == entity.PixStatusPending && uc.PixGW.Configured() {
		remote, err := uc.PixGW.ChargeStatus(charge.Reference)
		if err != nil {
			log.Printf("⚠️ Erro ao consultar provedor pix para %s: %v", charge.Reference, err)
		} else if remote.Status == entity.PixStatusPaid {
			if err := uc.markPixPaid(ctx, charge); err != nil {
				return nil, err
			}
			charge.Status = entity.PixStatusPaid
			charge.PaidAt = remote.PaidAt
		}
	}

	return &PixStatusOutput{
		Reference: charge.Reference,
		Status:    charge.Status,
		PaidAt:    charge.PaidAt,
	}, nil
}

func (uc *PaymentUseCase) markPixPaid(ctx context.Context, charge *entity.PixCharge) error {
	if err := uc.PaymentRepo.UpdatePixChargeStatus(ctx, charge.Reference, entity.PixStatusPaid); err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to mark pix charge as paid: " + err.Error()}
	}

	if charge.ServiceID != "" {
		uc.moveServiceToInProgress(ctx, charge.ServiceID)
	}
	return nil
}

func (uc *PaymentUseCase) ProcessCardPayment(ctx context.Context, input CardPaymentInput) (*CardPaymentOutput, error) {
	amount, errs := parseAmount(input.Amount)
	errs = append(errs, validateCardInput(input)...)
	if input.Installments < 1 || input.Installments > uc.MaxInstallments {
		errs = append(errs, ValidationError{"installments", fmt.Sprintf("must be between 1 and %d", uc.MaxInstallments)})
	}
	if len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	if !uc.CardGW.Configured() {
		return nil, &TechnicalError{Code: "CARD_GATEWAY_UNAVAILABLE", Message: "card gateway is not configured"}
	}

	brand := DetectCardType(input.CardNumber)
	lastDigits := LastDigits(input.CardNumber)
	expiryParts := strings.Split(input.ExpirationDate, "/")

	out, err := uc.CardGW.Charge(cardpay.ChargeInput{
		Amount:         amount.StringFixed(2),
		Installments:   input.Installments,
		Description:    input.Description,
		CardNumber:     digitsOnly.ReplaceAllString(input.CardNumber, ""),
		CardHolderName: strings.TrimSpace(input.CardHolderName),
		ExpiryMonth:    expiryParts[0],
		ExpiryYear:     expiryParts[1],
		CVV:            input.CVV,
	})
	if err != nil {
		return nil, &TechnicalError{Code: "CARD_GATEWAY_ERROR", Message: "card charge failed: " + err.Error()}
	}

	tx := entity.NewCardTransaction(amount, input.Description, input.ClientID, input.ServiceID, brand, lastDigits, input.Installments)
	if out.TransactionID != "" {
		tx.TransactionID = out.TransactionID
	}

	if out.Status == entity.CardStatusApproved {
		tx.Status = entity.CardStatusApproved
	} else {
		tx.Status = entity.CardStatusDeclined
	}

	if err := uc.PaymentRepo.CreateCardTransaction(ctx, tx); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist card transaction: " + err.Error()}
	}

	if tx.Status != entity.CardStatusApproved {
		return nil, &DomainError{Code: "CARD_DECLINED", Message: declineMessage(out.Message)}
	}

	if input.ServiceID != "" {
		uc.moveServiceToInProgress(ctx, input.ServiceID)
	}
	uc.sendReceipt(input, tx)

	return &CardPaymentOutput{
		TransactionID: tx.TransactionID,
		Status:        tx.Status,
		CardBrand:     brand,
		LastDigits:    lastDigits,
		Installments:  tx.Installments,
		Amount:        tx.Amount,
		Message:       out.Message,
	}, nil
}

type ServicePaymentInput struct {
	Method string           `json:"method"` // pix | credit_card
	Card   CardPaymentInput `json:"card"`
}

type ServicePaymentOutput struct {
	Method string             `json:"method"`
	Pix    *entity.PixCharge  `json:"pix,omitempty"`
	Card   *CardPaymentOutput `json:"card,omitempty"`
}

// PayService cobra um serviço do portal. Só serviços com proposta
// enviada ou contrato assinado aceitam pagamento; o valor vem do preço
// cadastrado no serviço, nunca do corpo da requisição.
func (uc *PaymentUseCase) PayService(ctx context.Context, serviceID string, input ServicePaymentInput) (*ServicePaymentOutput, error) {
	svc, err := uc.ServiceRepo.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if !svc.CanPay() {
		return nil, &DomainError{Code: "PAYMENT_NOT_ALLOWED", Message: "service status does not allow payment: " + svc.Status}
	}

	amount, err := parseServicePrice(svc.Price)
	if err != nil {
		return nil, &DomainError{Code: "INVALID_PRICE", Message: "service has no payable price"}
	}

	switch input.Method {
	case entity.PaymentMethodPix:
		charge, err := uc.CreatePixCharge(ctx, PixChargeInput{
			Amount:      amount.StringFixed(2),
			Description: svc.Title,
			ClientID:    svc.ClientID,
			ServiceID:   svc.ID,
		})
		if err != nil {
			return nil, err
		}
		return &ServicePaymentOutput{Method: entity.PaymentMethodPix, Pix: charge}, nil

	case entity.PaymentMethodCreditCard:
		card := input.Card
		card.Amount = amount.StringFixed(2)
		card.Description = svc.Title
		card.ClientID = svc.ClientID
		card.ServiceID = svc.ID

		out, err := uc.ProcessCardPayment(ctx, card)
		if err != nil {
			return nil, err
		}
		return &ServicePaymentOutput{Method: entity.PaymentMethodCreditCard, Card: out}, nil
	}

	return nil, &DomainError{Code: "INVALID_METHOD", Message: "method must be pix or credit_card"}
}

// parseServicePrice aceita tanto "1500.00" quanto o formato exibido no
// portal ("R$ 1.500,00").
func parseServicePrice(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "R$"))
	cleaned = strings.TrimSpace(cleaned)
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, errors.New("price must be greater than zero")
	}
	return amount, nil
}

// Installments devolve a tabela de parcelas para o valor informado,
// usando os limites configurados.
func (uc *PaymentUseCase) Installments(amountStr string) ([]Installment, error) {
	amount, errs := parseAmount(amountStr)
	if len(errs) > 0 {
		return nil, validationFailed(errs)
	}
	return CalculateInstallments(amount, uc.MaxInstallments, uc.InterestFreeInstallments), nil
}

// moveServiceToInProgress avança o serviço pago; falhas aqui não
// desfazem o pagamento já confirmado, só registram o problema.
func (uc *PaymentUseCase) moveServiceToInProgress(ctx context.Context, serviceID string) {
	svc, err := uc.ServiceRepo.FindByID(ctx, serviceID)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			log.Printf("⚠️ Erro ao buscar serviço %s após pagamento: %v", serviceID, err)
		}
		return
	}

	if svc.Status == entity.MentorshipStatusInProgress || svc.Status == entity.MentorshipStatusCompleted {
		return
	}

	if err := svc.UpdateStatus(entity.MentorshipStatusInProgress); err != nil {
		return
	}
	if err := uc.ServiceRepo.Save(ctx, svc); err != nil {
		log.Printf("⚠️ Erro ao atualizar serviço %s após pagamento: %v", serviceID, err)
	}
}

func (uc *PaymentUseCase) sendReceipt(input CardPaymentInput, tx *entity.CardTransaction) {
	if uc.Mailer == nil || strings.TrimSpace(input.PayerEmail) == "" {
		return
	}

	name := strings.TrimSpace(input.PayerName)
	if name == "" {
		name = strings.TrimSpace(input.CardHolderName)
	}

	if err := uc.Mailer.SendReceipt(input.PayerEmail, name, tx.Description, tx.Amount.StringFixed(2)); err != nil {
		log.Printf("⚠️ Erro ao enviar recibo para %s: %v", input.PayerEmail, err)
	}
}

func validateCardInput(input CardPaymentInput) []ValidationError {
	var errs []ValidationError

	if !ValidateCardNumber(input.CardNumber) {
		errs = append(errs, ValidationError{"card_number", "invalid card number"})
	}
	if strings.TrimSpace(input.CardHolderName) == "" {
		errs = append(errs, ValidationError{"card_holder_name", "is required"})
	}
	if !ValidateExpirationDate(input.ExpirationDate) {
		errs = append(errs, ValidationError{"expiration_date", "invalid or expired (MM/YY)"})
	}
	if !ValidateCVV(input.CVV) {
		errs = append(errs, ValidationError{"cvv", "must be 3 or 4 digits"})
	}

	return errs
}

func parseAmount(raw string) (decimal.Decimal, []ValidationError) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, []ValidationError{{"amount", "must be a decimal number"}}
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, []ValidationError{{"amount", "must be greater than zero"}}
	}
	return amount, nil
}

func declineMessage(gatewayMsg string) string {
	if strings.TrimSpace(gatewayMsg) == "" {
		return "pagamento recusado pelo emissor"
	}
	return gatewayMsg
}

// pixQRCodeURL monta a URL do QR code no modo pix_direct, com o payload
// copia-e-cola simplificado usado pelo portal.
func pixQRCodeURL(pixKey string, amount decimal.Decimal, reference string) string {
	payload := fmt.Sprintf("PIX|%s|%s|%s", pixKey, amount.StringFixed(2), reference)
	return "https://api.qrserver.com/v1/create-qr-code/?size=220x220&data=" + url.QueryEscape(payload)
}
