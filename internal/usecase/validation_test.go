package usecase

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateCardNumber(t *testing.T) {
	// Número de teste válido (Luhn check)
	assert.True(t, ValidateCardNumber("4532015112830366"))
	// Mesmo número com o último dígito trocado
	assert.False(t, ValidateCardNumber("4532015112830367"))

	// Formatação com espaços e traços é ignorada
	assert.True(t, ValidateCardNumber("4532 0151 1283 0366"))
	assert.True(t, ValidateCardNumber("4532-0151-1283-0366"))

	// Curto demais / longo demais
	assert.False(t, ValidateCardNumber("123456789012"))
	assert.False(t, ValidateCardNumber("12345678901234567890"))
	assert.False(t, ValidateCardNumber(""))
}

func TestValidateExpirationDate(t *testing.T) {
	future := time.Now().AddDate(2, 0, 0)
	futureExpiry := fmt.Sprintf("%02d/%02d", int(future.Month()), future.Year()%100)
	assert.True(t, ValidateExpirationDate(futureExpiry))

	// Mês corrente ainda vale
	now := time.Now()
	currentExpiry := fmt.Sprintf("%02d/%02d", int(now.Month()), now.Year()%100)
	assert.True(t, ValidateExpirationDate(currentExpiry))

	// Vencido
	assert.False(t, ValidateExpirationDate("01/20"))

	// Formato errado
	assert.False(t, ValidateExpirationDate("13/30"))
	assert.False(t, ValidateExpirationDate("00/30"))
	assert.False(t, ValidateExpirationDate("1/30"))
	assert.False(t, ValidateExpirationDate("12-30"))
	assert.False(t, ValidateExpirationDate("12/2030"))
	assert.False(t, ValidateExpirationDate(""))
}

func TestValidateCVV(t *testing.T) {
	assert.True(t, ValidateCVV("123"))
	assert.True(t, ValidateCVV("1234"))

	assert.False(t, ValidateCVV("12"))
	assert.False(t, ValidateCVV("12345"))
	assert.False(t, ValidateCVV("12a"))
	assert.False(t, ValidateCVV(""))
}

func TestDetectCardType(t *testing.T) {
	assert.Equal(t, "visa", DetectCardType("4111111111111111"))
	assert.Equal(t, "mastercard", DetectCardType("5500000000000004"))
	assert.Equal(t, "amex", DetectCardType("340000000000009"))
	assert.Equal(t, "discover", DetectCardType("6011000000000004"))
	assert.Equal(t, "jcb", DetectCardType("3530111333300000"))
	assert.Equal(t, "diners", DetectCardType("30569309025904"))
	assert.Equal(t, "elo", DetectCardType("6304000000000000"))

	// Prefixo que não casa com nada
	assert.Equal(t, "unknown", DetectCardType("0000000000000000"))
	assert.Equal(t, "unknown", DetectCardType(""))

	// Curto demais para ter bandeira, mesmo com prefixo conhecido
	assert.Equal(t, "unknown", DetectCardType("411"))
	assert.Equal(t, "unknown", DetectCardType("4111 1111 1111"))
}

func TestLastDigits(t *testing.T) {
	assert.Equal(t, "0366", LastDigits("4532 0151 1283 0366"))
	assert.Equal(t, "123", LastDigits("123"))
}
