package usecase

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var digitsOnly = regexp.MustCompile(`\D`)

// Tabela de prefixos de bandeira, na ordem em que são testados.
var cardBrandPatterns = []struct {
	brand   string
	pattern *regexp.Regexp
}{
	{"visa", regexp.MustCompile(`^4`)},
	{"mastercard", regexp.MustCompile(`^5[1-5]`)},
	{"amex", regexp.MustCompile(`^3[47]`)},
	{"discover", regexp.MustCompile(`^6(?:011|5)`)},
	{"jcb", regexp.MustCompile(`^(?:2131|1800|35)`)},
	{"diners", regexp.MustCompile(`^3(?:0[0-5]|[68])`)},
	{"elo", regexp.MustCompile(`^(?:5[0678]|6304|6390|67)`)},
}

// ValidateCardNumber: só dígitos, 13 a 19 posições, checksum de Luhn.
func ValidateCardNumber(cardNumber string) bool {
	cleaned := digitsOnly.ReplaceAllString(cardNumber, "")
	if len(cleaned) < 13 || len(cleaned) > 19 {
		return false
	}
	return luhnCheck(cleaned)
}

func luhnCheck(num string) bool {
	sum := 0
	double := false

	for i := len(num) - 1; i >= 0; i-- {
		digit := int(num[i] - '0')

		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		double = !double
	}

	return sum%10 == 0
}

// ValidateExpirationDate aceita MM/YY com mês 01-12; válido se o
// primeiro dia do mês informado não for anterior ao mês corrente.
func ValidateExpirationDate(expiry string) bool {
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 {
		return false
	}

	if !regexp.MustCompile(`^(0[1-9]|1[0-2])$`).MatchString(parts[0]) {
		return false
	}
	if !regexp.MustCompile(`^\d{2}$`).MatchString(parts[1]) {
		return false
	}

	month, _ := strconv.Atoi(parts[0])
	year, _ := strconv.Atoi(parts[1])
	year += 2000

	now := time.Now()
	cardMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	return !cardMonth.Before(currentMonth)
}

// ValidateCVV: exatamente 3 ou 4 dígitos.
func ValidateCVV(cvv string) bool {
	return regexp.MustCompile(`^\d{3,4}$`).MatchString(cvv)
}

// DetectCardType devolve a bandeira pelo prefixo ou "unknown".
// Números abaixo do tamanho mínimo de cartão não têm bandeira.
func DetectCardType(cardNumber string) string {
	cleaned := digitsOnly.ReplaceAllString(cardNumber, "")
	if len(cleaned) < 13 {
		return "unknown"
	}

	for _, entry := range cardBrandPatterns {
		if entry.pattern.MatchString(cleaned) {
			return entry.brand
		}
	}

	return "unknown"
}

// LastDigits devolve os 4 últimos dígitos para registro da transação.
func LastDigits(cardNumber string) string {
	cleaned := digitsOnly.ReplaceAllString(cardNumber, "")
	if len(cleaned) < 4 {
		return cleaned
	}
	return cleaned[len(cleaned)-4:]
}
