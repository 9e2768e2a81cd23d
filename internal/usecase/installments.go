package usecase

import "github.com/shopspring/decimal"

// Juro fixo de 2% por período aplicado além do limite sem juros.
var interestMultiplier = decimal.NewFromFloat(1.02)

type Installment struct {
	Number      int             `json:"number"`
	Amount      decimal.Decimal `json:"amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	HasInterest bool            `json:"has_interest"`
}

// CalculateInstallments monta a tabela de parcelas de 1..max. Parcelas
// acima do limite sem juros recebem o multiplicador único de 2% sobre o
// valor da parcela (sem composição).
func CalculateInstallments(amount decimal.Decimal, maxInstallments, interestFreeInstallments int) []Installment {
	installments := make([]Installment, 0, maxInstallments)

	for i := 1; i <= maxInstallments; i++ {
		count := decimal.NewFromInt(int64(i))
		installmentAmount := amount.Div(count)
		hasInterest := i > interestFreeInstallments

		if hasInterest {
			installmentAmount = installmentAmount.Mul(interestMultiplier)
		}
		installmentAmount = installmentAmount.Round(2)

		total := amount
		if hasInterest {
			total = installmentAmount.Mul(count).Round(2)
		}

		installments = append(installments, Installment{
			Number:      i,
			Amount:      installmentAmount,
			TotalAmount: total,
			HasInterest: hasInterest,
		})
	}

	return installments
}
