package pricing

import (
	"github.com/samuel46u5/playstation-billing/internal/domain"
	customError "github.com/samuel46u5/playstation-billing/pkg/errors"

	"github.com/shopspring/decimal"
)

// PaymentEvaluation is the outcome of checking a tendered amount against
// an amount due. Err is set only when Valid is false.
type PaymentEvaluation struct {
	Valid        bool
	ChangeAmount decimal.Decimal
	Err          error
}

// EvaluatePayment decides whether a tendered payment satisfies the amount
// due. Cash gets change back; card and transfer are expected to tender the
// exact amount, so change is always zero for them. A shortfall rejects the
// payment entirely, nothing is recorded and the caller asks the customer
// again.
func EvaluatePayment(totalAmount decimal.Decimal, method string, tenderedAmount decimal.Decimal) PaymentEvaluation {
	if tenderedAmount.LessThan(totalAmount) {
		return PaymentEvaluation{
			Valid:        false,
			ChangeAmount: decimal.Zero,
			Err:          customError.WrapInsufficientPayment(totalAmount.String(), tenderedAmount.String()),
		}
	}

	change := decimal.Zero
	if method == domain.PaymentMethodCash {
		change = tenderedAmount.Sub(totalAmount)
	}

	return PaymentEvaluation{
		Valid:        true,
		ChangeAmount: change,
	}
}
