package pricing

import (
	"testing"

	"github.com/samuel46u5/playstation-billing/internal/domain"
	customError "github.com/samuel46u5/playstation-billing/pkg/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEvaluatePayment(t *testing.T) {
	tests := []struct {
		name           string
		total          decimal.Decimal
		method         string
		tendered       decimal.Decimal
		expectedValid  bool
		expectedChange decimal.Decimal
	}{
		{
			name:           "cash with change",
			total:          decimal.NewFromInt(45000), // 15,000/h * 3h
			method:         domain.PaymentMethodCash,
			tendered:       decimal.NewFromInt(50000),
			expectedValid:  true,
			expectedChange: decimal.NewFromInt(5000),
		},
		{
			name:           "cash exact",
			total:          decimal.NewFromInt(45000),
			method:         domain.PaymentMethodCash,
			tendered:       decimal.NewFromInt(45000),
			expectedValid:  true,
			expectedChange: decimal.Zero,
		},
		{
			name:           "card exact, no change",
			total:          decimal.NewFromInt(40000), // 10,000/h * 4h
			method:         domain.PaymentMethodCard,
			tendered:       decimal.NewFromInt(40000),
			expectedValid:  true,
			expectedChange: decimal.Zero,
		},
		{
			name:           "card overtender still gives no change",
			total:          decimal.NewFromInt(40000),
			method:         domain.PaymentMethodCard,
			tendered:       decimal.NewFromInt(45000),
			expectedValid:  true,
			expectedChange: decimal.Zero,
		},
		{
			name:           "transfer exact, no change",
			total:          decimal.NewFromInt(40000),
			method:         domain.PaymentMethodTransfer,
			tendered:       decimal.NewFromInt(40000),
			expectedValid:  true,
			expectedChange: decimal.Zero,
		},
		{
			name:           "zero total accepts zero tender",
			total:          decimal.Zero,
			method:         domain.PaymentMethodCash,
			tendered:       decimal.Zero,
			expectedValid:  true,
			expectedChange: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := EvaluatePayment(tt.total, tt.method, tt.tendered)

			assert.Equal(t, tt.expectedValid, eval.Valid)
			assert.NoError(t, eval.Err)
			assert.True(t, eval.ChangeAmount.Equal(tt.expectedChange),
				"expected change %v, got %v", tt.expectedChange, eval.ChangeAmount)
		})
	}
}

func TestEvaluatePayment_Insufficient(t *testing.T) {
	for _, method := range []string{
		domain.PaymentMethodCash,
		domain.PaymentMethodCard,
		domain.PaymentMethodTransfer,
	} {
		t.Run(method, func(t *testing.T) {
			eval := EvaluatePayment(decimal.NewFromInt(45000), method, decimal.NewFromInt(40000))

			assert.False(t, eval.Valid)
			assert.True(t, eval.ChangeAmount.IsZero())
			assert.ErrorIs(t, eval.Err, customError.ErrInsufficientPayment)
		})
	}
}
