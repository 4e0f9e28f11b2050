package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PaymentMethodCash     = "cash"
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "transfer"
)

// Payment is one accepted payment in the append-only ledger. Amount is
// what the customer tendered; ChangeAmount is non-zero for cash only.
// Records are written exactly once, after validation, and never updated.
type Payment struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	RentalID     uuid.UUID       `json:"rental_id" db:"rental_id"`
	Method       string          `json:"method" db:"method"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	ChangeAmount decimal.Decimal `json:"change_amount" db:"change_amount"`
	Reference    string          `json:"reference" db:"reference"`
	Notes        string          `json:"notes" db:"notes"`
	PaidAt       time.Time       `json:"paid_at" db:"paid_at"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

type PaymentListResponse struct {
	RentalID uuid.UUID  `json:"rental_id"`
	Payments []*Payment `json:"payments"`
}
