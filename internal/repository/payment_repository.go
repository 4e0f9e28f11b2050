package repository

import (
	"context"

	"github.com/samuel46u5/playstation-billing/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type paymentRepository struct {
	db *sqlx.DB
}

// NewPaymentRepository returns the sqlx-backed payment ledger. The ledger is
// append-only: there is deliberately no update or delete here.
func NewPaymentRepository(db *sqlx.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (id, rental_id, method, amount, change_amount, reference, notes, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.RentalID,
		payment.Method,
		payment.Amount,
		payment.ChangeAmount,
		payment.Reference,
		payment.Notes,
		payment.PaidAt,
		payment.CreatedAt,
	)

	return err
}

func (r *paymentRepository) ListByRentalID(ctx context.Context, rentalID uuid.UUID) ([]*domain.Payment, error) {
	query := `
		SELECT id, rental_id, method, amount, change_amount, reference, notes, paid_at, created_at
		FROM payments
		WHERE rental_id = $1
		ORDER BY paid_at
	`

	var payments []*domain.Payment
	err := r.db.SelectContext(ctx, &payments, query, rentalID)
	if err != nil {
		return nil, err
	}

	return payments, nil
}
