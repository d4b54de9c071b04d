package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/hirelink/ms-go-billing/app/entity"
)

type PaymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create assigns a fresh id; payments are insert-only and there is no
// update path by design.
func (r *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}

	query := `
		INSERT INTO payments (id, recruiter_id, payment_date, expires_on, plan_id, invoice_id, payment_method, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.RecruiterID,
		payment.PaymentDate,
		payment.ExpiresOn,
		payment.PlanID,
		payment.InvoiceID,
		payment.PaymentMethod,
		payment.CreatedAt,
	)
	return err
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT id, recruiter_id, payment_date, expires_on, plan_id, invoice_id, payment_method, created_at
		FROM payments
		WHERE id = ?
	`

	payment := &entity.Payment{}
	if err := scanPayment(r.db.QueryRowContext(ctx, query, id), payment); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return payment, nil
}

func (r *PaymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	query := `
		SELECT id, recruiter_id, payment_date, expires_on, plan_id, invoice_id, payment_method, created_at
		FROM payments
		ORDER BY payment_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayments(rows)
}

func (r *PaymentRepository) FindByRecruiterID(ctx context.Context, recruiterID uuid.UUID) ([]*entity.Payment, error) {
	query := `
		SELECT id, recruiter_id, payment_date, expires_on, plan_id, invoice_id, payment_method, created_at
		FROM payments
		WHERE recruiter_id = ?
		ORDER BY payment_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, recruiterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayments(rows)
}

func collectPayments(rows *sql.Rows) ([]*entity.Payment, error) {
	payments := make([]*entity.Payment, 0)
	for rows.Next() {
		payment := &entity.Payment{}
		if err := scanPayment(rows, payment); err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

func scanPayment(scan rowScanner, payment *entity.Payment) error {
	return scan.Scan(
		&payment.ID,
		&payment.RecruiterID,
		&payment.PaymentDate,
		&payment.ExpiresOn,
		&payment.PlanID,
		&payment.InvoiceID,
		&payment.PaymentMethod,
		&payment.CreatedAt,
	)
}
