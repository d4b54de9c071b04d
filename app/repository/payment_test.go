package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/hirelink/ms-go-billing/app/entity"
)

func TestPaymentRepositoryCreateAssignsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock setup failed: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	payment := &entity.Payment{
		RecruiterID:   uuid.New(),
		PaymentDate:   now,
		ExpiresOn:     now.AddDate(0, 1, 0),
		PlanID:        uuid.New(),
		InvoiceID:     uuid.New(),
		PaymentMethod: "CREDIT_CARD",
		CreatedAt:     now,
	}

	mock.ExpectExec("INSERT INTO payments").
		WithArgs(sqlmock.AnyArg(), payment.RecruiterID, payment.PaymentDate, payment.ExpiresOn, payment.PlanID, payment.InvoiceID, "CREDIT_CARD", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPaymentRepository(db)
	if err := repo.Create(context.Background(), payment); err != nil {
		t.Fatalf("create payment failed: %v", err)
	}
	if payment.ID == uuid.Nil {
		t.Fatal("expected payment id to be assigned")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPaymentRepositoryFindByIDAbsentReturnsNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock setup failed: %v", err)
	}
	defer db.Close()

	id := uuid.New()
	mock.ExpectQuery("SELECT id, recruiter_id, payment_date, expires_on").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "recruiter_id", "payment_date", "expires_on", "plan_id", "invoice_id", "payment_method", "created_at"}))

	repo := NewPaymentRepository(db)
	payment, err := repo.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("find payment failed: %v", err)
	}
	if payment != nil {
		t.Fatalf("expected nil for absent payment, got %+v", payment)
	}
}

func TestPaymentRepositoryFindByRecruiterID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock setup failed: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	paymentID := uuid.New()
	recruiterID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "recruiter_id", "payment_date", "expires_on", "plan_id", "invoice_id", "payment_method", "created_at"}).
		AddRow(paymentID.String(), recruiterID.String(), now, now.AddDate(0, 1, 0), uuid.NewString(), uuid.NewString(), "PAYPAL", now)

	mock.ExpectQuery("SELECT id, recruiter_id, payment_date, expires_on").
		WithArgs(recruiterID).
		WillReturnRows(rows)

	repo := NewPaymentRepository(db)
	payments, err := repo.FindByRecruiterID(context.Background(), recruiterID)
	if err != nil {
		t.Fatalf("find by recruiter failed: %v", err)
	}
	if len(payments) != 1 || payments[0].ID != paymentID {
		t.Fatalf("unexpected payments: %+v", payments)
	}
	if payments[0].PaymentMethod != "PAYPAL" {
		t.Fatalf("unexpected payment method: %s", payments[0].PaymentMethod)
	}
}
