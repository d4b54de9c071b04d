package entity

import (
	"time"

	"github.com/google/uuid"
)

// Payment is written exactly once by the payment workflow and never
// updated afterwards.
type Payment struct {
	ID uuid.UUID

	RecruiterID uuid.UUID

	PaymentDate time.Time
	ExpiresOn   time.Time

	PlanID    uuid.UUID
	InvoiceID uuid.UUID

	PaymentMethod string

	CreatedAt time.Time
}
