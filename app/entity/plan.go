package entity

import (
	"time"

	"github.com/google/uuid"
)

type Plan struct {
	ID uuid.UUID

	Name        string
	Description string

	Price    float64
	Currency string

	MonthsDuration int32

	CreatedAt time.Time
	UpdatedAt time.Time
}
