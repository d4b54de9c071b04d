package types

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PaymentMethod is the closed set of accepted payment methods. Anything
// outside this set is rejected before the payment workflow starts.
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard    PaymentMethod = "DEBIT_CARD"
	PaymentMethodPaypal       PaymentMethod = "PAYPAL"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPaypal, PaymentMethodBankTransfer:
		return true
	default:
		return false
	}
}

func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentMethodCreditCard,
		PaymentMethodDebitCard,
		PaymentMethodPaypal,
		PaymentMethodBankTransfer,
	}
}

type CreatePaymentRequest struct {
	RecruiterId   uuid.UUID     `json:"recruiterId"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PaymentDate   time.Time     `json:"paymentDate"`
	PlanId        uuid.UUID     `json:"planId"`

	// ExpiresOn is accepted for wire compatibility but always recomputed
	// from the plan duration by the workflow.
	ExpiresOn *time.Time `json:"expiresOn,omitempty"`
}

func NewCreatePaymentRequestFromContext(ctx echo.Context) (*CreatePaymentRequest, error) {
	var body CreatePaymentRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.PaymentMethod = PaymentMethod(strings.ToUpper(strings.TrimSpace(string(body.PaymentMethod))))
	return &body, nil
}

func (r *CreatePaymentRequest) Validate() error {
	if r.RecruiterId == uuid.Nil {
		return errors.New("recruiterId is required")
	}
	if !r.PaymentMethod.Valid() {
		return errors.New("paymentMethod must be one of CREDIT_CARD, DEBIT_CARD, PAYPAL, BANK_TRANSFER")
	}
	if r.PaymentDate.IsZero() {
		return errors.New("paymentDate is required")
	}
	if r.PlanId == uuid.Nil {
		return errors.New("planId is required")
	}
	return nil
}

type GetPaymentRequest struct {
	Id uuid.UUID
}

func NewGetPaymentRequestFromContext(ctx echo.Context) (*GetPaymentRequest, error) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return nil, err
	}
	return &GetPaymentRequest{Id: id}, nil
}

func (r *GetPaymentRequest) Validate() error {
	if r.Id == uuid.Nil {
		return errors.New("invalid payment id")
	}
	return nil
}

type ListPaymentsByRecruiterRequest struct {
	RecruiterId uuid.UUID
}

func NewListPaymentsByRecruiterRequestFromContext(ctx echo.Context) (*ListPaymentsByRecruiterRequest, error) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return nil, err
	}
	return &ListPaymentsByRecruiterRequest{RecruiterId: id}, nil
}

func (r *ListPaymentsByRecruiterRequest) Validate() error {
	if r.RecruiterId == uuid.Nil {
		return errors.New("invalid recruiter id")
	}
	return nil
}

type CreatePlanRequest struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	Currency       string  `json:"currency"`
	MonthsDuration int32   `json:"monthsDuration"`
}

func NewCreatePlanRequestFromContext(ctx echo.Context) (*CreatePlanRequest, error) {
	var body CreatePlanRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.Name = strings.TrimSpace(body.Name)
	body.Description = strings.TrimSpace(body.Description)
	body.Currency = strings.ToUpper(strings.TrimSpace(body.Currency))
	return &body, nil
}

func (r *CreatePlanRequest) Validate() error {
	return validatePlanFields(r.Name, r.Description, r.Currency, r.Price, r.MonthsDuration)
}

type UpdatePlanRequest struct {
	Id             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	Currency       string    `json:"currency"`
	MonthsDuration int32     `json:"monthsDuration"`
}

func NewUpdatePlanRequestFromContext(ctx echo.Context) (*UpdatePlanRequest, error) {
	var body UpdatePlanRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.Name = strings.TrimSpace(body.Name)
	body.Description = strings.TrimSpace(body.Description)
	body.Currency = strings.ToUpper(strings.TrimSpace(body.Currency))
	return &body, nil
}

func (r *UpdatePlanRequest) Validate() error {
	if r.Id == uuid.Nil {
		return errors.New("id is required")
	}
	return validatePlanFields(r.Name, r.Description, r.Currency, r.Price, r.MonthsDuration)
}

type GetPlanRequest struct {
	Id uuid.UUID
}

func NewGetPlanRequestFromContext(ctx echo.Context) (*GetPlanRequest, error) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return nil, err
	}
	return &GetPlanRequest{Id: id}, nil
}

func (r *GetPlanRequest) Validate() error {
	if r.Id == uuid.Nil {
		return errors.New("invalid plan id")
	}
	return nil
}

type ListPlansByCurrencyRequest struct {
	Currency string
}

func NewListPlansByCurrencyRequestFromContext(ctx echo.Context) (*ListPlansByCurrencyRequest, error) {
	return &ListPlansByCurrencyRequest{
		Currency: strings.ToUpper(strings.TrimSpace(ctx.Param("currency"))),
	}, nil
}

func (r *ListPlansByCurrencyRequest) Validate() error {
	if len(r.Currency) != 3 {
		return errors.New("currency must be 3 letters")
	}
	return nil
}

func validatePlanFields(name, description, currency string, price float64, monthsDuration int32) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(description) == "" {
		return errors.New("description is required")
	}
	if len(strings.TrimSpace(currency)) != 3 {
		return errors.New("currency must be 3 letters")
	}
	if price < 0 {
		return errors.New("price must be >= 0")
	}
	if monthsDuration <= 0 {
		return errors.New("monthsDuration must be > 0")
	}
	return nil
}

type Plan struct {
	Id             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	Currency       string  `json:"currency"`
	MonthsDuration int32   `json:"monthsDuration"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

type Payment struct {
	Id            string        `json:"id"`
	RecruiterId   string        `json:"recruiterId"`
	PaymentDate   string        `json:"paymentDate"`
	ExpiresOn     string        `json:"expiresOn"`
	PlanId        string        `json:"planId"`
	InvoiceId     string        `json:"invoiceId"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CreatedAt     string        `json:"createdAt"`
}

type PaymentEnvelopeResponse struct {
	Payment *Payment `json:"payment"`
}

type ListPaymentsResponse struct {
	Payments []*Payment `json:"payments"`
}

type ListPaymentMethodsResponse struct {
	Methods []PaymentMethod `json:"methods"`
}

type PlanEnvelopeResponse struct {
	Plan *Plan `json:"plan"`
}

type ListPlansResponse struct {
	Plans []*Plan `json:"plans"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
