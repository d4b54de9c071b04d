package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hirelink/ms-go-billing/app/client"
	"github.com/hirelink/ms-go-billing/app/entity"
	"github.com/hirelink/ms-go-billing/app/types"
)

const bearerPrefix = "Bearer "

type paymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindAll(ctx context.Context) ([]*entity.Payment, error)
	FindByRecruiterID(ctx context.Context, recruiterID uuid.UUID) ([]*entity.Payment, error)
}

type planFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error)
}

type recruiterDirectory interface {
	FetchRecruiter(ctx context.Context, id uuid.UUID, token string) (*client.Recruiter, error)
}

type addressDirectory interface {
	FetchAddress(ctx context.Context, id uuid.UUID, token string) (*client.Address, error)
}

type invoiceIssuer interface {
	CreateInvoice(ctx context.Context, data *client.InvoiceData, token string) (*client.Invoice, error)
}

type PaymentService struct {
	paymentRepo paymentRepository
	planRepo    planFinder
	recruiters  recruiterDirectory
	addresses   addressDirectory
	invoices    invoiceIssuer
}

func NewPaymentService(
	paymentRepo paymentRepository,
	planRepo planFinder,
	recruiters recruiterDirectory,
	addresses addressDirectory,
	invoices invoiceIssuer,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		planRepo:    planRepo,
		recruiters:  recruiters,
		addresses:   addresses,
		invoices:    invoices,
	}
}

// CreatePayment runs the payment workflow: validate the request and the
// bearer credential, resolve the payer and their billing address, resolve
// the plan, compose and submit the invoice, then persist the payment with
// its computed expiry. Stages run strictly in order, fail fast, and are
// never retried. A failed stage leaves no payment behind; an invoice issued
// before a failed insert is not retracted (no compensation).
func (s *PaymentService) CreatePayment(ctx context.Context, req *types.CreatePaymentRequest, authorization string) (*entity.Payment, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
	}

	token, err := extractBearerToken(authorization)
	if err != nil {
		return nil, err
	}

	recruiter, err := s.resolveRecruiter(ctx, req.RecruiterId, token)
	if err != nil {
		return nil, err
	}

	address, err := s.resolveAddress(ctx, recruiter, token)
	if err != nil {
		return nil, err
	}

	plan, err := s.resolvePlan(ctx, req.PlanId)
	if err != nil {
		return nil, err
	}

	invoiceData := buildInvoiceData(req, recruiter, address, plan)
	if err := validateInvoiceData(invoiceData); err != nil {
		return nil, err
	}

	invoice, err := s.invoices.CreateInvoice(ctx, invoiceData, token)
	if err != nil {
		return nil, err
	}
	if invoice == nil || invoice.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invoice service returned no invoice", ErrInvoiceFailed)
	}

	payment := &entity.Payment{
		RecruiterID:   req.RecruiterId,
		PaymentDate:   req.PaymentDate,
		ExpiresOn:     addMonths(req.PaymentDate, int(plan.MonthsDuration)),
		PlanID:        plan.ID,
		InvoiceID:     invoice.ID,
		PaymentMethod: string(req.PaymentMethod),
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

func (s *PaymentService) ListPayments(ctx context.Context) ([]*entity.Payment, error) {
	return s.paymentRepo.FindAll(ctx)
}

func (s *PaymentService) ListPaymentsByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]*entity.Payment, error) {
	return s.paymentRepo.FindByRecruiterID(ctx, recruiterID)
}

func (s *PaymentService) PaymentMethods() []types.PaymentMethod {
	return types.PaymentMethods()
}

func extractBearerToken(authorization string) (string, error) {
	if !strings.HasPrefix(authorization, bearerPrefix) {
		return "", ErrInvalidToken
	}
	token := strings.TrimSpace(strings.TrimPrefix(authorization, bearerPrefix))
	if token == "" {
		return "", ErrInvalidToken
	}
	return token, nil
}

// resolveRecruiter is an authorization check, not just a lookup: a valid
// token for a non-recruiter identity is rejected.
func (s *PaymentService) resolveRecruiter(ctx context.Context, id uuid.UUID, token string) (*client.Recruiter, error) {
	recruiter, err := s.recruiters.FetchRecruiter(ctx, id, token)
	if err != nil {
		return nil, err
	}
	if recruiter == nil || recruiter.Role != client.RoleRecruiter {
		return nil, ErrNotRecruiter
	}
	return recruiter, nil
}

// A recruiter without an address reference never finished registration and
// may not pay.
func (s *PaymentService) resolveAddress(ctx context.Context, recruiter *client.Recruiter, token string) (*client.Address, error) {
	if recruiter.AddressID == nil {
		return nil, ErrNotRegistered
	}

	address, err := s.addresses.FetchAddress(ctx, *recruiter.AddressID, token)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}
	return address, nil
}

func (s *PaymentService) resolvePlan(ctx context.Context, id uuid.UUID) (*entity.Plan, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

func buildInvoiceData(req *types.CreatePaymentRequest, recruiter *client.Recruiter, address *client.Address, plan *entity.Plan) *client.InvoiceData {
	return &client.InvoiceData{
		CreationDate: req.PaymentDate,
		Name:         recruiter.LastName,
		Surname:      recruiter.FirstName,
		Address:      address.String(),
		Plan:         plan.Name,
		Price:        plan.Price,
	}
}

func validateInvoiceData(data *client.InvoiceData) error {
	switch {
	case data.CreationDate.IsZero():
		return fmt.Errorf("%w: creation date is missing", ErrInvalidInvoiceData)
	case strings.TrimSpace(data.Name) == "":
		return fmt.Errorf("%w: name is missing", ErrInvalidInvoiceData)
	case strings.TrimSpace(data.Surname) == "":
		return fmt.Errorf("%w: surname is missing", ErrInvalidInvoiceData)
	case strings.TrimSpace(data.Address) == "":
		return fmt.Errorf("%w: address is missing", ErrInvalidInvoiceData)
	case strings.TrimSpace(data.Plan) == "":
		return fmt.Errorf("%w: plan name is missing", ErrInvalidInvoiceData)
	case data.Price == 0:
		return fmt.Errorf("%w: price is zero", ErrInvalidInvoiceData)
	}
	return nil
}

// addMonths advances t by whole calendar months, clamping to the last day of
// the target month (Jan 31 + 1 month = Feb 29 in a leap year).
func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
