package service

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotRecruiter       = errors.New("user is not a recruiter")
	ErrNotRegistered      = errors.New("user is not registered")
	ErrAddressNotFound    = errors.New("address not found")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrInvalidInvoiceData = errors.New("invalid invoice data")
	ErrInvoiceFailed      = errors.New("invoice creation failed")
)
