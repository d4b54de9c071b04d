package controller

import (
	"errors"
	"net/http"

	"github.com/hirelink/ms-go-billing/app/client"
	"github.com/hirelink/ms-go-billing/app/factory"
	"github.com/hirelink/ms-go-billing/app/mapper"
	"github.com/hirelink/ms-go-billing/app/service"
	"github.com/hirelink/ms-go-billing/app/types"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type PaymentController struct {
	paymentService *service.PaymentService
	logger         logrus.FieldLogger
}

func NewPaymentController(paymentService *service.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		logger:         factory.NewModuleLogger("payment-controller"),
	}
}

func (c *PaymentController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.HealthResponse{Status: "ok"})
}

func (c *PaymentController) CreatePayment(ctx echo.Context) error {
	req, err := types.NewCreatePaymentRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	authorization := ctx.Request().Header.Get(echo.HeaderAuthorization)

	item, err := c.paymentService.CreatePayment(ctx.Request().Context(), req, authorization)
	if err != nil {
		var statusErr *client.StatusError
		switch {
		case errors.Is(err, service.ErrInvalidRequest), errors.Is(err, service.ErrInvalidInvoiceData):
			return c.writeError(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrInvalidToken):
			return c.writeError(ctx, http.StatusUnauthorized, "missing or malformed bearer token")
		case errors.Is(err, service.ErrNotRecruiter), errors.Is(err, service.ErrNotRegistered):
			return c.writeError(ctx, http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrPlanNotFound):
			return c.writeError(ctx, http.StatusNotFound, "plan not found")
		case errors.Is(err, service.ErrAddressNotFound):
			return c.writeError(ctx, http.StatusNotFound, "address not found")
		case errors.As(err, &statusErr):
			factory.LoggerWithContext(c.logger, ctx).WithError(err).Warn("Downstream call failed")
			return c.writeError(ctx, statusErr.StatusCode, err.Error())
		default:
			factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Create payment failed")
			return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	return ctx.JSON(http.StatusCreated, &types.PaymentEnvelopeResponse{Payment: mapper.PaymentToResponse(item)})
}

func (c *PaymentController) GetPayment(ctx echo.Context) error {
	req, err := types.NewGetPaymentRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid payment id")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.paymentService.GetPayment(ctx.Request().Context(), req.Id)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			return c.writeError(ctx, http.StatusNotFound, "payment not found")
		}
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Get payment failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &types.PaymentEnvelopeResponse{Payment: mapper.PaymentToResponse(item)})
}

func (c *PaymentController) ListPayments(ctx echo.Context) error {
	items, err := c.paymentService.ListPayments(ctx.Request().Context())
	if err != nil {
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("List payments failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &types.ListPaymentsResponse{Payments: mapper.PaymentsToResponse(items)})
}

func (c *PaymentController) ListPaymentsByRecruiter(ctx echo.Context) error {
	req, err := types.NewListPaymentsByRecruiterRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid recruiter id")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	items, err := c.paymentService.ListPaymentsByRecruiter(ctx.Request().Context(), req.RecruiterId)
	if err != nil {
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("List payments by recruiter failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &types.ListPaymentsResponse{Payments: mapper.PaymentsToResponse(items)})
}

func (c *PaymentController) ListPaymentMethods(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.ListPaymentMethodsResponse{Methods: c.paymentService.PaymentMethods()})
}

func (c *PaymentController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message})
}
