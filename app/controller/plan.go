package controller

import (
	"errors"
	"net/http"

	"github.com/hirelink/ms-go-billing/app/factory"
	"github.com/hirelink/ms-go-billing/app/mapper"
	"github.com/hirelink/ms-go-billing/app/service"
	"github.com/hirelink/ms-go-billing/app/types"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type PlanController struct {
	planService *service.PlanService
	logger      logrus.FieldLogger
}

func NewPlanController(planService *service.PlanService) *PlanController {
	return &PlanController{
		planService: planService,
		logger:      factory.NewModuleLogger("plan-controller"),
	}
}

func (c *PlanController) ListPlans(ctx echo.Context) error {
	items, err := c.planService.ListPlans(ctx.Request().Context())
	if err != nil {
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("List plans failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &types.ListPlansResponse{Plans: mapper.PlansToResponse(items)})
}

func (c *PlanController) GetPlan(ctx echo.Context) error {
	req, err := types.NewGetPlanRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid plan id")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.planService.GetPlan(ctx.Request().Context(), req.Id)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			return c.writeError(ctx, http.StatusNotFound, "plan not found")
		}
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Get plan failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &types.PlanEnvelopeResponse{Plan: mapper.PlanToResponse(item)})
}

func (c *PlanController) ListPlansByCurrency(ctx echo.Context) error {
	req, err := types.NewListPlansByCurrencyRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid currency")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	items, err := c.planService.ListPlansByCurrency(ctx.Request().Context(), req.Currency)
	if err != nil {
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("List plans by currency failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &types.ListPlansResponse{Plans: mapper.PlansToResponse(items)})
}

func (c *PlanController) CreatePlan(ctx echo.Context) error {
	req, err := types.NewCreatePlanRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	item, err := c.planService.CreatePlan(ctx.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			return c.writeError(ctx, http.StatusBadRequest, err.Error())
		}
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Create plan failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusCreated, &types.PlanEnvelopeResponse{Plan: mapper.PlanToResponse(item)})
}

func (c *PlanController) UpdatePlan(ctx echo.Context) error {
	req, err := types.NewUpdatePlanRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	item, err := c.planService.UpdatePlan(ctx.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			return c.writeError(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrPlanNotFound):
			return c.writeError(ctx, http.StatusNotFound, "plan not found")
		default:
			factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Update plan failed")
			return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	return ctx.JSON(http.StatusOK, &types.PlanEnvelopeResponse{Plan: mapper.PlanToResponse(item)})
}

func (c *PlanController) DeletePlan(ctx echo.Context) error {
	req, err := types.NewGetPlanRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid plan id")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err := c.planService.DeletePlan(ctx.Request().Context(), req.Id); err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			return c.writeError(ctx, http.StatusNotFound, "plan not found")
		}
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Delete plan failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &types.MessageResponse{Message: "Plan deleted"})
}

func (c *PlanController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message})
}
