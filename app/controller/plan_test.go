package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hirelink/ms-go-billing/app/entity"
	"github.com/hirelink/ms-go-billing/app/repository"
	"github.com/hirelink/ms-go-billing/app/service"
	"github.com/hirelink/ms-go-billing/app/types"
	"github.com/labstack/echo/v4"
)

type controllerPlanRepo struct {
	createFn         func(ctx context.Context, plan *entity.Plan) error
	updateFn         func(ctx context.Context, plan *entity.Plan) error
	deleteFn         func(ctx context.Context, id uuid.UUID) error
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*entity.Plan, error)
	findAllFn        func(ctx context.Context) ([]*entity.Plan, error)
	findByCurrencyFn func(ctx context.Context, currency string) ([]*entity.Plan, error)
}

func (r *controllerPlanRepo) Create(ctx context.Context, plan *entity.Plan) error {
	if r.createFn != nil {
		return r.createFn(ctx, plan)
	}
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	return nil
}

func (r *controllerPlanRepo) Update(ctx context.Context, plan *entity.Plan) error {
	if r.updateFn != nil {
		return r.updateFn(ctx, plan)
	}
	return nil
}

func (r *controllerPlanRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.deleteFn != nil {
		return r.deleteFn(ctx, id)
	}
	return nil
}

func (r *controllerPlanRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error) {
	if r.findByIDFn != nil {
		return r.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (r *controllerPlanRepo) FindAll(ctx context.Context) ([]*entity.Plan, error) {
	if r.findAllFn != nil {
		return r.findAllFn(ctx)
	}
	return []*entity.Plan{}, nil
}

func (r *controllerPlanRepo) FindByCurrency(ctx context.Context, currency string) ([]*entity.Plan, error) {
	if r.findByCurrencyFn != nil {
		return r.findByCurrencyFn(ctx, currency)
	}
	return []*entity.Plan{}, nil
}

func TestCreatePlanEndpointSuccess(t *testing.T) {
	ctrl := NewPlanController(service.NewPlanService(&controllerPlanRepo{}))
	e := echo.New()
	body := `{"name":"Pro","description":"Professional plan","price":99,"currency":"eur","monthsDuration":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plan/", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	_ = ctrl.CreatePlan(ctx)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}

	var payload types.PlanEnvelopeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if payload.Plan == nil || payload.Plan.Currency != "EUR" {
		t.Fatalf("unexpected plan payload: %+v", payload.Plan)
	}
}

func TestCreatePlanEndpointInvalid(t *testing.T) {
	ctrl := NewPlanController(service.NewPlanService(&controllerPlanRepo{}))
	e := echo.New()
	body := `{"name":"","description":"Professional plan","price":99,"currency":"EUR","monthsDuration":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plan/", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	_ = ctrl.CreatePlan(ctx)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetPlanEndpointSuccess(t *testing.T) {
	planID := uuid.New()
	now := time.Now().UTC()
	repo := &controllerPlanRepo{findByIDFn: func(_ context.Context, id uuid.UUID) (*entity.Plan, error) {
		return &entity.Plan{ID: id, Name: "Pro", Description: "Professional plan", Price: 99, Currency: "EUR", MonthsDuration: 1, CreatedAt: now, UpdatedAt: now}, nil
	}}
	ctrl := NewPlanController(service.NewPlanService(repo))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/plan/"+planID.String(), nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues(planID.String())

	_ = ctrl.GetPlan(ctx)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var payload types.PlanEnvelopeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if payload.Plan == nil || payload.Plan.Id != planID.String() {
		t.Fatalf("unexpected plan payload: %+v", payload.Plan)
	}
}

func TestGetPlanEndpointNotFound(t *testing.T) {
	ctrl := NewPlanController(service.NewPlanService(&controllerPlanRepo{}))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/plan/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues(uuid.New().String())

	_ = ctrl.GetPlan(ctx)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUpdatePlanEndpointMissingID(t *testing.T) {
	ctrl := NewPlanController(service.NewPlanService(&controllerPlanRepo{}))
	e := echo.New()
	body := `{"name":"Pro","description":"Professional plan","price":99,"currency":"EUR","monthsDuration":1}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/plan/", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	_ = ctrl.UpdatePlan(ctx)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdatePlanEndpointNotFound(t *testing.T) {
	ctrl := NewPlanController(service.NewPlanService(&controllerPlanRepo{}))
	e := echo.New()
	body := `{"id":"` + uuid.New().String() + `","name":"Pro","description":"Professional plan","price":99,"currency":"EUR","monthsDuration":1}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/plan/", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	_ = ctrl.UpdatePlan(ctx)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestDeletePlanEndpointNotFound(t *testing.T) {
	repo := &controllerPlanRepo{deleteFn: func(context.Context, uuid.UUID) error {
		return repository.ErrPlanNotFound
	}}
	ctrl := NewPlanController(service.NewPlanService(repo))
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/plan/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues(uuid.New().String())

	_ = ctrl.DeletePlan(ctx)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestListPlansByCurrencyEndpointBadCurrency(t *testing.T) {
	ctrl := NewPlanController(service.NewPlanService(&controllerPlanRepo{}))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/plan/currency/EURO", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("currency")
	ctx.SetParamValues("EURO")

	_ = ctrl.ListPlansByCurrency(ctx)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
