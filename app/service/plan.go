package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hirelink/ms-go-billing/app/entity"
	"github.com/hirelink/ms-go-billing/app/repository"
	"github.com/hirelink/ms-go-billing/app/types"
)

type planRepository interface {
	Create(ctx context.Context, plan *entity.Plan) error
	Update(ctx context.Context, plan *entity.Plan) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error)
	FindAll(ctx context.Context) ([]*entity.Plan, error)
	FindByCurrency(ctx context.Context, currency string) ([]*entity.Plan, error)
}

type PlanService struct {
	planRepo planRepository
}

func NewPlanService(planRepo planRepository) *PlanService {
	return &PlanService{planRepo: planRepo}
}

func (s *PlanService) ListPlans(ctx context.Context) ([]*entity.Plan, error) {
	return s.planRepo.FindAll(ctx)
}

func (s *PlanService) GetPlan(ctx context.Context, id uuid.UUID) (*entity.Plan, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

func (s *PlanService) ListPlansByCurrency(ctx context.Context, currency string) ([]*entity.Plan, error) {
	return s.planRepo.FindByCurrency(ctx, currency)
}

func (s *PlanService) CreatePlan(ctx context.Context, req *types.CreatePlanRequest) (*entity.Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
	}

	now := time.Now().UTC()
	plan := &entity.Plan{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Currency:       req.Currency,
		MonthsDuration: req.MonthsDuration,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

func (s *PlanService) UpdatePlan(ctx context.Context, req *types.UpdatePlanRequest) (*entity.Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
	}

	plan, err := s.planRepo.FindByID(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	plan.Name = req.Name
	plan.Description = req.Description
	plan.Price = req.Price
	plan.Currency = req.Currency
	plan.MonthsDuration = req.MonthsDuration
	plan.UpdatedAt = time.Now().UTC()

	if err := s.planRepo.Update(ctx, plan); err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	return plan, nil
}

func (s *PlanService) DeletePlan(ctx context.Context, id uuid.UUID) error {
	if err := s.planRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return ErrPlanNotFound
		}
		return err
	}
	return nil
}
