package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/hirelink/ms-go-billing/app/entity"
)

var ErrPlanNotFound = errors.New("plan not found")

type PlanRepository struct {
	db DBTX
}

func NewPlanRepository(db DBTX) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Create(ctx context.Context, plan *entity.Plan) error {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}

	query := `
		INSERT INTO plans (id, name, description, price, currency, months_duration, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		plan.ID,
		plan.Name,
		plan.Description,
		plan.Price,
		plan.Currency,
		plan.MonthsDuration,
		plan.CreatedAt,
		plan.UpdatedAt,
	)
	return err
}

func (r *PlanRepository) Update(ctx context.Context, plan *entity.Plan) error {
	query := `
		UPDATE plans SET
			name = ?,
			description = ?,
			price = ?,
			currency = ?,
			months_duration = ?,
			updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		plan.Name,
		plan.Description,
		plan.Price,
		plan.Currency,
		plan.MonthsDuration,
		plan.UpdatedAt,
		plan.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPlanNotFound
	}

	return nil
}

func (r *PlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPlanNotFound
	}

	return nil
}

func (r *PlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error) {
	query := `
		SELECT id, name, description, price, currency, months_duration, created_at, updated_at
		FROM plans
		WHERE id = ?
	`

	plan := &entity.Plan{}
	if err := scanPlan(r.db.QueryRowContext(ctx, query, id), plan); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return plan, nil
}

func (r *PlanRepository) FindAll(ctx context.Context) ([]*entity.Plan, error) {
	query := `
		SELECT id, name, description, price, currency, months_duration, created_at, updated_at
		FROM plans
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPlans(rows)
}

func (r *PlanRepository) FindByCurrency(ctx context.Context, currency string) ([]*entity.Plan, error) {
	query := `
		SELECT id, name, description, price, currency, months_duration, created_at, updated_at
		FROM plans
		WHERE currency = ?
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, currency)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPlans(rows)
}

func collectPlans(rows *sql.Rows) ([]*entity.Plan, error) {
	plans := make([]*entity.Plan, 0)
	for rows.Next() {
		plan := &entity.Plan{}
		if err := scanPlan(rows, plan); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}

func scanPlan(scan rowScanner, plan *entity.Plan) error {
	return scan.Scan(
		&plan.ID,
		&plan.Name,
		&plan.Description,
		&plan.Price,
		&plan.Currency,
		&plan.MonthsDuration,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
}
