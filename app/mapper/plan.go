package mapper

import (
	"time"

	"github.com/hirelink/ms-go-billing/app/entity"
	"github.com/hirelink/ms-go-billing/app/types"
)

func PlanToResponse(item *entity.Plan) *types.Plan {
	if item == nil {
		return nil
	}

	return &types.Plan{
		Id:             item.ID.String(),
		Name:           item.Name,
		Description:    item.Description,
		Price:          item.Price,
		Currency:       item.Currency,
		MonthsDuration: item.MonthsDuration,
		CreatedAt:      item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func PlansToResponse(items []*entity.Plan) []*types.Plan {
	result := make([]*types.Plan, 0, len(items))
	for _, item := range items {
		result = append(result, PlanToResponse(item))
	}
	return result
}
