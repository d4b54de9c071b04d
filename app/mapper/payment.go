package mapper

import (
	"time"

	"github.com/hirelink/ms-go-billing/app/entity"
	"github.com/hirelink/ms-go-billing/app/types"
)

func PaymentToResponse(item *entity.Payment) *types.Payment {
	if item == nil {
		return nil
	}

	return &types.Payment{
		Id:            item.ID.String(),
		RecruiterId:   item.RecruiterID.String(),
		PaymentDate:   item.PaymentDate.UTC().Format(time.RFC3339),
		ExpiresOn:     item.ExpiresOn.UTC().Format(time.RFC3339),
		PlanId:        item.PlanID.String(),
		InvoiceId:     item.InvoiceID.String(),
		PaymentMethod: types.PaymentMethod(item.PaymentMethod),
		CreatedAt:     item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func PaymentsToResponse(items []*entity.Payment) []*types.Payment {
	result := make([]*types.Payment, 0, len(items))
	for _, item := range items {
		result = append(result, PaymentToResponse(item))
	}
	return result
}
