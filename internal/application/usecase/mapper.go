package usecase

import (
	"github.com/senior-copycoders/Backend/internal/application/dto"
	"github.com/senior-copycoders/Backend/internal/domain/model"
)

func installmentsToResponse(sched []model.Installment) []dto.InstallmentResponse {
	out := make([]dto.InstallmentResponse, 0, len(sched))
	for _, inst := range sched {
		out = append(out, dto.InstallmentResponse{
			Number:        inst.Number,
			DueDate:       inst.DueDate,
			Amount:        inst.Amount,
			Interest:      inst.Interest,
			Principal:     inst.Principal,
			BalanceBefore: inst.BalanceBefore,
			BalanceAfter:  inst.BalanceAfter,
			Status:        inst.Status.String(),
		})
	}
	return out
}

func creditToResponse(credit model.Credit, withSchedule bool) dto.CreditResponse {
	resp := dto.CreditResponse{
		ID:               credit.ID().String(),
		UserID:           credit.UserID().String(),
		CreditAmount:     credit.CreditAmount(),
		InitialPayment:   credit.InitialPayment(),
		AnnualRate:       credit.AnnualRate(),
		TermMonths:       credit.TermMonths(),
		CreditType:       credit.CreditType().String(),
		FirstPaymentDate: credit.FirstPaymentDate(),
		Payment:          credit.Payment(),
		CreatedAt:        credit.CreatedAt(),
		UpdatedAt:        credit.UpdatedAt(),
	}
	if withSchedule {
		resp.Schedule = installmentsToResponse(credit.Schedule())
	}
	return resp
}
