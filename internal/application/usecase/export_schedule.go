package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/senior-copycoders/Backend/internal/application/dto"
	"github.com/senior-copycoders/Backend/internal/domain/port"
	"github.com/senior-copycoders/Backend/internal/domain/valueobject"
)

// ExportScheduleUseCase renders a credit's schedule as a downloadable
// document.
type ExportScheduleUseCase struct {
	creditRepo port.CreditRepository
	renderer   port.ScheduleRenderer
}

// NewExportScheduleUseCase wires dependencies.
func NewExportScheduleUseCase(
	creditRepo port.CreditRepository,
	renderer port.ScheduleRenderer,
) *ExportScheduleUseCase {
	return &ExportScheduleUseCase{
		creditRepo: creditRepo,
		renderer:   renderer,
	}
}

// Execute loads the credit and renders its schedule.
func (uc *ExportScheduleUseCase) Execute(
	ctx context.Context,
	req dto.ExportScheduleRequest,
) (dto.ExportScheduleResponse, error) {
	creditID, err := uuid.Parse(req.CreditID)
	if err != nil {
		return dto.ExportScheduleResponse{}, fmt.Errorf("%w: %v", valueobject.ErrCreditNotFound, err)
	}

	credit, err := uc.creditRepo.FindByID(ctx, creditID)
	if err != nil {
		return dto.ExportScheduleResponse{}, fmt.Errorf("find credit: %w", err)
	}

	content, err := uc.renderer.Render(credit)
	if err != nil {
		return dto.ExportScheduleResponse{}, fmt.Errorf("render schedule: %w", err)
	}

	return dto.ExportScheduleResponse{
		FileName: fmt.Sprintf("schedule-%s.pdf", credit.ID()),
		Content:  content,
	}, nil
}
