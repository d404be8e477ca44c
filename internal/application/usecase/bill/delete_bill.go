package bill

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/adapter"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// DeleteBillInput represents the input for bill deletion.
type DeleteBillInput struct {
	BillID uuid.UUID
	UserID uuid.UUID
}

// DeleteBillUseCase handles bill deletion logic.
type DeleteBillUseCase struct {
	billRepo adapter.BillRepository
}

// NewDeleteBillUseCase creates a new DeleteBillUseCase instance.
func NewDeleteBillUseCase(billRepo adapter.BillRepository) *DeleteBillUseCase {
	return &DeleteBillUseCase{billRepo: billRepo}
}

// Execute deletes the bill and its payment history.
func (uc *DeleteBillUseCase) Execute(ctx context.Context, input DeleteBillInput) error {
	if err := uc.billRepo.Delete(ctx, input.BillID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrBillNotFound) {
			return notFound(err)
		}
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	return nil
}
