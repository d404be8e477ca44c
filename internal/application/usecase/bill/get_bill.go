package bill

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// GetBillInput represents the input for reading one bill.
type GetBillInput struct {
	BillID uuid.UUID
	UserID uuid.UUID
}

// GetBillOutput represents the output of reading one bill.
type GetBillOutput struct {
	Bill *entity.Bill
}

// GetBillUseCase handles reading a single bill with its payment history.
type GetBillUseCase struct {
	billRepo adapter.BillRepository
}

// NewGetBillUseCase creates a new GetBillUseCase instance.
func NewGetBillUseCase(billRepo adapter.BillRepository) *GetBillUseCase {
	return &GetBillUseCase{billRepo: billRepo}
}

// Execute loads the bill.
func (uc *GetBillUseCase) Execute(ctx context.Context, input GetBillInput) (*GetBillOutput, error) {
	bill, err := findOwned(ctx, uc.billRepo, input.BillID, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetBillOutput{Bill: bill}, nil
}

func findOwned(ctx context.Context, repo adapter.BillRepository, id, userID uuid.UUID) (*entity.Bill, error) {
	bill, err := repo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBillNotFound) {
			return nil, notFound(err)
		}
		return nil, fmt.Errorf("failed to find bill: %w", err)
	}
	return bill, nil
}
