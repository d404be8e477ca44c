package goal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// FundGoalInput carries an amount to add to or withdraw from a goal.
type FundGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
	Amount decimal.Decimal
}

// FundGoalOutput is the goal after the change.
type FundGoalOutput struct {
	Goal *entity.Goal
}

// AddFundsUseCase adds money to a goal, completing it once the target is reached.
type AddFundsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewAddFundsUseCase creates a new AddFundsUseCase instance.
func NewAddFundsUseCase(goalRepo adapter.GoalRepository) *AddFundsUseCase {
	return &AddFundsUseCase{goalRepo: goalRepo}
}

// Execute performs the deposit on the locked goal.
func (uc *AddFundsUseCase) Execute(ctx context.Context, input FundGoalInput) (*FundGoalOutput, error) {
	if err := checkFundAmount(input.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	goal, err := uc.goalRepo.Update(ctx, input.GoalID, input.UserID, func(goal *entity.Goal) error {
		goal.AddFunds(input.Amount, now)
		return nil
	})
	if err != nil {
		return nil, wrapRepoError(err, "failed to add funds")
	}
	return &FundGoalOutput{Goal: goal}, nil
}

// WithdrawFundsUseCase takes money out of a goal.
type WithdrawFundsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewWithdrawFundsUseCase creates a new WithdrawFundsUseCase instance.
func NewWithdrawFundsUseCase(goalRepo adapter.GoalRepository) *WithdrawFundsUseCase {
	return &WithdrawFundsUseCase{goalRepo: goalRepo}
}

// Execute performs the withdrawal. Withdrawing more than the goal holds
// fails with ErrInsufficientFunds and leaves the goal untouched.
func (uc *WithdrawFundsUseCase) Execute(ctx context.Context, input FundGoalInput) (*FundGoalOutput, error) {
	if err := checkFundAmount(input.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	goal, err := uc.goalRepo.Update(ctx, input.GoalID, input.UserID, func(goal *entity.Goal) error {
		if !goal.WithdrawFunds(input.Amount, now) {
			return domainerror.ErrInsufficientFunds
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrInsufficientFunds) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInsufficientFunds,
				"insufficient funds in goal",
				domainerror.ErrInsufficientFunds,
			)
		}
		return nil, wrapRepoError(err, "failed to withdraw funds")
	}
	return &FundGoalOutput{Goal: goal}, nil
}

func checkFundAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewValidationError("amount", "amount must be greater than 0")
	}
	return nil
}
