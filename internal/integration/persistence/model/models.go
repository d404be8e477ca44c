package model

// All lists every model managed by AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&RefreshTokenModel{},
		&PasswordResetTokenModel{},
		&ExpenseModel{},
		&BillModel{},
		&BillPaymentModel{},
		&GoalModel{},
		&GoalMilestoneModel{},
		&EmailQueueModel{},
	}
}
