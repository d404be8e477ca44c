package entity

// PaymentMethod represents how an expense or bill is paid.
type PaymentMethod string

const (
	PaymentMethodCash          PaymentMethod = "cash"
	PaymentMethodCreditCard    PaymentMethod = "credit_card"
	PaymentMethodDebitCard     PaymentMethod = "debit_card"
	PaymentMethodBankTransfer  PaymentMethod = "bank_transfer"
	PaymentMethodAutoDebit     PaymentMethod = "auto_debit"
	PaymentMethodDigitalWallet PaymentMethod = "digital_wallet"
	PaymentMethodOther         PaymentMethod = "other"
)

// IsValidForExpense reports whether the method can be recorded on an expense.
// Auto debit only applies to bills.
func (m PaymentMethod) IsValidForExpense() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard,
		PaymentMethodBankTransfer, PaymentMethodDigitalWallet, PaymentMethodOther:
		return true
	}
	return false
}

// IsValidForBill reports whether the method can be recorded on a bill or bill payment.
func (m PaymentMethod) IsValidForBill() bool {
	return m == PaymentMethodAutoDebit || m.IsValidForExpense()
}
