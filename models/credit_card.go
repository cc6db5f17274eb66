package models

// CreditCard is the payment card linked to exactly one user.
// AccountBalance is kept in the smallest currency unit and is only ever
// decreased by the order submission transaction.
type CreditCard struct {
	CardID         int64  `json:"-"`
	UserID         int64  `json:"-"`
	CardNumber     string `json:"card_number" validate:"required,numeric,min=12,max=19"`
	Month          int    `json:"month" validate:"required,min=1,max=12"`
	Year           int    `json:"year" validate:"required,min=2000,max=2100"`
	CVV            string `json:"cvv" validate:"required,numeric,len=3"`
	AccountBalance int64  `json:"account_balance" validate:"min=0"`
}

// TableName returns the name of the database table
// associated with the CreditCard model.
func (c CreditCard) TableName() string {
	return "credit_cards"
}

// BalanceResponse is returned by the balance endpoint. Card details are
// intentionally absent.
type BalanceResponse struct {
	AccountBalance int64 `json:"account_balance"`
}
