package transaction

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("transaction not found")

type Type string

const (
	TypeContribution     Type = "contribution"
	TypeLoanDisbursement Type = "loanDisbursement"
	TypeLoanRepayment    Type = "loanRepayment"
	TypeInterestApplied  Type = "interestApplied"
	TypeCashOut          Type = "cashOut"
	TypeBobInvestment    Type = "bobInvestment"
	TypeBobWithdrawal    Type = "bobWithdrawal"
)

// IsCredit is a fixed mapping per ledger type. The stored amount is always
// non-negative; the sign is reconstructed from the type at display time.
func (t Type) IsCredit() bool {
	switch t {
	case TypeContribution, TypeInterestApplied, TypeBobInvestment:
		return true
	}
	return false
}

func (t Type) Valid() bool {
	switch t {
	case TypeContribution, TypeLoanDisbursement, TypeLoanRepayment,
		TypeInterestApplied, TypeCashOut, TypeBobInvestment, TypeBobWithdrawal:
		return true
	}
	return false
}

// Transaction is an immutable ledger entry; Balance snapshots the fund
// balance right after the event was applied.
type Transaction struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"-"`
	TransactionID   string         `gorm:"size:32;uniqueIndex:ux_transactions_transaction_id" json:"transaction_id"`
	MemberID        string         `gorm:"size:32;index:idx_transactions_member" json:"member_id"`
	Type            Type           `gorm:"type:enum('contribution','loanDisbursement','loanRepayment','interestApplied','cashOut','bobInvestment','bobWithdrawal')" json:"type"`
	Amount          float64        `gorm:"type:decimal(18,2)" json:"amount"`
	Balance         float64        `gorm:"type:decimal(18,2)" json:"balance"`
	TransactionDate time.Time      `json:"transaction_date"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Transaction) TableName() string { return "transactions" }
