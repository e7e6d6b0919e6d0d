package payment

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound                 = errors.New("payment not found")
	ErrMixedAllocationUndefined = errors.New("mixed payment allocation is not defined")
	ErrUnknownType              = errors.New("unknown payment type")
)

type Type string

const (
	TypeContribution  Type = "contribution"
	TypeLoanRepayment Type = "loanRepayment"
	// TypeMixed exists in stored data but has no allocation rule; see Allocate.
	TypeMixed Type = "mixed"
)

type Method string

const (
	MethodCash         Method = "cash"
	MethodBankTransfer Method = "bankTransfer"
	MethodEWallet      Method = "eWallet"
)

func (m Method) Valid() bool {
	switch m {
	case MethodCash, MethodBankTransfer, MethodEWallet:
		return true
	}
	return false
}

type Payment struct {
	ID          uint64         `gorm:"primaryKey;column:id" json:"-"`
	PaymentID   string         `gorm:"size:32;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	MemberID    string         `gorm:"size:32;index:idx_payments_member" json:"member_id"`
	LoanID      string         `gorm:"size:32;index:idx_payments_loan" json:"loan_id,omitempty"`
	Amount      float64        `gorm:"type:decimal(18,2)" json:"amount"`
	PaymentDate time.Time      `gorm:"type:date" json:"payment_date"`
	Type        Type           `gorm:"type:enum('contribution','loanRepayment','mixed')" json:"type"`
	Method      Method         `gorm:"type:enum('cash','bankTransfer','eWallet')" json:"method"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Payment) TableName() string { return "payments" }
