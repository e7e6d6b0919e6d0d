package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("loan not found")
	ErrNotActive         = errors.New("loan is not active")
	ErrOverpayment       = errors.New("repayment exceeds outstanding balance")
	ErrInvalidTransition = errors.New("invalid loan state transition")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusDefaulted Status = "defaulted"
)

// Loan is a single borrowing instance. Invariant: 0 <= Balance <= Amount.
type Loan struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"-"`
	LoanID          string         `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	MemberID        string         `gorm:"size:32;index:idx_loans_member_active" json:"member_id"`
	Amount          float64        `gorm:"type:decimal(18,2)" json:"amount"`
	Balance         float64        `gorm:"type:decimal(18,2)" json:"balance"`
	MonthlyPayment  float64        `gorm:"type:decimal(18,2)" json:"monthly_payment"`
	RepaymentMonths int            `json:"repayment_months"`
	IssueDate       *time.Time     `gorm:"type:date" json:"issue_date"`
	DueDate         *time.Time     `gorm:"type:date" json:"due_date"`
	Status          Status         `gorm:"type:enum('active','completed','defaulted');default:'active'" json:"status"`
	StatusUpdatedAt time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }
