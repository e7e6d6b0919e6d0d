package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type memberSQLite struct {
	ID                 uint64         `gorm:"primaryKey;column:id"`
	MemberID           string         `gorm:"size:32;column:member_id"`
	Name               string         `gorm:"column:name"`
	Role               string         `gorm:"type:text;column:role"`
	Status             string         `gorm:"type:text;column:status"`
	TotalContributions float64        `gorm:"column:total_contributions"`
	JoinDate           *time.Time     `gorm:"column:join_date"`
	CashOutAmount      float64        `gorm:"column:cash_out_amount"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (memberSQLite) TableName() string { return "members" }

type loanSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	LoanID          string         `gorm:"size:32;column:loan_id"`
	MemberID        string         `gorm:"size:32;column:member_id"`
	Amount          float64        `gorm:"column:amount"`
	Balance         float64        `gorm:"column:balance"`
	MonthlyPayment  float64        `gorm:"column:monthly_payment"`
	RepaymentMonths int            `gorm:"column:repayment_months"`
	IssueDate       *time.Time     `gorm:"column:issue_date"`
	DueDate         *time.Time     `gorm:"column:due_date"`
	Status          string         `gorm:"type:text;column:status"`
	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type transactionSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	TransactionID   string         `gorm:"size:32;column:transaction_id"`
	MemberID        string         `gorm:"size:32;column:member_id"`
	Type            string         `gorm:"type:text;column:type"`
	Amount          float64        `gorm:"column:amount"`
	Balance         float64        `gorm:"column:balance"`
	TransactionDate time.Time      `gorm:"column:transaction_date"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (transactionSQLite) TableName() string { return "transactions" }

type paymentSQLite struct {
	ID          uint64         `gorm:"primaryKey;column:id"`
	PaymentID   string         `gorm:"size:32;column:payment_id"`
	MemberID    string         `gorm:"size:32;column:member_id"`
	LoanID      string         `gorm:"size:32;column:loan_id"`
	Amount      float64        `gorm:"column:amount"`
	PaymentDate time.Time      `gorm:"column:payment_date"`
	Type        string         `gorm:"type:text;column:type"`
	Method      string         `gorm:"type:text;column:method"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (paymentSQLite) TableName() string { return "payments" }

type fundSettingsSQLite struct {
	ID                          uint64     `gorm:"primaryKey;column:id"`
	AnnualInterestRate          float64    `gorm:"column:annual_interest_rate"`
	MinimumFundBalance          float64    `gorm:"column:minimum_fund_balance"`
	UtilizationWarningThreshold float64    `gorm:"column:utilization_warning_threshold"`
	BobRemainingInvestment      float64    `gorm:"column:bob_remaining_investment"`
	TotalInterestApplied        float64    `gorm:"column:total_interest_applied"`
	LastInterestAppliedAt       *time.Time `gorm:"column:last_interest_applied_at"`
	CreatedAt                   time.Time  `gorm:"column:created_at"`
	UpdatedAt                   time.Time  `gorm:"column:updated_at"`
}

func (fundSettingsSQLite) TableName() string { return "fund_settings" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, never the enum-typed domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&memberSQLite{}, &loanSQLite{}, &transactionSQLite{},
		&paymentSQLite{}, &fundSettingsSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
