package fund

import (
	"errors"
	"time"
)

var (
	ErrNotFound               = errors.New("fund settings not found")
	ErrInsufficientInvestment = errors.New("withdrawal exceeds remaining external investment")
)

// Default values stamped when the singleton row is first created.
const (
	DefaultAnnualInterestRate          = 0.05
	DefaultMinimumFundBalance          = 10_000
	DefaultUtilizationWarningThreshold = 0.80
)

// Settings is the fund-wide singleton: configuration knobs plus the
// accumulated interest state. There is exactly one row.
type Settings struct {
	ID                          uint64     `gorm:"primaryKey;column:id" json:"-"`
	AnnualInterestRate          float64    `gorm:"type:decimal(6,4)" json:"annual_interest_rate"`
	MinimumFundBalance          float64    `gorm:"type:decimal(18,2)" json:"minimum_fund_balance"`
	UtilizationWarningThreshold float64    `gorm:"type:decimal(6,4)" json:"utilization_warning_threshold"`
	BobRemainingInvestment      float64    `gorm:"type:decimal(18,2)" json:"bob_remaining_investment"`
	TotalInterestApplied        float64    `gorm:"type:decimal(18,2)" json:"total_interest_applied"`
	LastInterestAppliedAt       *time.Time `json:"last_interest_applied_at"`
	CreatedAt                   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Settings) TableName() string { return "fund_settings" }

// NewDefaultSettings is the fetch-or-create seed.
func NewDefaultSettings() *Settings {
	return &Settings{
		AnnualInterestRate:          DefaultAnnualInterestRate,
		MinimumFundBalance:          DefaultMinimumFundBalance,
		UtilizationWarningThreshold: DefaultUtilizationWarningThreshold,
	}
}
