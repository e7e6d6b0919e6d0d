package ledger

import "time"

type FundStateDTO struct {
	Balance            float64 `json:"balance"`
	Utilization        float64 `json:"utilization"`
	WarnMinimumBalance bool    `json:"warn_minimum_balance"`
	WarnUtilization    bool    `json:"warn_utilization"`
}

type InvestmentDTO struct {
	Amount                 float64   `json:"amount"`
	BobRemainingInvestment float64   `json:"bob_remaining_investment"`
	FundBalance            float64   `json:"fund_balance"`
	RecordedAt             time.Time `json:"recorded_at"`
}

type ApplyInterestDTO struct {
	InterestAmount       float64   `json:"interest_amount"`
	TotalInterestApplied float64   `json:"total_interest_applied"`
	FundBalance          float64   `json:"fund_balance"`
	AppliedAt            time.Time `json:"applied_at"`
}
