package loan

import "time"

type DisburseInput struct {
	MemberID        string  `json:"member_id"`
	Amount          float64 `json:"amount"`
	RepaymentMonths int     `json:"repayment_months"`
}

type LoanDTO struct {
	LoanID          string     `json:"loan_id"`
	MemberID        string     `json:"member_id"`
	Amount          float64    `json:"amount"`
	Balance         float64    `json:"balance"`
	MonthlyPayment  float64    `json:"monthly_payment"`
	RepaymentMonths int        `json:"repayment_months"`
	IssueDate       *time.Time `json:"issue_date"`
	DueDate         *time.Time `json:"due_date"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
}

type ScheduleDTO struct {
	LoanID            string     `json:"loan_id"`
	Overdue           bool       `json:"overdue"`
	RemainingPayments int        `json:"remaining_payments"`
	NextDueDate       *time.Time `json:"next_due_date,omitempty"`
	CompletionPct     float64    `json:"completion_pct"`
}
