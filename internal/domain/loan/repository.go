package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	ListActiveByMemberID(ctx context.Context, memberID string) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error

	// SumActiveBalances aggregates balance over loans with status = active.
	SumActiveBalances(ctx context.Context) (float64, error)
	// SumActiveBalancesByMember is the same aggregate scoped to one member.
	SumActiveBalancesByMember(ctx context.Context, memberID string) (float64, error)
}
