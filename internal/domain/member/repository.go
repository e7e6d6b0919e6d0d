package member

import "context"

type Repository interface {
	Create(ctx context.Context, m *Member) error
	GetByMemberID(ctx context.Context, memberID string) (*Member, error)
	GetByMemberIDForUpdate(ctx context.Context, memberID string) (*Member, error)
	Save(ctx context.Context, m *Member) error

	// SumContributions aggregates total_contributions over all members.
	// Failures surface as errors, never as a zero sum.
	SumContributions(ctx context.Context) (float64, error)
	// SumCashOuts aggregates cash_out_amount over all members.
	SumCashOuts(ctx context.Context) (float64, error)
}
