package transaction

import "context"

type Repository interface {
	Create(ctx context.Context, tx *Transaction) error
	ListByMemberID(ctx context.Context, memberID string, limit int) ([]Transaction, error)
	ListRecent(ctx context.Context, limit int) ([]Transaction, error)
}
