package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByPaymentID(ctx context.Context, paymentID string) (*Payment, error)
	ListByMemberID(ctx context.Context, memberID string, limit int) ([]Payment, error)
}
