package mysql

import (
	"context"

	txDomain "simpan-pinjam-backend/internal/domain/transaction"

	"gorm.io/gorm"
)

type TransactionRepository struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *txDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *TransactionRepository) ListByMemberID(ctx context.Context, memberID string, limit int) ([]txDomain.Transaction, error) {
	var out []txDomain.Transaction
	q := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("transaction_date DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return out, q.Find(&out).Error
}

func (r *TransactionRepository) ListRecent(ctx context.Context, limit int) ([]txDomain.Transaction, error) {
	var out []txDomain.Transaction
	q := r.db.WithContext(ctx).Order("transaction_date DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return out, q.Find(&out).Error
}
