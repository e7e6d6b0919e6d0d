package mysql

import (
	"context"

	loanDomain "simpan-pinjam-backend/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListActiveByMemberID(ctx context.Context, memberID string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	err := r.db.WithContext(ctx).
		Where("member_id = ? AND status = ?", memberID, loanDomain.StatusActive).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *LoanRepository) SumActiveBalances(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Select("COALESCE(SUM(balance), 0)").
		Where("status = ?", loanDomain.StatusActive).
		Scan(&sum).Error
	return sum, err
}

func (r *LoanRepository) SumActiveBalancesByMember(ctx context.Context, memberID string) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Select("COALESCE(SUM(balance), 0)").
		Where("member_id = ? AND status = ?", memberID, loanDomain.StatusActive).
		Scan(&sum).Error
	return sum, err
}
