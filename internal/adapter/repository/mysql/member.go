package mysql

import (
	"context"

	memberDomain "simpan-pinjam-backend/internal/domain/member"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MemberRepository struct{ db *gorm.DB }

func NewMemberRepository(db *gorm.DB) *MemberRepository { return &MemberRepository{db: db} }

func (r *MemberRepository) Create(ctx context.Context, m *memberDomain.Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MemberRepository) Save(ctx context.Context, m *memberDomain.Member) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MemberRepository) GetByMemberID(ctx context.Context, memberID string) (*memberDomain.Member, error) {
	var out memberDomain.Member
	res := r.db.WithContext(ctx).Where("member_id = ?", memberID).First(&out)
	return &out, res.Error
}

func (r *MemberRepository) GetByMemberIDForUpdate(ctx context.Context, memberID string) (*memberDomain.Member, error) {
	var out memberDomain.Member
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("member_id = ?", memberID).
		First(&out)
	return &out, res.Error
}

// SumContributions: COALESCE keeps an empty table at 0; query errors still
// surface so "empty" and "unavailable" stay distinguishable.
func (r *MemberRepository) SumContributions(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&memberDomain.Member{}).
		Select("COALESCE(SUM(total_contributions), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *MemberRepository) SumCashOuts(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&memberDomain.Member{}).
		Select("COALESCE(SUM(cash_out_amount), 0)").
		Scan(&sum).Error
	return sum, err
}
