package mysql

import (
	"context"
	"errors"

	fundDomain "simpan-pinjam-backend/internal/domain/fund"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FundRepository struct{ db *gorm.DB }

func NewFundRepository(db *gorm.DB) *FundRepository { return &FundRepository{db: db} }

// FetchOrCreate is self-healing: a missing singleton row is seeded with
// defaults rather than surfaced as an error.
func (r *FundRepository) FetchOrCreate(ctx context.Context) (*fundDomain.Settings, error) {
	var out fundDomain.Settings
	err := r.db.WithContext(ctx).Order("id ASC").First(&out).Error
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	seed := fundDomain.NewDefaultSettings()
	if err := r.db.WithContext(ctx).Create(seed).Error; err != nil {
		return nil, err
	}
	return seed, nil
}

func (r *FundRepository) FetchForUpdate(ctx context.Context) (*fundDomain.Settings, error) {
	var out fundDomain.Settings
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("id ASC").
		First(&out).Error
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	seed := fundDomain.NewDefaultSettings()
	if err := r.db.WithContext(ctx).Create(seed).Error; err != nil {
		return nil, err
	}
	return seed, nil
}

func (r *FundRepository) Save(ctx context.Context, s *fundDomain.Settings) error {
	return r.db.WithContext(ctx).Save(s).Error
}
