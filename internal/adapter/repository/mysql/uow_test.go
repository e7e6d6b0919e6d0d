package mysql

import (
	"context"
	"errors"
	"testing"

	domainMember "simpan-pinjam-backend/internal/domain/member"
	"simpan-pinjam-backend/internal/domain/uow"
	"simpan-pinjam-backend/pkg/id"

	"gorm.io/gorm"
)

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	memberID := id.NewID32()
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		return r.Members.Create(ctx, makeMember(memberID, 2_000, 0))
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	got, err := NewMemberRepository(db).GetByMemberID(ctx, memberID)
	if err != nil {
		t.Fatalf("GetByMemberID after commit: %v", err)
	}
	if got.TotalContributions != 2_000 {
		t.Errorf("unexpected member: %+v", got)
	}
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	memberID := id.NewID32()
	boom := errors.New("boom")
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Members.Create(ctx, makeMember(memberID, 2_000, 0)); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	_, err = NewMemberRepository(db).GetByMemberID(ctx, memberID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("member must not survive a rolled-back tx, err = %v", err)
	}
}

// Multi-repo flows share one tx: a failure after the first write undoes both.
func TestWithinTx_SpansRepositories(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	memberID := id.NewID32()
	loanID := id.NewID32()
	boom := errors.New("boom")

	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Members.Create(ctx, makeMember(memberID, 0, 0)); err != nil {
			return err
		}
		if err := r.Loans.Create(ctx, makeLoan(loanID, memberID, 5_000, "active")); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	if _, err := NewMemberRepository(db).GetByMemberID(ctx, memberID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("member leaked out of rollback: %v", err)
	}
	if _, err := NewLoanRepository(db).GetByLoanID(ctx, loanID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("loan leaked out of rollback: %v", err)
	}
}

// keep the interface honest: the member-status enum round-trips as a string
func TestMemberStatusRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	memberID := id.NewID32()
	m := makeMember(memberID, 0, 0)
	m.Status = domainMember.StatusInactive
	if err := repo.Create(ctx, m); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByMemberID(ctx, memberID)
	if err != nil {
		t.Fatalf("GetByMemberID: %v", err)
	}
	if got.Status != domainMember.StatusInactive {
		t.Fatalf("status = %s, want inactive", got.Status)
	}
}
