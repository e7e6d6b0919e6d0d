package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "simpan-pinjam-backend/internal/domain/member"
	"simpan-pinjam-backend/pkg/id"

	"gorm.io/gorm"
)

func makeMember(memberID string, contributions, cashOut float64) *domain.Member {
	join := time.Now().UTC().AddDate(-1, 0, 0)
	return &domain.Member{
		MemberID:           memberID,
		Name:               "Test Member",
		Role:               domain.RoleDriver,
		Status:             domain.StatusActive,
		TotalContributions: contributions,
		CashOutAmount:      cashOut,
		JoinDate:           &join,
	}
}

func TestMemberCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	memberID := id.NewID32()
	m := makeMember(memberID, 5_000, 0)
	if err := repo.Create(ctx, m); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByMemberID(ctx, memberID)
	if err != nil {
		t.Fatalf("GetByMemberID: %v", err)
	}
	if got.MemberID != memberID || got.TotalContributions != 5_000 {
		t.Errorf("unexpected member: %+v", got)
	}
}

func TestMemberGet_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewMemberRepository(db)

	_, err := repo.GetByMemberID(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestMemberSums(t *testing.T) {
	db := openTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	// empty table sums to zero, not an error
	sum, err := repo.SumContributions(ctx)
	if err != nil {
		t.Fatalf("SumContributions: %v", err)
	}
	if sum != 0 {
		t.Fatalf("empty sum = %v, want 0", sum)
	}

	for _, row := range []struct{ contrib, cashOut float64 }{
		{10_000, 0}, {25_000, 1_000}, {7_500, 0},
	} {
		if err := repo.Create(ctx, makeMember(id.NewID32(), row.contrib, row.cashOut)); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	sum, err = repo.SumContributions(ctx)
	if err != nil {
		t.Fatalf("SumContributions: %v", err)
	}
	if sum != 42_500 {
		t.Fatalf("contributions sum = %v, want 42500", sum)
	}

	withdrawn, err := repo.SumCashOuts(ctx)
	if err != nil {
		t.Fatalf("SumCashOuts: %v", err)
	}
	if withdrawn != 1_000 {
		t.Fatalf("cash-out sum = %v, want 1000", withdrawn)
	}
}

func TestMemberSaveUpdates(t *testing.T) {
	db := openTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	memberID := id.NewID32()
	m := makeMember(memberID, 1_000, 0)
	if err := repo.Create(ctx, m); err != nil {
		t.Fatalf("Create: %v", err)
	}

	m.TotalContributions = 1_500
	m.Status = domain.StatusSuspended
	if err := repo.Save(ctx, m); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByMemberID(ctx, memberID)
	if err != nil {
		t.Fatalf("GetByMemberID: %v", err)
	}
	if got.TotalContributions != 1_500 || got.Status != domain.StatusSuspended {
		t.Errorf("not updated: %+v", got)
	}
}
