package membership

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "simpan-pinjam-backend/internal/domain/member"
	"simpan-pinjam-backend/internal/domain/transaction"
	"simpan-pinjam-backend/internal/domain/uow"
	"simpan-pinjam-backend/internal/usecase/eligibility"
	"simpan-pinjam-backend/internal/usecase/ledger"
	"simpan-pinjam-backend/pkg/id"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

type EnrollInput struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type MemberDTO struct {
	MemberID           string     `json:"member_id"`
	Name               string     `json:"name"`
	Role               string     `json:"role"`
	Status             string     `json:"status"`
	TotalContributions float64    `json:"total_contributions"`
	JoinDate           *time.Time `json:"join_date"`
	CashOutAmount      float64    `json:"cash_out_amount,omitempty"`
}

type CashOutDTO struct {
	MemberID      string    `json:"member_id"`
	CashOutAmount float64   `json:"cash_out_amount"`
	CashedOutAt   time.Time `json:"cashed_out_at"`
}

func (u *Usecase) Enroll(ctx context.Context, in EnrollInput) (*MemberDTO, error) {
	role := domain.Role(in.Role)
	if in.Name == "" || !role.Valid() {
		return nil, errors.New("invalid input")
	}

	now := time.Now().UTC()
	m := &domain.Member{
		MemberID: id.NewID32(),
		Name:     in.Name,
		Role:     role,
		Status:   domain.StatusActive,
		JoinDate: &now,
	}
	if err := u.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return toDTO(m), nil
}

func (u *Usecase) Get(ctx context.Context, memberID string) (*MemberDTO, error) {
	m, err := u.repo.GetByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return toDTO(m), nil
}

// CashOut pays the member out at principal × 1.13, marks them inactive and
// writes the cashOut ledger entry, all in one transaction. Blocked while
// the member still has active loan exposure.
func (u *Usecase) CashOut(ctx context.Context, memberID string) (*CashOutDTO, error) {
	var dto *CashOutDTO

	err := u.uow.WithinMemberTx(ctx, memberID, func(r uow.Repos, m *domain.Member) error {
		if m.Status != domain.StatusActive {
			return domain.ErrNotActive
		}
		if m.CashOutAmount > 0 {
			return domain.ErrAlreadyCashedOut
		}
		outstanding, err := r.Loans.SumActiveBalancesByMember(ctx, m.MemberID)
		if err != nil {
			return fmt.Errorf("sum member active balances: %w", err)
		}
		if outstanding > 0 {
			return domain.ErrHasActiveLoan
		}

		balanceBefore, err := ledger.FundBalanceIn(ctx, r)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		payout := eligibility.CalculateCashOutAmount(m, eligibility.DefaultCashOutInterestRate)
		m.Status = domain.StatusInactive
		m.CashOutAmount = payout
		if err := r.Members.Save(ctx, m); err != nil {
			return err
		}

		entry := &transaction.Transaction{
			TransactionID:   id.NewID32(),
			MemberID:        m.MemberID,
			Type:            transaction.TypeCashOut,
			Amount:          payout,
			Balance:         balanceBefore - payout,
			TransactionDate: now,
		}
		if err := r.Transactions.Create(ctx, entry); err != nil {
			return err
		}

		dto = &CashOutDTO{MemberID: m.MemberID, CashOutAmount: payout, CashedOutAt: now}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func toDTO(m *domain.Member) *MemberDTO {
	return &MemberDTO{
		MemberID:           m.MemberID,
		Name:               m.Name,
		Role:               string(m.Role),
		Status:             string(m.Status),
		TotalContributions: m.TotalContributions,
		JoinDate:           m.JoinDate,
		CashOutAmount:      m.CashOutAmount,
	}
}
