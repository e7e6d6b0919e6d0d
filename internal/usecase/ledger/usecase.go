package ledger

import (
	"context"
	"fmt"
	"time"

	"simpan-pinjam-backend/internal/domain/fund"
	"simpan-pinjam-backend/internal/domain/loan"
	"simpan-pinjam-backend/internal/domain/member"
	"simpan-pinjam-backend/internal/domain/transaction"
	"simpan-pinjam-backend/internal/domain/uow"
	"simpan-pinjam-backend/pkg/id"
)

// Usecase computes fund-wide financial state on demand. Nothing is cached:
// every aggregate re-queries the store, so readers see whatever the
// repository's consistency contract gives them at call time.
type Usecase struct {
	members member.Repository
	loans   loan.Repository
	fund    fund.Repository
	uow     uow.UnitOfWork
}

func NewUsecase(members member.Repository, loans loan.Repository, f fund.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{members: members, loans: loans, fund: f, uow: tx}
}

func (u *Usecase) TotalContributions(ctx context.Context) (float64, error) {
	v, err := u.members.SumContributions(ctx)
	if err != nil {
		return 0, fmt.Errorf("sum contributions: %w", err)
	}
	return v, nil
}

func (u *Usecase) TotalActiveLoans(ctx context.Context) (float64, error) {
	v, err := u.loans.SumActiveBalances(ctx)
	if err != nil {
		return 0, fmt.Errorf("sum active loan balances: %w", err)
	}
	return v, nil
}

func (u *Usecase) TotalWithdrawn(ctx context.Context) (float64, error) {
	v, err := u.members.SumCashOuts(ctx)
	if err != nil {
		return 0, fmt.Errorf("sum cash outs: %w", err)
	}
	return v, nil
}

// FundBalance is contributions + Bob's remaining investment + applied
// interest, minus active loan exposure and withdrawals.
func (u *Usecase) FundBalance(ctx context.Context) (float64, error) {
	s, err := u.fund.FetchOrCreate(ctx)
	if err != nil {
		return 0, err
	}
	return balanceWith(ctx, balanceRepos{members: u.members, loans: u.loans}, s)
}

type balanceRepos struct {
	members member.Repository
	loans   loan.Repository
}

// FundBalanceIn computes the fund balance with repositories bound to the
// caller's transaction scope, so mutating flows can snapshot the balance
// they are about to change.
func FundBalanceIn(ctx context.Context, r uow.Repos) (float64, error) {
	s, err := r.Fund.FetchOrCreate(ctx)
	if err != nil {
		return 0, err
	}
	return balanceWith(ctx, balanceRepos{members: r.Members, loans: r.Loans}, s)
}

func balanceWith(ctx context.Context, r balanceRepos, s *fund.Settings) (float64, error) {
	contributions, err := r.members.SumContributions(ctx)
	if err != nil {
		return 0, fmt.Errorf("sum contributions: %w", err)
	}
	withdrawn, err := r.members.SumCashOuts(ctx)
	if err != nil {
		return 0, fmt.Errorf("sum cash outs: %w", err)
	}
	activeLoans, err := r.loans.SumActiveBalances(ctx)
	if err != nil {
		return 0, fmt.Errorf("sum active loan balances: %w", err)
	}
	return contributions + s.BobRemainingInvestment + s.TotalInterestApplied - activeLoans - withdrawn, nil
}

// UtilizationPercentage is active loans over fund balance, 0 when the
// balance is zero or negative.
func (u *Usecase) UtilizationPercentage(ctx context.Context) (float64, error) {
	balance, err := u.FundBalance(ctx)
	if err != nil {
		return 0, err
	}
	if balance <= 0 {
		return 0, nil
	}
	activeLoans, err := u.TotalActiveLoans(ctx)
	if err != nil {
		return 0, err
	}
	return activeLoans / balance, nil
}

func (u *Usecase) ShouldWarnUtilization(ctx context.Context) (bool, error) {
	s, err := u.fund.FetchOrCreate(ctx)
	if err != nil {
		return false, err
	}
	util, err := u.UtilizationPercentage(ctx)
	if err != nil {
		return false, err
	}
	return util >= s.UtilizationWarningThreshold, nil
}

func (u *Usecase) ShouldWarnMinimumBalance(ctx context.Context) (bool, error) {
	s, err := u.fund.FetchOrCreate(ctx)
	if err != nil {
		return false, err
	}
	balance, err := u.FundBalance(ctx)
	if err != nil {
		return false, err
	}
	return balance < s.MinimumFundBalance, nil
}

// GetFundState bundles the dashboard aggregates in one pass over the store.
func (u *Usecase) GetFundState(ctx context.Context) (*FundStateDTO, error) {
	s, err := u.fund.FetchOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	balance, err := balanceWith(ctx, balanceRepos{members: u.members, loans: u.loans}, s)
	if err != nil {
		return nil, err
	}
	activeLoans, err := u.TotalActiveLoans(ctx)
	if err != nil {
		return nil, err
	}
	utilization := 0.0
	if balance > 0 {
		utilization = activeLoans / balance
	}
	return &FundStateDTO{
		Balance:            balance,
		Utilization:        utilization,
		WarnMinimumBalance: balance < s.MinimumFundBalance,
		WarnUtilization:    utilization >= s.UtilizationWarningThreshold,
	}, nil
}

// ApplyAnnualInterest credits fundBalance × annualInterestRate to the fund.
// The read-modify-write runs in one transaction with the settings row
// locked, so concurrent readers never observe a half-applied update.
// Invoking it at most once per accrual period is the caller's contract.
func (u *Usecase) ApplyAnnualInterest(ctx context.Context) (*ApplyInterestDTO, error) {
	var dto *ApplyInterestDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		s, err := r.Fund.FetchForUpdate(ctx)
		if err != nil {
			return err
		}

		balance, err := balanceWith(ctx, balanceRepos{members: r.Members, loans: r.Loans}, s)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		interest := balance * s.AnnualInterestRate
		s.TotalInterestApplied += interest
		s.LastInterestAppliedAt = &now
		if err := r.Fund.Save(ctx, s); err != nil {
			return err
		}

		entry := &transaction.Transaction{
			TransactionID:   id.NewID32(),
			Type:            transaction.TypeInterestApplied,
			Amount:          interest,
			Balance:         balance + interest,
			TransactionDate: now,
		}
		if err := r.Transactions.Create(ctx, entry); err != nil {
			return err
		}

		dto = &ApplyInterestDTO{
			InterestAmount:       interest,
			TotalInterestApplied: s.TotalInterestApplied,
			FundBalance:          balance + interest,
			AppliedAt:            now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// RecordInvestment adds external capital to Bob's pool and credits the
// fund with a bobInvestment ledger entry.
func (u *Usecase) RecordInvestment(ctx context.Context, amount float64) (*InvestmentDTO, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("invalid investment amount %v", amount)
	}

	var dto *InvestmentDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		s, err := r.Fund.FetchForUpdate(ctx)
		if err != nil {
			return err
		}

		balance, err := balanceWith(ctx, balanceRepos{members: r.Members, loans: r.Loans}, s)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		s.BobRemainingInvestment += amount
		if err := r.Fund.Save(ctx, s); err != nil {
			return err
		}

		entry := &transaction.Transaction{
			TransactionID:   id.NewID32(),
			Type:            transaction.TypeBobInvestment,
			Amount:          amount,
			Balance:         balance + amount,
			TransactionDate: now,
		}
		if err := r.Transactions.Create(ctx, entry); err != nil {
			return err
		}

		dto = &InvestmentDTO{
			Amount:                 amount,
			BobRemainingInvestment: s.BobRemainingInvestment,
			FundBalance:            balance + amount,
			RecordedAt:             now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// RecordInvestmentWithdrawal removes capital from Bob's pool. The pool can
// never go negative: a withdrawal above the remaining investment is
// rejected rather than clamped.
func (u *Usecase) RecordInvestmentWithdrawal(ctx context.Context, amount float64) (*InvestmentDTO, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("invalid withdrawal amount %v", amount)
	}

	var dto *InvestmentDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		s, err := r.Fund.FetchForUpdate(ctx)
		if err != nil {
			return err
		}
		if amount > s.BobRemainingInvestment {
			return fund.ErrInsufficientInvestment
		}

		balance, err := balanceWith(ctx, balanceRepos{members: r.Members, loans: r.Loans}, s)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		s.BobRemainingInvestment -= amount
		if err := r.Fund.Save(ctx, s); err != nil {
			return err
		}

		entry := &transaction.Transaction{
			TransactionID:   id.NewID32(),
			Type:            transaction.TypeBobWithdrawal,
			Amount:          amount,
			Balance:         balance - amount,
			TransactionDate: now,
		}
		if err := r.Transactions.Create(ctx, entry); err != nil {
			return err
		}

		dto = &InvestmentDTO{
			Amount:                 amount,
			BobRemainingInvestment: s.BobRemainingInvestment,
			FundBalance:            balance - amount,
			RecordedAt:             now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
