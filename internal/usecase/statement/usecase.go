package statement

import (
	"context"
	"time"

	domain "simpan-pinjam-backend/internal/domain/transaction"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Usecase turns raw ledger entries into display form: the credit/debit
// sign comes from the entry type, never from the stored magnitude.
type Usecase struct {
	repo    domain.Repository
	printer *message.Printer
}

func NewUsecase(r domain.Repository) *Usecase {
	return &Usecase{repo: r, printer: message.NewPrinter(language.English)}
}

type EntryDTO struct {
	TransactionID   string    `json:"transaction_id"`
	MemberID        string    `json:"member_id,omitempty"`
	Type            string    `json:"type"`
	IsCredit        bool      `json:"is_credit"`
	Amount          float64   `json:"amount"`
	DisplayAmount   string    `json:"display_amount"`
	Balance         float64   `json:"balance"`
	TransactionDate time.Time `json:"transaction_date"`
}

// Classify maps one ledger entry to its display semantics.
func (u *Usecase) Classify(tx *domain.Transaction) EntryDTO {
	return EntryDTO{
		TransactionID:   tx.TransactionID,
		MemberID:        tx.MemberID,
		Type:            string(tx.Type),
		IsCredit:        tx.Type.IsCredit(),
		Amount:          tx.Amount,
		DisplayAmount:   u.DisplayAmount(tx),
		Balance:         tx.Balance,
		TransactionDate: tx.TransactionDate,
	}
}

// DisplayAmount renders the signed, thousands-grouped magnitude, e.g.
// "+12,000.00" for a contribution and "-12,000.00" for a disbursement.
func (u *Usecase) DisplayAmount(tx *domain.Transaction) string {
	sign := "-"
	if tx.Type.IsCredit() {
		sign = "+"
	}
	return sign + u.printer.Sprintf("%.2f", tx.Amount)
}

func (u *Usecase) ListByMember(ctx context.Context, memberID string, limit int) ([]EntryDTO, error) {
	txs, err := u.repo.ListByMemberID(ctx, memberID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]EntryDTO, 0, len(txs))
	for i := range txs {
		out = append(out, u.Classify(&txs[i]))
	}
	return out, nil
}

func (u *Usecase) ListRecent(ctx context.Context, limit int) ([]EntryDTO, error) {
	txs, err := u.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]EntryDTO, 0, len(txs))
	for i := range txs {
		out = append(out, u.Classify(&txs[i]))
	}
	return out, nil
}
