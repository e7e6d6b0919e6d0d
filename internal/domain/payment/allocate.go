package payment

// Allocation is how a recorded payment's amount splits between loan
// repayment and contribution ledger effects.
type Allocation struct {
	ToLoan         float64
	ToContribution float64
}

// Allocate maps a payment type to its split. loanRepayment sends the whole
// amount to the loan; contribution sends it all to the member's savings.
// mixed is stored data without an upstream split rule, so it is rejected
// rather than guessed at.
func Allocate(t Type, amount float64) (Allocation, error) {
	switch t {
	case TypeLoanRepayment:
		return Allocation{ToLoan: amount}, nil
	case TypeContribution:
		return Allocation{ToContribution: amount}, nil
	case TypeMixed:
		return Allocation{}, ErrMixedAllocationUndefined
	default:
		return Allocation{}, ErrUnknownType
	}
}
