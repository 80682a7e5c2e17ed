package invest

import investDomain "invest-platform-backend/internal/domain/investment"

type Verdict int

const (
	Accepted Verdict = iota
	BelowMinimum
	InsufficientBalance
	ExceedsRemaining
)

// Outcome carries the verdict plus the capped maximum the investor could
// still place (min of remaining funding and wallet balance).
type Outcome struct {
	Verdict Verdict
	Cap     float64
}

// Evaluate is the pure investment-limit guard. Boundaries are inclusive: a
// request equal to both the remaining funding and the wallet balance is
// accepted. Callers must re-run it under the deal row lock before mutating.
func Evaluate(amount, minInvestment, walletBalance, fundingGoal, currentFunding float64) Outcome {
	remaining := fundingGoal - currentFunding
	if remaining < 0 {
		remaining = 0
	}
	cap := remaining
	if walletBalance < cap {
		cap = walletBalance
	}

	switch {
	case amount < minInvestment:
		return Outcome{Verdict: BelowMinimum, Cap: cap}
	case amount > walletBalance:
		return Outcome{Verdict: InsufficientBalance, Cap: cap}
	case amount > remaining:
		return Outcome{Verdict: ExceedsRemaining, Cap: cap}
	}
	return Outcome{Verdict: Accepted, Cap: cap}
}

// Err maps a rejecting outcome to its domain error; nil when accepted.
func (o Outcome) Err() error {
	switch o.Verdict {
	case BelowMinimum:
		return investDomain.ErrBelowMinimum
	case InsufficientBalance:
		return investDomain.ErrInsufficientBalance
	case ExceedsRemaining:
		return &investDomain.ExceedsRemainingError{Cap: o.Cap}
	}
	return nil
}
