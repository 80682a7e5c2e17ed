package invest

import (
	"errors"
	"testing"

	investDomain "invest-platform-backend/internal/domain/investment"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		min     float64
		balance float64
		goal    float64
		current float64
		want    Verdict
		wantCap float64
	}{
		{"below minimum", 500, 1000, 5000, 10000, 0, BelowMinimum, 5000},
		{"insufficient balance", 2000, 1000, 1500, 10000, 0, InsufficientBalance, 1500},
		{"exceeds remaining funding", 9000, 1000, 20000, 10000, 8000, ExceedsRemaining, 2000},
		{"accepted at exact remaining", 2000, 1000, 20000, 10000, 8000, Accepted, 2000},
		{"accepted mid-range", 5000, 1000, 20000, 10000, 0, Accepted, 10000},
		{"amount equals remaining equals balance", 2000, 1000, 2000, 10000, 8000, Accepted, 2000},
		{"fully funded deal", 1000, 1000, 5000, 10000, 10000, ExceedsRemaining, 0},
		{"overfunded deal clamps remaining to zero", 1000, 1000, 5000, 10000, 12000, ExceedsRemaining, 0},
		{"amount equals minimum", 1000, 1000, 5000, 10000, 0, Accepted, 5000},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			out := Evaluate(tt.amount, tt.min, tt.balance, tt.goal, tt.current)
			if out.Verdict != tt.want {
				t.Fatalf("verdict = %v, want %v", out.Verdict, tt.want)
			}
			if out.Cap != tt.wantCap {
				t.Fatalf("cap = %v, want %v", out.Cap, tt.wantCap)
			}
		})
	}
}

func TestOutcome_Err(t *testing.T) {
	if err := (Outcome{Verdict: Accepted}).Err(); err != nil {
		t.Fatalf("accepted: %v", err)
	}
	if err := (Outcome{Verdict: BelowMinimum}).Err(); !errors.Is(err, investDomain.ErrBelowMinimum) {
		t.Fatalf("below minimum: %v", err)
	}
	if err := (Outcome{Verdict: InsufficientBalance}).Err(); !errors.Is(err, investDomain.ErrInsufficientBalance) {
		t.Fatalf("insufficient balance: %v", err)
	}

	err := (Outcome{Verdict: ExceedsRemaining, Cap: 2000}).Err()
	var exceeds *investDomain.ExceedsRemainingError
	if !errors.As(err, &exceeds) {
		t.Fatalf("exceeds remaining: %v", err)
	}
	if exceeds.Cap != 2000 {
		t.Fatalf("cap = %v, want 2000", exceeds.Cap)
	}
}
