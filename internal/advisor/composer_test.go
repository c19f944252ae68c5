package advisor

import (
	"strings"
	"testing"
)

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0.00"},
		{1234.5, "R$ 1,234.50"},
		{1234567.891, "R$ 1,234,567.89"},
		{-950.25, "R$ -950.25"},
		{100, "R$ 100.00"},
	}
	for _, tc := range cases {
		if got := formatBRL(tc.in); got != tc.want {
			t.Errorf("formatBRL(%f) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestComposeCalculation(t *testing.T) {
	t.Run("savings_goal", func(t *testing.T) {
		reply := ComposeCalculation(&Calculation{
			Kind:          CalcSavingsGoal,
			Goal:          50000,
			Years:         2,
			MonthlyNeeded: 1928.18,
		})
		if !strings.Contains(reply, "R$ 50,000.00") {
			t.Errorf("expected goal amount in reply, got %q", reply)
		}
		if !strings.Contains(reply, "R$ 1,928.18") {
			t.Errorf("expected monthly amount in reply, got %q", reply)
		}
	})

	t.Run("financing_includes_totals", func(t *testing.T) {
		reply := ComposeCalculation(&Calculation{
			Kind:      CalcFinancing,
			Principal: 250000,
			RatePct:   10,
			Years:     20,
			Result:    2412.72,
		})
		if !strings.Contains(reply, "Prestação mensal") {
			t.Errorf("expected payment label, got %q", reply)
		}
		// Total paid = payment * 240, interest = total - principal.
		if !strings.Contains(reply, "R$ 579,052.80") {
			t.Errorf("expected total paid in reply, got %q", reply)
		}
		if !strings.Contains(reply, "R$ 329,052.80") {
			t.Errorf("expected total interest in reply, got %q", reply)
		}
	})

	t.Run("investment_includes_profit", func(t *testing.T) {
		reply := ComposeCalculation(&Calculation{
			Kind:      CalcInvestment,
			Principal: 10000,
			RatePct:   12,
			Years:     5,
			Monthly:   0,
			Result:    18166.97,
		})
		if !strings.Contains(reply, "Lucro obtido") {
			t.Errorf("expected profit label, got %q", reply)
		}
		if !strings.Contains(reply, "R$ 8,166.97") {
			t.Errorf("expected profit amount in reply, got %q", reply)
		}
	})

	t.Run("nil_yields_fallback", func(t *testing.T) {
		if got := ComposeCalculation(nil); got != msgCalcFailed {
			t.Errorf("expected fallback message, got %q", got)
		}
	})

	t.Run("unknown_kind_yields_fallback", func(t *testing.T) {
		if got := ComposeCalculation(&Calculation{Kind: CalculationKind("mystery")}); got != msgCalcFailed {
			t.Errorf("expected fallback message, got %q", got)
		}
	})
}

func TestComposeTopic(t *testing.T) {
	t.Run("known_intents_have_replies", func(t *testing.T) {
		for intent := range topicResponses {
			if reply := ComposeTopic(intent); reply == "" {
				t.Errorf("expected non-empty reply for intent %s", intent)
			}
		}
	})

	t.Run("unknown_intent_gets_help", func(t *testing.T) {
		if got := ComposeTopic(Intent("nonsense")); got != helpText {
			t.Errorf("expected help text for unknown intent, got %q", got)
		}
	})
}
