package advisor

import (
	"regexp"
	"strconv"
	"strings"

	"finbot/internal/finmath"
)

// CalculationKind identifies which formula a message dispatches to.
type CalculationKind string

const (
	CalcSavingsGoal CalculationKind = "savings_goal"
	CalcFinancing   CalculationKind = "financing"
	CalcInvestment  CalculationKind = "investment"
	CalcRetirement  CalculationKind = "retirement"
)

// defaultAnnualReturnPct is assumed when a savings projection has no
// explicit return rate in the message.
const defaultAnnualReturnPct = 8.0

var numberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// Calculation holds a fully interpreted calculation request: the dispatch
// kind, the operands pulled from the text, and the computed outputs.
type Calculation struct {
	Kind CalculationKind

	// Echoed inputs
	Principal float64
	RatePct   float64
	Years     float64
	Monthly   float64
	Goal      float64

	// Outputs
	Result        float64
	MonthlyNeeded float64
}

var (
	savingsWords    = []string{"poupar", "economizar", "juntar"}
	financingWords  = []string{"financiamento", "prestação", "prestacao", "parcela"}
	investmentWords = []string{"investir", "investimento", "juros compostos"}
	retirementWords = []string{"aposentadoria", "aposentar"}
)

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// extractNumbers returns every decimal substring of the message, in order,
// as raw tokens. Tokens stay strings until dispatch so the magnitude
// heuristic can inspect how the number was written.
func extractNumbers(message string) []string {
	return numberPattern.FindAllString(message, -1)
}

// expandMagnitude applies the short-token currency heuristic: an amount
// written with at most maxLen characters is read as thousands ("250" in a
// financing question means 250 000). Interpreted values are always echoed
// back in the reply so a misread is visible to the user.
func expandMagnitude(token string, maxLen int) float64 {
	value, _ := strconv.ParseFloat(token, 64)
	if len(token) <= maxLen {
		return value * 1000
	}
	return value
}

func parseToken(token string) float64 {
	value, _ := strconv.ParseFloat(token, 64)
	return value
}

// Interpret matches the message against the calculation branch table and
// runs the corresponding formula. It returns:
//   - (calc, "", true) when a calculation was recognized and computed;
//   - (nil, clarification, true) when the message is a calculation request
//     that is missing operands — the text asks for the missing values;
//   - (nil, "", false) when the message is not a calculation at all.
//
// Branches are tried in a fixed order and the first keyword hit decides the
// calculation kind, matching the classifier's first-match semantics.
func Interpret(message string) (*Calculation, string, bool) {
	lower := strings.ToLower(message)
	numbers := extractNumbers(lower)

	switch {
	case containsAny(lower, savingsWords):
		if len(numbers) < 2 {
			return nil, msgNeedValues, true
		}
		// The savings branch only expands two-character tokens ("50" means
		// 50 000, but "500" stays 500).
		goal := parseToken(numbers[0])
		if len(numbers[0]) == 2 {
			goal *= 1000
		}
		years := parseToken(numbers[1])
		if years <= 0 {
			return nil, msgNeedValues, true
		}
		monthly := finmath.MonthlySavingsNeeded(goal, 0, years, defaultAnnualReturnPct)
		return &Calculation{
			Kind:          CalcSavingsGoal,
			Goal:          goal,
			Years:         years,
			RatePct:       defaultAnnualReturnPct,
			MonthlyNeeded: monthly,
		}, "", true

	case containsAny(lower, financingWords):
		if len(numbers) < 3 {
			return nil, msgNeedValues, true
		}
		principal := expandMagnitude(numbers[0], 3)
		rate := parseToken(numbers[1])
		years := parseToken(numbers[2])
		if principal <= 0 || years <= 0 {
			return nil, msgNeedValues, true
		}
		payment := finmath.LoanPayment(principal, rate, years)
		return &Calculation{
			Kind:      CalcFinancing,
			Principal: principal,
			RatePct:   rate,
			Years:     years,
			Result:    payment,
		}, "", true

	case containsAny(lower, investmentWords):
		if len(numbers) < 3 {
			return nil, msgNeedValues, true
		}
		principal := expandMagnitude(numbers[0], 3)
		rate := parseToken(numbers[1])
		years := parseToken(numbers[2])
		monthly := 0.0
		if len(numbers) > 3 {
			monthly = parseToken(numbers[3])
		}
		if years < 0 {
			return nil, msgNeedValues, true
		}
		future := finmath.CompoundGrowth(principal, rate, years, monthly)
		return &Calculation{
			Kind:      CalcInvestment,
			Principal: principal,
			RatePct:   rate,
			Years:     years,
			Monthly:   monthly,
			Result:    future,
		}, "", true

	case containsAny(lower, retirementWords):
		if len(numbers) < 2 {
			return nil, msgNeedValues, true
		}
		annualExpenses := expandMagnitude(numbers[0], 3)
		years := parseToken(numbers[1])
		if annualExpenses <= 0 || years <= 0 {
			return nil, msgNeedValues, true
		}
		needed := finmath.RetirementTarget(annualExpenses, years)
		monthly := finmath.MonthlySavingsNeeded(needed, 0, years, defaultAnnualReturnPct)
		return &Calculation{
			Kind:          CalcRetirement,
			Principal:     annualExpenses,
			Years:         years,
			Result:        needed,
			MonthlyNeeded: monthly,
		}, "", true
	}

	// Numbers with no recognizable calculation verb: ask for direction
	// instead of guessing.
	if len(numbers) > 0 && containsAny(lower, []string{"calcular", "quanto"}) {
		return nil, msgNeedCalcKind, true
	}

	return nil, "", false
}
