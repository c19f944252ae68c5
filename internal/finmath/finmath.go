// Package finmath implements the closed-form financial formulas used by the
// assistant: compound growth, loan amortization, the 25x retirement rule and
// the level-contribution solver for savings goals.
//
// All functions are pure and total for their documented input ranges. Rates
// are annual percentages (8 means 8%/year) and are converted internally to
// monthly effective rates as rate/12/100. Degenerate arithmetic (zero rate,
// zero horizon) is special-cased so no call can divide by zero.
package finmath

import "math"

// Inflation rate assumed when projecting retirement capital forward.
const retirementInflationRate = 0.04

// CompoundGrowth returns the future value of principal compounded monthly
// over the given number of years, plus the ordinary-annuity future value of
// a monthly contribution when one is present. With a zero rate the annuity
// degenerates to contribution * months.
func CompoundGrowth(principal, annualRatePct, years, monthlyContribution float64) float64 {
	monthlyRate := annualRatePct / 12 / 100
	months := years * 12

	futureValue := principal * math.Pow(1+monthlyRate, months)

	if monthlyContribution > 0 {
		if monthlyRate == 0 {
			futureValue += monthlyContribution * months
		} else {
			futureValue += monthlyContribution * ((math.Pow(1+monthlyRate, months) - 1) / monthlyRate)
		}
	}

	return futureValue
}

// LoanPayment returns the level monthly payment that fully amortizes
// principal over years at the given annual rate. A zero rate is repaid
// straight-line: principal divided by the number of months.
func LoanPayment(principal, annualRatePct, years float64) float64 {
	monthlyRate := annualRatePct / 12 / 100
	months := years * 12

	if monthlyRate == 0 {
		return principal / months
	}

	compound := math.Pow(1+monthlyRate, months)
	return principal * (monthlyRate * compound) / (compound - 1)
}

// RetirementTarget returns the capital required at retirement: 25 times
// annual expenses (the 25x rule), inflated forward at a fixed 4% per year.
func RetirementTarget(annualExpenses, yearsUntilRetirement float64) float64 {
	base := annualExpenses * 25
	return base * math.Pow(1+retirementInflationRate, yearsUntilRetirement)
}

// MonthlySavingsNeeded returns the level monthly contribution required to
// grow from current to goal over years at the given annual return. The
// current balance is projected forward first; if it already covers the goal
// the answer is 0. With a zero rate the remainder is divided evenly across
// the months.
func MonthlySavingsNeeded(goal, current, years, annualReturnPct float64) float64 {
	monthlyRate := annualReturnPct / 12 / 100
	months := years * 12

	remaining := goal
	if current > 0 {
		remaining = goal - current*math.Pow(1+monthlyRate, months)
	}

	if remaining <= 0 {
		return 0
	}

	if monthlyRate == 0 {
		return remaining / months
	}

	monthly := remaining / ((math.Pow(1+monthlyRate, months) - 1) / monthlyRate)
	return math.Max(0, monthly)
}
