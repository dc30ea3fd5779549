package engine

import (
	"math"

	"github.com/shopspring/decimal"
)

// SafetyBuffer keeps the projected end-of-period balance above zero.
var SafetyBuffer = decimal.RequireFromString("0.8")

var (
	maxInt = decimal.NewFromInt(math.MaxInt)
	minInt = decimal.NewFromInt(math.MinInt)
)

// SafeToSpend returns floor((balance / daysLeft) * 0.8). A period with no days left
// has an allowance of 0. Negative balances yield negative allowances. Results outside
// the int range saturate; a NaN balance has an allowance of 0.
func SafeToSpend(balance float64, daysLeft int) int {
	switch {
	case daysLeft <= 0 || math.IsNaN(balance):
		return 0
	case math.IsInf(balance, 1):
		return math.MaxInt
	case math.IsInf(balance, -1):
		return math.MinInt
	}
	perDay := decimal.NewFromFloat(balance).Div(decimal.NewFromInt(int64(daysLeft)))
	return floorInt(perDay.Mul(SafetyBuffer))
}

// floorInt floors d and clamps it into the int range.
func floorInt(d decimal.Decimal) int {
	f := d.Floor()
	switch {
	case f.GreaterThan(maxInt):
		return math.MaxInt
	case f.LessThan(minInt):
		return math.MinInt
	}
	return int(f.IntPart())
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
