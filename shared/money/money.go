package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Places is the currency precision used for every stored and reported amount.
const Places = 2

// Amounts are persisted and served as JSON numbers.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Parse reads a decimal string and falls back to zero when it cannot be parsed.
func Parse(value string) decimal.Decimal {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}

	return amount
}

// Round rounds half away from zero to currency precision.
func Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(Places)
}

// Split divides amount into n equal shares rounded to currency precision.
func Split(amount decimal.Decimal, n int) decimal.Decimal {
	if n <= 1 {
		return amount
	}

	return Round(amount.Div(decimal.NewFromInt(int64(n))))
}

// NearlyEqual reports whether a and b differ by less than one cent.
func NearlyEqual(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(decimal.New(1, -Places))
}
