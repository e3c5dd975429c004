package model

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	salaryAmountPattern = regexp.MustCompile(`(\d[\d,]*(?:\.\d+)?)\s*([kK])?`)
	thousand            = decimal.NewFromInt(1000)
)

// ParseSalaryRange extracts the lower and upper bound from a free-text salary
// label. "$80K - $100K" gives 80000 and 100000, "$100k+" gives 100000 and no
// upper bound, and a single amount is both bounds. Labels without digits yield
// two invalid values.
func ParseSalaryRange(label string) (low, high decimal.NullDecimal) {
	matches := salaryAmountPattern.FindAllStringSubmatch(label, 2)
	if len(matches) == 0 {
		return decimal.NullDecimal{}, decimal.NullDecimal{}
	}

	amounts := make([]decimal.Decimal, 0, len(matches))
	for _, m := range matches {
		v, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			continue
		}
		if m[2] != "" {
			v = v.Mul(thousand)
		}
		amounts = append(amounts, v)
	}
	if len(amounts) == 0 {
		return decimal.NullDecimal{}, decimal.NullDecimal{}
	}

	// "$50 - 80K" reads as thousands on both sides.
	if len(amounts) == 2 && len(matches) == 2 && matches[0][2] == "" && matches[1][2] != "" {
		amounts[0] = amounts[0].Mul(thousand)
	}

	low = decimal.NewNullDecimal(amounts[0])
	switch {
	case len(amounts) == 2:
		high = decimal.NewNullDecimal(amounts[1])
		if high.Decimal.LessThan(low.Decimal) {
			low, high = high, low
		}
	case strings.Contains(label, "+"):
		high = decimal.NullDecimal{}
	default:
		high = low
	}
	return low, high
}
