package query

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AnySalary is the placeholder the UI sends when no band is selected.
const AnySalary = "Any Salary"

// SalaryBand is one of the fixed salary filter ranges, half-open [Min, Max).
type SalaryBand struct {
	Label string
	Min   decimal.Decimal
	Max   decimal.NullDecimal
}

// SalaryBands are the salary filter values exposed to clients.
var SalaryBands = []SalaryBand{
	{Label: "Under $30k", Min: decimal.Zero, Max: decimal.NewNullDecimal(decimal.NewFromInt(30000))},
	{Label: "$30k - $50k", Min: decimal.NewFromInt(30000), Max: decimal.NewNullDecimal(decimal.NewFromInt(50000))},
	{Label: "$50k - $80k", Min: decimal.NewFromInt(50000), Max: decimal.NewNullDecimal(decimal.NewFromInt(80000))},
	{Label: "$80k - $100k", Min: decimal.NewFromInt(80000), Max: decimal.NewNullDecimal(decimal.NewFromInt(100000))},
	{Label: "$100k+", Min: decimal.NewFromInt(100000)},
}

// LookupSalaryBand finds a band by label, ignoring case.
func LookupSalaryBand(label string) (SalaryBand, bool) {
	label = strings.TrimSpace(label)
	for _, b := range SalaryBands {
		if strings.EqualFold(b.Label, label) {
			return b, true
		}
	}
	return SalaryBand{}, false
}

// Contains reports whether amount falls inside the band.
func (b SalaryBand) Contains(amount decimal.Decimal) bool {
	if amount.LessThan(b.Min) {
		return false
	}
	return !b.Max.Valid || amount.LessThan(b.Max.Decimal)
}
