package generic

import (
	"fmt"
	"strconv"
)

// =============================================================================
// SIMPLE DATE - Month index since the simulation origin
// =============================================================================

// SimpleDate counts elapsed months since an origin (month 0). There is no
// calendar behind it: no days, no leap years, no time zones.
type SimpleDate struct {
	nthMonth int
}

// Constructors
func NewSimpleDate(nthMonth int) SimpleDate { return SimpleDate{nthMonth: nthMonth} }
func Origin() SimpleDate                   { return SimpleDate{} }
func MonthsLater(n int) SimpleDate          { return Origin().AddMonths(n) }
func YearsLater(n int) SimpleDate           { return Origin().AddMonths(12 * n) }

// Comparison
func (d SimpleDate) Before(other SimpleDate) bool { return d.nthMonth < other.nthMonth }
func (d SimpleDate) Equal(other SimpleDate) bool  { return d.nthMonth == other.nthMonth }
func (d SimpleDate) After(other SimpleDate) bool  { return d.nthMonth > other.nthMonth }

// Arithmetic
func (d SimpleDate) AddMonths(n int) SimpleDate { return SimpleDate{nthMonth: d.nthMonth + n} }
func (d SimpleDate) AddYears(n int) SimpleDate  { return SimpleDate{nthMonth: d.nthMonth + 12*n} }

// Properties
func (d SimpleDate) Months() int { return d.nthMonth }

// NthYear returns the zero-based year the month falls in. Negative months
// round toward minus infinity so month -1 belongs to year -1.
func (d SimpleDate) NthYear() int {
	if d.nthMonth < 0 {
		return -((-d.nthMonth + 11) / 12)
	}
	return d.nthMonth / 12
}

// DatesFromOrigin enumerates every month in [0, d). A date at or before the
// origin yields no months.
func (d SimpleDate) DatesFromOrigin() []SimpleDate {
	if d.nthMonth <= 0 {
		return nil
	}
	dates := make([]SimpleDate, 0, d.nthMonth)
	for date := Origin(); date.Before(d); date = date.AddMonths(1) {
		dates = append(dates, date)
	}
	return dates
}

func (d SimpleDate) String() string { return fmt.Sprintf("M%d", d.nthMonth) }

// MarshalJSON encodes the date as its month count.
func (d SimpleDate) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(d.nthMonth)), nil
}

func (d *SimpleDate) UnmarshalJSON(data []byte) error {
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("simple date must be an integer month count: %w", err)
	}
	d.nthMonth = n
	return nil
}
