// Package france implements the French net-income calculation.
// It plugs into the generic engine as a generic.NetIncomeCalculator.
package france

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/wealth-engine/generic"
)

// =============================================================================
// EMPLOYMENT STATUS
// =============================================================================

// EmploymentStatus drives the gross to net-taxable salary conversion.
type EmploymentStatus string

const (
	StatusNonCadre EmploymentStatus = "non-cadre"
	StatusCadre    EmploymentStatus = "cadre"
	StatusPublic   EmploymentStatus = "public"
	StatusLiberal  EmploymentStatus = "liberal"
	StatusPortage  EmploymentStatus = "portage"
)

// Share of the gross salary that remains taxable after social charges.
var netTaxableRatio = map[EmploymentStatus]decimal.Decimal{
	StatusNonCadre: decimal.RequireFromString("0.78"),
	StatusCadre:    decimal.RequireFromString("0.75"),
	StatusPublic:   decimal.RequireFromString("0.85"),
	StatusLiberal:  decimal.RequireFromString("0.55"),
	StatusPortage:  decimal.RequireFromString("0.49"),
}

// ParseEmploymentStatus validates a status string.
func ParseEmploymentStatus(s string) (EmploymentStatus, error) {
	status := EmploymentStatus(s)
	if _, ok := netTaxableRatio[status]; !ok {
		return "", fmt.Errorf("%w: unknown french employment status %q", generic.ErrInvalidInput, s)
	}
	return status, nil
}
