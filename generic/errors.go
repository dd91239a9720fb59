/*
errors.go - Centralized error types for the simulation engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Plugin packages (france) and shells (factory, api) wrap or classify
  these errors.

ERROR CATEGORIES:
  1. Invalid reference - an action points at a property that does not
     exist, or rents out a property without a rent
  2. Missing field - a net-income plugin needs data the situation lacks
  3. Invalid input - malformed loans and rates, unknown actions,
     out-of-range months
  4. Store errors - scenario lookups

There is no recovery inside the engine: the first error aborts the
GetHistory call and no partial history is returned.

SEE ALSO:
  - action.go: Returns InvalidOperationError
  - loan.go: Returns InvalidLoanError
  - types.go: Returns InvalidRateError
  - france/tax.go: Returns MissingFieldError
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidOperation is returned when an action references a property
	// index that does not exist or a property that cannot take the action.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrMissingField is returned when a net-income calculation needs a
	// field that was not provided (e.g. an employment status).
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidLoan is returned for loans that cannot be amortized.
	ErrInvalidLoan = errors.New("invalid loan")

	// ErrUnknownAction is returned when an action kind is not part of the
	// closed action set.
	ErrUnknownAction = errors.New("unknown action")

	// ErrInvalidInput is returned for malformed scenario definitions and
	// plugin inputs (unknown enum values, bad JSON).
	ErrInvalidInput = errors.New("invalid input")

	// ErrMonthOutOfRange is returned when a history is queried past its horizon.
	ErrMonthOutOfRange = errors.New("month out of range")

	// ErrScenarioNotFound is returned when a referenced scenario doesn't exist.
	ErrScenarioNotFound = errors.New("scenario not found")

	// ErrHorizonTooLarge is returned when a simulation horizon exceeds the
	// configured maximum.
	ErrHorizonTooLarge = errors.New("horizon too large")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidOperationError names the action and the offending property index.
type InvalidOperationError struct {
	Action        ActionKind
	PropertyIndex int
	Reason        string
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("invalid operation: %s on property index '%d': %s",
		e.Action, e.PropertyIndex, e.Reason)
}

func (e *InvalidOperationError) Unwrap() error {
	return ErrInvalidOperation
}

// MissingFieldError reports a field a plugin required but did not get.
// Index is the position of the offending item (e.g. the employment).
type MissingFieldError struct {
	Field string
	Index int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q at index %d", e.Field, e.Index)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// InvalidLoanError reports the loan option that makes amortization undefined.
type InvalidLoanError struct {
	Field string
	Value string
}

func (e *InvalidLoanError) Error() string {
	return fmt.Sprintf("invalid loan: %s = %s", e.Field, e.Value)
}

func (e *InvalidLoanError) Unwrap() error {
	return ErrInvalidLoan
}

// InvalidRateError reports a rate that is not a number or at which the
// amount it applies to would vanish or change sign.
type InvalidRateError struct {
	Field string
	Value float64
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("invalid rate: %s = %v", e.Field, e.Value)
}

func (e *InvalidRateError) Unwrap() error {
	return ErrInvalidInput
}

// MonthOutOfRangeError reports a history lookup outside [0, horizon].
type MonthOutOfRangeError struct {
	Month   SimpleDate
	Horizon SimpleDate
}

func (e *MonthOutOfRangeError) Error() string {
	return fmt.Sprintf("month %s outside history [M0, %s]", e.Month, e.Horizon)
}

func (e *MonthOutOfRangeError) Unwrap() error {
	return ErrMonthOutOfRange
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidOperation) ||
		errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrInvalidLoan) ||
		errors.Is(err, ErrUnknownAction) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrMonthOutOfRange) ||
		errors.Is(err, ErrHorizonTooLarge)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrScenarioNotFound)
}
