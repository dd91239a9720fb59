/*
person.go - History builder and scheduling API

PURPOSE:
  A Person owns an immutable initial situation and an append-only log of
  scheduled actions. GetHistory replays both into a month-by-month
  History.

REPLAY ALGORITHM (per GetHistory call):
  1. Deep-copy the initial situation (the caller's copy is never touched)
  2. Report month 0: balance sheet of the copy, empty P&L
  3. Stable-sort actions by month (same-month actions keep recording order)
  4. For each month m in [0, until):
     a. fresh P&L builder
     b. apply every action scheduled at m, in sorted order
     c. run the monthly pipeline (pipeline.go)
     d. finalize net profit
     e. report {balance sheet, P&L}
  5. Return until+1 reportings

  Actions dated before month 0 or at/after the horizon are never applied.
  Two calls with the same horizon produce identical histories; a longer
  horizon recomputes from scratch.

ERRORS:
  The first failing action or pipeline step aborts the call. The error is
  wrapped with the month and keeps its structured cause:

    var invalid *generic.InvalidOperationError
    if errors.As(err, &invalid) { ... invalid.PropertyIndex ... }

SEE ALSO:
  - action.go: Action set
  - pipeline.go: Monthly recurring events
  - reporting.go: Balance sheet and P&L derivation
*/
package generic

import (
	"fmt"
	"sort"
)

// =============================================================================
// PERSON
// =============================================================================

type Person struct {
	initial *Situation
	actions []Action
}

// NewPerson copies the initial situation; later changes to the caller's
// slices do not reach the person.
func NewPerson(initial InitialSituation) *Person {
	return &Person{initial: newSituation(initial)}
}

// InitialSituation returns a deep copy of the starting situation.
func (p *Person) InitialSituation() *Situation { return p.initial.Clone() }

// Actions returns a copy of the action log, in recording order.
func (p *Person) Actions() []Action {
	out := make([]Action, len(p.actions))
	copy(out, p.actions)
	return out
}

// SetNetIncomeCalculation installs a net-income plugin on the initial
// situation. Country constructors use it.
func (p *Person) SetNetIncomeCalculation(c NetIncomeCalculator) {
	p.initial.Environment.NetIncomeCalculation = c
}

// =============================================================================
// SCHEDULING API
// =============================================================================

// Schedule records an action. The action is stored by value.
func (p *Person) Schedule(a Action) {
	p.actions = append(p.actions, a)
}

func (p *Person) BuyProperty(date SimpleDate, purchase PropertyPurchase) {
	p.Schedule(Action{Kind: ActionBuyProperty, Date: date, Purchase: purchase})
}

func (p *Person) SignLoan(date SimpleDate, loan LoanOptions) {
	p.Schedule(Action{Kind: ActionSignLoan, Date: date, Loan: loan})
}

// SellProperty sells the property at propertyIndex for its current worth.
func (p *Person) SellProperty(date SimpleDate, propertyIndex int) {
	p.Schedule(Action{Kind: ActionSellProperty, Date: date, PropertyIndex: propertyIndex})
}

func (p *Person) RentProperty(date SimpleDate, rental Rental) {
	p.Schedule(Action{Kind: ActionRentProperty, Date: date, Rental: rental})
}

func (p *Person) LeaveRentalProperty(date SimpleDate) {
	p.Schedule(Action{Kind: ActionLeaveRentalProperty, Date: date})
}

func (p *Person) MoveIn(date SimpleDate, propertyIndex int) {
	p.Schedule(Action{Kind: ActionMoveIn, Date: date, PropertyIndex: propertyIndex})
}

func (p *Person) MakePropertyImprovement(date SimpleDate, improvement PropertyImprovement) {
	p.Schedule(Action{Kind: ActionMakePropertyImprovement, Date: date, Improvement: improvement})
}

func (p *Person) RentOutProperty(date SimpleDate, propertyIndex int) {
	p.Schedule(Action{Kind: ActionRentOutProperty, Date: date, PropertyIndex: propertyIndex})
}

// =============================================================================
// HISTORY
// =============================================================================

// GetHistory simulates every month in [0, until) and returns until+1
// reportings.
func (p *Person) GetHistory(until SimpleDate) (*History, error) {
	if until.Months() < 0 {
		return nil, fmt.Errorf("%w: negative horizon %d", ErrInvalidInput, until.Months())
	}
	if err := p.initial.Validate(); err != nil {
		return nil, fmt.Errorf("initial situation: %w", err)
	}

	situation := p.initial.Clone()

	reports := make([]Reporting, 0, until.Months()+1)
	reports = append(reports, Reporting{
		BalanceSheet: ComputeBalanceSheet(situation),
		PLStatement:  EmptyPLStatement(),
	})

	ordered := p.Actions()
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	// Actions dated before the origin are never due.
	next := sort.Search(len(ordered), func(i int) bool {
		return !ordered[i].Date.Before(Origin())
	})

	for _, date := range until.DatesFromOrigin() {
		pl := newStatementBuilder()

		for next < len(ordered) && ordered[next].Date.Equal(date) {
			action := ordered[next]
			if err := action.Apply(situation); err != nil {
				return nil, fmt.Errorf("month %d: %s: %w", date.Months(), action.Kind, err)
			}
			next++
		}

		if err := runMonthlyPipeline(situation, pl, date); err != nil {
			return nil, fmt.Errorf("month %d: %w", date.Months(), err)
		}

		reports = append(reports, Reporting{
			BalanceSheet: ComputeBalanceSheet(situation),
			PLStatement:  pl.Build(),
		})
	}

	return newHistory(reports), nil
}
