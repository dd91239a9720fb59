package generic

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ACTION PAYLOADS
// =============================================================================

// PropertyPurchase describes a property bought by the person. Missing
// recurrent expenses, rent and growth rate default to zero.
type PropertyPurchase struct {
	Price             decimal.Decimal
	NotaryFees        decimal.Decimal
	RecurrentExpenses RecurrentExpenses

	// Monthly rent (without utilities) if the property is rented out.
	Rent decimal.Decimal

	// Annual growth of the worth, as a decimal fraction.
	GrowthRate float64
}

func (p PropertyPurchase) toProperty() Property {
	return Property{
		PurchasePrice:     p.Price,
		CurrentWorth:      p.Price,
		RecurrentExpenses: p.RecurrentExpenses,
		Rent:              p.Rent,
		State:             PropertyEmpty,
		GrowthRate:        p.GrowthRate,
	}
}

// PropertyImprovement is work raising a property's worth. PropertyIndex
// zero targets the first owned property.
type PropertyImprovement struct {
	Cost          decimal.Decimal
	AddedValue    decimal.Decimal
	PropertyIndex int
}

// =============================================================================
// ACTION - Dated mutation of the situation (closed set)
// =============================================================================

type ActionKind string

const (
	ActionBuyProperty             ActionKind = "buy_property"
	ActionSignLoan                ActionKind = "sign_loan"
	ActionSellProperty            ActionKind = "sell_property"
	ActionRentProperty            ActionKind = "rent_property"
	ActionLeaveRentalProperty     ActionKind = "leave_rental_property"
	ActionMoveIn                  ActionKind = "move_in"
	ActionMakePropertyImprovement ActionKind = "make_property_improvement"
	ActionRentOutProperty         ActionKind = "rent_out_property"
)

// Action is a scheduled mutation. Only the payload matching Kind is read:
//
//	BuyProperty             -> Purchase
//	SignLoan                -> Loan
//	SellProperty            -> PropertyIndex
//	RentProperty            -> Rental
//	LeaveRentalProperty     -> (none)
//	MoveIn                  -> PropertyIndex
//	MakePropertyImprovement -> Improvement
//	RentOutProperty         -> PropertyIndex
//
// Actions hold values only, so a recorded action cannot be altered through
// the payload the caller passed in.
type Action struct {
	Kind ActionKind
	Date SimpleDate

	Purchase      PropertyPurchase
	Loan          LoanOptions
	Rental        Rental
	Improvement   PropertyImprovement
	PropertyIndex int
}

// Apply mutates the situation. It fails without side effects when a
// precondition does not hold.
func (a Action) Apply(s *Situation) error {
	switch a.Kind {
	case ActionBuyProperty:
		if err := ValidateFractionRate("growth_rate", a.Purchase.GrowthRate); err != nil {
			return err
		}
		s.CurrentAccount = s.CurrentAccount.Sub(a.Purchase.Price.Add(a.Purchase.NotaryFees))
		s.Properties = append(s.Properties, a.Purchase.toProperty())

	case ActionSignLoan:
		if err := a.Loan.Validate(); err != nil {
			return err
		}
		loan := NewLoan(a.Loan)
		s.CurrentAccount = s.CurrentAccount.Add(loan.Amount().Sub(loan.BankingFees()))
		s.Loans = append(s.Loans, loan)

	case ActionSellProperty:
		if err := a.checkIndex(s, "property not found"); err != nil {
			return err
		}
		s.CurrentAccount = s.CurrentAccount.Add(s.Properties[a.PropertyIndex].CurrentWorth)
		s.Properties = append(s.Properties[:a.PropertyIndex], s.Properties[a.PropertyIndex+1:]...)

	case ActionRentProperty:
		rental := a.Rental
		s.Rental = &rental

	case ActionLeaveRentalProperty:
		s.Rental = nil

	case ActionMoveIn:
		if err := a.checkIndex(s, "no property to move in"); err != nil {
			return err
		}
		if current := s.PrincipalResidence(); current >= 0 {
			s.Properties[current].State = PropertyEmpty
		}
		s.Properties[a.PropertyIndex].State = PropertyUsedAsPrincipalResidence

	case ActionMakePropertyImprovement:
		idx := a.Improvement.PropertyIndex
		if idx < 0 || idx >= len(s.Properties) {
			return &InvalidOperationError{Action: a.Kind, PropertyIndex: idx, Reason: "no property to improve"}
		}
		p := &s.Properties[idx]
		p.CurrentWorth = p.CurrentWorth.Add(a.Improvement.AddedValue)
		s.CurrentAccount = s.CurrentAccount.Sub(a.Improvement.Cost)

	case ActionRentOutProperty:
		if err := a.checkIndex(s, "property not found"); err != nil {
			return err
		}
		p := &s.Properties[a.PropertyIndex]
		if !p.Rent.IsPositive() {
			return &InvalidOperationError{
				Action:        a.Kind,
				PropertyIndex: a.PropertyIndex,
				Reason:        "the rent of the property has not been defined",
			}
		}
		p.State = PropertyRented

	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, a.Kind)
	}
	return nil
}

func (a Action) checkIndex(s *Situation, reason string) error {
	if a.PropertyIndex < 0 || a.PropertyIndex >= len(s.Properties) {
		return &InvalidOperationError{Action: a.Kind, PropertyIndex: a.PropertyIndex, Reason: reason}
	}
	return nil
}

func (a Action) String() string {
	return fmt.Sprintf("%s@%s", a.Kind, a.Date)
}
