package accounting

import (
	"fmt"

	"github.com/SscSPs/construction_billing_app/internal/apperrors"
	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MaxScale is the number of decimal places every stored amount column keeps.
const MaxScale = 4

// requireScale fails with apperrors.ErrInvalidAmount when v carries more than
// MaxScale significant decimal places. Trailing zeros do not count.
func requireScale(name string, v decimal.Decimal) error {
	if !v.Equal(v.Truncate(MaxScale)) {
		return fmt.Errorf("%w: %s must have at most %d decimal places, got %s", apperrors.ErrInvalidAmount, name, MaxScale, v.String())
	}
	return nil
}

// requireNonNegative fails with apperrors.ErrInvalidAmount when v is below zero
// or cannot be stored without rounding.
func requireNonNegative(name string, v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: %s must be >= 0, got %s", apperrors.ErrInvalidAmount, name, v.String())
	}
	return requireScale(name, v)
}

// ValidateAmount applies the calculator's input rules to an amount entered
// directly, such as a debit, a final amount override or a payment.
func ValidateAmount(name string, v decimal.Decimal) error {
	return requireNonNegative(name, v)
}

// ComputeBillTotal returns unitPrice x quantity.
func ComputeBillTotal(unitPrice, quantity decimal.Decimal) (decimal.Decimal, error) {
	if err := requireNonNegative("unitPrice", unitPrice); err != nil {
		return decimal.Zero, err
	}
	if err := requireNonNegative("quantity", quantity); err != nil {
		return decimal.Zero, err
	}
	total := unitPrice.Mul(quantity)
	if err := requireScale("total", total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// ComputeEntryAmount returns persons x rate x hours for a single labour entry.
func ComputeEntryAmount(persons, rate, hours decimal.Decimal) (decimal.Decimal, error) {
	if err := requireNonNegative("noOfPersons", persons); err != nil {
		return decimal.Zero, err
	}
	if err := requireNonNegative("rate", rate); err != nil {
		return decimal.Zero, err
	}
	if err := requireNonNegative("hours", hours); err != nil {
		return decimal.Zero, err
	}
	amount := persons.Mul(rate).Mul(hours)
	if err := requireScale("amount", amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// ComputeWeeklyTotal recomputes each entry amount from its factors and returns
// the sum together with the per-entry amounts, in entry order. An empty entry
// list is rejected.
func ComputeWeeklyTotal(entries []domain.LabourEntry) (decimal.Decimal, []decimal.Decimal, error) {
	if len(entries) == 0 {
		return decimal.Zero, nil, apperrors.ErrEmptyEntrySet
	}
	total := decimal.Zero
	amounts := make([]decimal.Decimal, len(entries))
	for i, e := range entries {
		amount, err := ComputeEntryAmount(e.Persons, e.Rate, e.Hours)
		if err != nil {
			return decimal.Zero, nil, fmt.Errorf("entry %d: %w", i, err)
		}
		amounts[i] = amount
		total = total.Add(amount)
	}
	return total, amounts, nil
}

// ComputeFinalAmount returns max(0, base - pmDebit - qcDebit). The second
// result reports whether the debits exceeded the base and the value was clamped.
func ComputeFinalAmount(base, pmDebit, qcDebit decimal.Decimal) (decimal.Decimal, bool, error) {
	if err := requireNonNegative("baseAmount", base); err != nil {
		return decimal.Zero, false, err
	}
	if err := requireNonNegative("pmDebit", pmDebit); err != nil {
		return decimal.Zero, false, err
	}
	if err := requireNonNegative("qcDebit", qcDebit); err != nil {
		return decimal.Zero, false, err
	}
	final := base.Sub(pmDebit).Sub(qcDebit)
	if final.IsNegative() {
		return decimal.Zero, true, nil
	}
	return final, false, nil
}
