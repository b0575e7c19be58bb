package closeflow

import (
	"errors"
	"fmt"

	"github.com/GlebRadaev/fuelstation/internal/domain"
	"github.com/GlebRadaev/fuelstation/pkg/validate"
)

var (
	ErrNoEntries            = errors.New("at least one payment method is required")
	ErrUnknownMethod        = errors.New("unknown payment method")
	ErrNegativeAmount       = errors.New("payment amount must not be negative")
	ErrInvalidCardReference = errors.New("card reference fails the checksum")
)

// Validate checks the payment breakdown before anything is sent.
func Validate(entries []domain.PaymentMethodEntry) error {
	if len(entries) == 0 {
		return ErrNoEntries
	}
	for i, e := range entries {
		if !e.Method.Valid() {
			return fmt.Errorf("entry %d: %w %q", i+1, ErrUnknownMethod, e.Method)
		}
		if e.Amount.IsNegative() {
			return fmt.Errorf("entry %d: %w", i+1, ErrNegativeAmount)
		}
		if e.Method == domain.PaymentCard && !validate.CardReference(e.Reference) {
			return fmt.Errorf("entry %d: %w", i+1, ErrInvalidCardReference)
		}
	}
	return nil
}
