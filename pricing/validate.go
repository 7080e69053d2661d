package pricing

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"confreg-webapp/model"
)

var validate = validator.New()

// ValidateFee rejects malformed fee records at the admin boundary. The
// resolvers assume well-formed input and would propagate bad date
// strings silently, so everything is checked here before a fee is
// stored: struct tags first, then the date window.
func ValidateFee(fee model.CustomRegistrationFee) error {
	if err := validate.Struct(fee); err != nil {
		return err
	}

	from, err := ParseDay(fee.ValidFrom)
	if err != nil {
		return fmt.Errorf("valid_from is not a valid date: %v", fee.ValidFrom)
	}
	to, err := ParseDay(fee.ValidTo)
	if err != nil {
		return fmt.Errorf("valid_to is not a valid date: %v", fee.ValidTo)
	}
	if to.Before(from) {
		return fmt.Errorf("valid_to %v is before valid_from %v", fee.ValidTo, fee.ValidFrom)
	}

	return nil
}

// ValidatePricing rejects a pricing configuration with negative amounts
// or a malformed early bird deadline.
func ValidatePricing(pricing model.ConferencePricing) error {
	if pricing.EarlyBird.Amount < 0 || pricing.Regular.Amount < 0 || pricing.Late.Amount < 0 {
		return fmt.Errorf("tier amounts cannot be negative")
	}
	if pricing.StudentDiscount < 0 {
		return fmt.Errorf("student discount cannot be negative")
	}
	if pricing.AccompanyingPersonPrice < 0 {
		return fmt.Errorf("accompanying person price cannot be negative")
	}
	if pricing.EarlyBird.Deadline != "" {
		if _, err := ParseDay(pricing.EarlyBird.Deadline); err != nil {
			return fmt.Errorf("early bird deadline is not a valid date: %v", pricing.EarlyBird.Deadline)
		}
	}
	if len(pricing.Currency) != 3 {
		return fmt.Errorf("currency must be a 3-letter code")
	}
	return nil
}
