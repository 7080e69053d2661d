package pricing

import (
	"testing"

	"confreg-webapp/model"

	"github.com/stretchr/testify/assert"
)

func TestValidateFee(t *testing.T) {
	assert.NoError(t, ValidateFee(testFee("valid workshop")))
}

func TestValidateFeeRejectsBadInput(t *testing.T) {
	tests := []struct {
		description string
		mutate      func(*model.CustomRegistrationFee)
	}{
		{"short name", func(f *model.CustomRegistrationFee) { f.Name = "x" }},
		{"malformed valid_from", func(f *model.CustomRegistrationFee) { f.ValidFrom = "01.06.2026" }},
		{"malformed valid_to", func(f *model.CustomRegistrationFee) { f.ValidTo = "soon" }},
		{"window ends before it starts", func(f *model.CustomRegistrationFee) {
			f.ValidFrom = "2026-06-01"
			f.ValidTo = "2026-01-01"
		}},
		{"negative net price", func(f *model.CustomRegistrationFee) { f.PriceNet = -10 }},
		{"negative gross price", func(f *model.CustomRegistrationFee) { f.PriceGross = -10 }},
		{"negative capacity", func(f *model.CustomRegistrationFee) { f.Capacity = int64Ptr(-5) }},
		{"missing currency", func(f *model.CustomRegistrationFee) { f.Currency = "" }},
		{"long currency code", func(f *model.CustomRegistrationFee) { f.Currency = "EURO" }},
	}

	for _, test := range tests {
		fee := testFee("workshop")
		test.mutate(&fee)
		assert.Errorf(t, ValidateFee(fee), test.description)
	}
}

func TestValidatePricing(t *testing.T) {
	assert.NoError(t, ValidatePricing(testPricing()))
}

func TestValidatePricingRejectsBadInput(t *testing.T) {
	tests := []struct {
		description string
		mutate      func(*model.ConferencePricing)
	}{
		{"negative tier amount", func(p *model.ConferencePricing) { p.Regular.Amount = -1 }},
		{"negative student discount", func(p *model.ConferencePricing) { p.StudentDiscount = -1 }},
		{"negative accompanying price", func(p *model.ConferencePricing) { p.AccompanyingPersonPrice = -1 }},
		{"malformed deadline", func(p *model.ConferencePricing) { p.EarlyBird.Deadline = "March 1st" }},
		{"bad currency", func(p *model.ConferencePricing) { p.Currency = "EURO" }},
	}

	for _, test := range tests {
		pricing := testPricing()
		test.mutate(&pricing)
		assert.Errorf(t, ValidatePricing(pricing), test.description)
	}
}
