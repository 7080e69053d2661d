package pricing

import "math"

// VAT percentages are whole-number percents: 25 means 25%.

func PriceWithVAT(net, percentage float64) float64 {
	return net * (1 + percentage/100)
}

func PriceWithoutVAT(gross, percentage float64) float64 {
	return gross / (1 + percentage/100)
}

func VATAmount(net, percentage float64) float64 {
	return PriceWithVAT(net, percentage) - net
}

// EffectiveVAT picks the VAT percentage that applies: the
// conference-level value when set, else the user default, else nil.
// Zero is a valid, meaningful VAT value and is not treated as unset.
func EffectiveVAT(conferenceVAT, userDefaultVAT *float64) *float64 {
	if conferenceVAT != nil {
		return conferenceVAT
	}
	if userDefaultVAT != nil {
		return userDefaultVAT
	}
	return nil
}

// Round2 rounds a monetary amount to 2 decimal places.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

type PriceBreakdown struct {
	WithoutVAT    float64 `json:"without_vat"`
	WithVAT       float64 `json:"with_vat"`
	VATAmount     float64 `json:"vat_amount"`
	VATPercentage float64 `json:"vat_percentage"`
}

// Breakdown splits a net amount into its gross, net and VAT parts.
// With a nil or zero percentage all three amounts equal the input and
// the VAT amount is zero.
func Breakdown(amount float64, percentage *float64) PriceBreakdown {
	if percentage == nil || *percentage == 0 {
		return PriceBreakdown{WithoutVAT: amount, WithVAT: amount, VATAmount: 0, VATPercentage: 0}
	}
	return PriceBreakdown{
		WithoutVAT:    Round2(amount),
		WithVAT:       Round2(PriceWithVAT(amount, *percentage)),
		VATAmount:     Round2(VATAmount(amount, *percentage)),
		VATPercentage: *percentage,
	}
}
