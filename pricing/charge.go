package pricing

import (
	"strings"
	"time"

	"confreg-webapp/model"
)

const customFeePrefix = "custom_"

type SelectionKind string

const (
	SelectionTier      SelectionKind = "tier"
	SelectionCustomFee SelectionKind = "custom_fee"
)

// FeeCategory is a built-in selection on a registration. Beyond the
// three date-driven tiers it covers the student and accompanying person
// variants, which derive their price from the resolved tier.
type FeeCategory string

const (
	CategoryEarlyBird    FeeCategory = "early_bird"
	CategoryRegular      FeeCategory = "regular"
	CategoryLate         FeeCategory = "late"
	CategoryStudent      FeeCategory = "student"
	CategoryAccompanying FeeCategory = "accompanying_person"
)

// FeeSelection is the parsed form of a registration's fee-type token.
// The stored string encodes either a built-in category or a custom fee
// reference (custom_{feeId}); parsing it once here keeps prefix
// handling out of the resolvers.
type FeeSelection struct {
	Kind     SelectionKind
	Category FeeCategory // set when Kind == SelectionTier; empty means resolve by date
	FeeId    string      // set when Kind == SelectionCustomFee
}

// ParseFeeType parses a stored fee-type token. An empty or unknown
// token becomes a tier selection with no explicit category, which
// charge resolution treats as "resolve the tier from the date".
func ParseFeeType(token string) FeeSelection {
	if strings.HasPrefix(token, customFeePrefix) {
		return FeeSelection{Kind: SelectionCustomFee, FeeId: strings.TrimPrefix(token, customFeePrefix)}
	}

	switch FeeCategory(token) {
	case CategoryEarlyBird, CategoryRegular, CategoryLate, CategoryStudent, CategoryAccompanying:
		return FeeSelection{Kind: SelectionTier, Category: FeeCategory(token)}
	}

	return FeeSelection{Kind: SelectionTier}
}

// Token renders the selection back into its stored string form.
func (s FeeSelection) Token() string {
	if s.Kind == SelectionCustomFee {
		return customFeePrefix + s.FeeId
	}
	return string(s.Category)
}

type ChargeAmount struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// ResolveChargeAmount resolves the amount and currency to charge for a
// registration against its conference. Custom fees charge their stored
// gross price without re-checking availability: once selected at
// registration time, the charge honors the stored fee. A referenced fee
// that no longer exists resolves to a zero amount, which callers treat
// as "nothing to charge".
func ResolveChargeAmount(registration model.Registration, conference model.Conference, now time.Time) ChargeAmount {
	pricing := conference.Pricing
	selection := ParseFeeType(registration.FeeType)

	if selection.Kind == SelectionCustomFee {
		for _, fee := range conference.Fees {
			if fee.Id.Hex() == selection.FeeId {
				return ChargeAmount{Amount: fee.PriceGross, Currency: fee.Currency}
			}
		}
		return ChargeAmount{Amount: 0, Currency: pricing.Currency}
	}

	var conferenceStart *time.Time
	if start, err := ParseDay(conference.StartDate); err == nil {
		conferenceStart = &start
	}

	switch selection.Category {
	case CategoryStudent:
		tier := ResolveTier(pricing, now, conferenceStart)
		return ChargeAmount{
			Amount:   TierAmount(pricing, tier) - pricing.StudentDiscount,
			Currency: pricing.Currency,
		}
	case CategoryAccompanying:
		return ChargeAmount{Amount: pricing.AccompanyingPersonPrice, Currency: pricing.Currency}
	case CategoryEarlyBird, CategoryRegular, CategoryLate:
		// An explicitly stored tier wins over date resolution.
		return ChargeAmount{
			Amount:   TierAmount(pricing, Tier(selection.Category)),
			Currency: pricing.Currency,
		}
	default:
		tier := ResolveTier(pricing, now, conferenceStart)
		return ChargeAmount{Amount: TierAmount(pricing, tier), Currency: pricing.Currency}
	}
}
