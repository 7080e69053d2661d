// Package pricing resolves registration prices for a conference: the
// built-in date-driven tiers, admin-defined custom fees with validity
// windows and capacity, VAT conversions and display formatting.
//
// Every resolver is a pure function over already-fetched rows. The
// current date is always an explicit parameter so callers and tests can
// supply arbitrary dates.
package pricing

import (
	"time"

	"confreg-webapp/model"
)

type Tier string

const (
	TierEarlyBird Tier = "early_bird"
	TierRegular   Tier = "regular"
	TierLate      Tier = "late"
)

// DateLayout is the wire format of every date in pricing data.
const DateLayout = "2006-01-02"

// lateWindowDays: a conference starting within this many days (inclusive)
// always charges the late price, even before the early bird deadline.
const lateWindowDays = 14

// ParseDay parses a YYYY-MM-DD date string.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(truncateToDay(to).Sub(truncateToDay(from)).Hours() / 24)
}

// ResolveTier selects the built-in tier that applies at the given moment.
// The late window takes priority over everything else, then the early
// bird deadline (strictly before), then regular. A pricing config
// without an early bird deadline never sells early bird.
func ResolveTier(pricing model.ConferencePricing, now time.Time, conferenceStart *time.Time) Tier {
	if conferenceStart != nil {
		until := daysBetween(now, *conferenceStart)
		if until >= 0 && until <= lateWindowDays {
			return TierLate
		}
	}

	if pricing.EarlyBird.Deadline != "" {
		deadline, err := ParseDay(pricing.EarlyBird.Deadline)
		if err == nil && now.Before(deadline) {
			return TierEarlyBird
		}
	}

	return TierRegular
}

type PricingResult struct {
	Tier                    Tier    `json:"tier"`
	ParticipantPrice        float64 `json:"participant_price"`
	StudentPrice            float64 `json:"student_price"`
	AccompanyingPersonPrice float64 `json:"accompanying_person_price"`
	Currency                string  `json:"currency"`
}

// TierAmount returns the configured amount for a tier.
func TierAmount(pricing model.ConferencePricing, tier Tier) float64 {
	switch tier {
	case TierEarlyBird:
		return pricing.EarlyBird.Amount
	case TierLate:
		return pricing.Late.Amount
	default:
		return pricing.Regular.Amount
	}
}

// ResolvePricing resolves the applicable tier and the prices derived
// from it. The student price is the participant price minus the flat
// student discount and is deliberately not floored at zero: a negative
// result is a data entry error the caller must surface, not clamp.
func ResolvePricing(pricing model.ConferencePricing, now time.Time, conferenceStart *time.Time) PricingResult {
	tier := ResolveTier(pricing, now, conferenceStart)
	participant := TierAmount(pricing, tier)

	return PricingResult{
		Tier:                    tier,
		ParticipantPrice:        participant,
		StudentPrice:            participant - pricing.StudentDiscount,
		AccompanyingPersonPrice: pricing.AccompanyingPersonPrice,
		Currency:                pricing.Currency,
	}
}
