package pricing

import (
	"testing"
	"time"

	"confreg-webapp/model"

	"github.com/stretchr/testify/assert"
)

func testPricing() model.ConferencePricing {
	return model.ConferencePricing{
		Currency:                "EUR",
		EarlyBird:               model.TierPrice{Amount: 150, Deadline: "2026-03-01"},
		Regular:                 model.TierPrice{Amount: 200},
		Late:                    model.TierPrice{Amount: 250},
		StudentDiscount:         50,
		AccompanyingPersonPrice: 80,
	}
}

func day(t *testing.T, s string) time.Time {
	parsed, err := ParseDay(s)
	if err != nil {
		t.Fatalf("invalid test date %v", s)
	}
	return parsed
}

func dayPtr(t *testing.T, s string) *time.Time {
	parsed := day(t, s)
	return &parsed
}

func TestResolveTier(t *testing.T) {
	tests := []struct {
		description     string
		now             string
		conferenceStart *string
		expectedTier    Tier
	}{
		{
			description:  "before early bird deadline",
			now:          "2026-02-15",
			expectedTier: TierEarlyBird,
		},
		{
			description:  "on early bird deadline is regular",
			now:          "2026-03-01",
			expectedTier: TierRegular,
		},
		{
			description:  "after early bird deadline",
			now:          "2026-03-15",
			expectedTier: TierRegular,
		},
		{
			description:     "late window overrides early bird",
			now:             "2026-02-20",
			conferenceStart: strPtr("2026-03-05"),
			expectedTier:    TierLate,
		},
		{
			description:     "exactly 14 days before start is late",
			now:             "2026-05-16",
			conferenceStart: strPtr("2026-05-30"),
			expectedTier:    TierLate,
		},
		{
			description:     "15 days before start is not late",
			now:             "2026-02-01",
			conferenceStart: strPtr("2026-02-16"),
			expectedTier:    TierEarlyBird,
		},
		{
			description:     "conference start day is late",
			now:             "2026-05-30",
			conferenceStart: strPtr("2026-05-30"),
			expectedTier:    TierLate,
		},
		{
			description:     "after conference start no late window",
			now:             "2026-06-05",
			conferenceStart: strPtr("2026-05-30"),
			expectedTier:    TierRegular,
		},
	}

	for _, test := range tests {
		var start *time.Time
		if test.conferenceStart != nil {
			start = dayPtr(t, *test.conferenceStart)
		}
		tier := ResolveTier(testPricing(), day(t, test.now), start)
		assert.Equalf(t, test.expectedTier, tier, test.description)
	}
}

func TestResolveTierWithoutDeadline(t *testing.T) {
	pricing := testPricing()
	pricing.EarlyBird.Deadline = ""

	// without a deadline early bird is never selectable
	assert.Equal(t, TierRegular, ResolveTier(pricing, day(t, "2026-01-01"), nil))
}

func TestResolvePricingEarlyBird(t *testing.T) {
	result := ResolvePricing(testPricing(), day(t, "2026-02-15"), nil)

	assert.Equal(t, TierEarlyBird, result.Tier)
	assert.Equal(t, 150.0, result.ParticipantPrice)
	assert.Equal(t, 100.0, result.StudentPrice)
	assert.Equal(t, 80.0, result.AccompanyingPersonPrice)
	assert.Equal(t, "EUR", result.Currency)
}

func TestResolvePricingLateWindow(t *testing.T) {
	// conference 10 days away always charges the late price
	result := ResolvePricing(testPricing(), day(t, "2026-05-20"), dayPtr(t, "2026-05-30"))

	assert.Equal(t, TierLate, result.Tier)
	assert.Equal(t, 250.0, result.ParticipantPrice)
	assert.Equal(t, 200.0, result.StudentPrice)
}

func TestStudentPriceNotClamped(t *testing.T) {
	pricing := testPricing()
	pricing.StudentDiscount = 300

	result := ResolvePricing(pricing, day(t, "2026-02-15"), nil)

	// negative student price is a data entry error the caller surfaces
	assert.Equal(t, -150.0, result.StudentPrice)
	assert.Equal(t, result.ParticipantPrice-pricing.StudentDiscount, result.StudentPrice)
}

func strPtr(s string) *string {
	return &s
}
