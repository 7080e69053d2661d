package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceWithVAT(t *testing.T) {
	assert.Equal(t, 125.0, PriceWithVAT(100, 25))
	assert.Equal(t, 100.0, PriceWithVAT(100, 0))
}

func TestPriceWithoutVAT(t *testing.T) {
	assert.Equal(t, 100.0, PriceWithoutVAT(125, 25))
	assert.Equal(t, 125.0, PriceWithoutVAT(125, 0))
}

func TestVATAmount(t *testing.T) {
	assert.Equal(t, 25.0, VATAmount(100, 25))
	assert.Equal(t, 0.0, VATAmount(100, 0))
}

func TestVATRoundTrip(t *testing.T) {
	nets := []float64{0, 1, 99.99, 150, 1234.56}
	percentages := []float64{0, 7, 19, 25, 27}

	for _, net := range nets {
		for _, pct := range percentages {
			assert.InDelta(t, net, PriceWithoutVAT(PriceWithVAT(net, pct), pct), 1e-9)
		}
	}
}

func TestEffectiveVAT(t *testing.T) {
	zero := 0.0
	twenty := 20.0

	// zero is a valid VAT value, not "unset"
	assert.Equal(t, &zero, EffectiveVAT(&zero, &twenty))
	assert.Equal(t, &twenty, EffectiveVAT(nil, &twenty))
	assert.Nil(t, EffectiveVAT(nil, nil))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.56, Round2(10.556))
	assert.Equal(t, 10.55, Round2(10.554))
	assert.Equal(t, 120.0, Round2(120))
}

func TestBreakdown(t *testing.T) {
	pct := 25.0
	breakdown := Breakdown(100, &pct)

	assert.Equal(t, 100.0, breakdown.WithoutVAT)
	assert.Equal(t, 125.0, breakdown.WithVAT)
	assert.Equal(t, 25.0, breakdown.VATAmount)
	assert.Equal(t, 25.0, breakdown.VATPercentage)
}

func TestBreakdownWithoutVAT(t *testing.T) {
	zero := 0.0
	for _, pct := range []*float64{nil, &zero} {
		breakdown := Breakdown(80, pct)

		assert.Equal(t, 80.0, breakdown.WithoutVAT)
		assert.Equal(t, 80.0, breakdown.WithVAT)
		assert.Equal(t, 0.0, breakdown.VATAmount)
		assert.Equal(t, 0.0, breakdown.VATPercentage)
	}
}
