package pricing

import (
	"testing"

	"confreg-webapp/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testFee(name string) model.CustomRegistrationFee {
	return model.CustomRegistrationFee{
		Id:         primitive.NewObjectID(),
		Name:       name,
		ValidFrom:  "2026-01-01",
		ValidTo:    "2026-06-30",
		IsActive:   true,
		PriceNet:   100,
		PriceGross: 125,
		Currency:   "EUR",
	}
}

func TestListAvailableFeesReasons(t *testing.T) {
	inactive := testFee("inactive workshop")
	inactive.IsActive = false

	notYetOpen := testFee("future workshop")
	notYetOpen.ValidFrom = "2026-05-01"

	expired := testFee("past workshop")
	expired.ValidTo = "2026-02-01"

	soldOut := testFee("full workshop")
	soldOut.Capacity = int64Ptr(5)

	open := testFee("open workshop")

	fees := []model.CustomRegistrationFee{inactive, notYetOpen, expired, soldOut, open}
	soldCounts := map[string]int64{soldOut.Id.Hex(): 5}

	options := ListAvailableFees(fees, soldCounts, day(t, "2026-03-10"))

	// unavailable fees stay in the list so forms can render them disabled
	require.Len(t, options, 5)

	byId := map[string]FeeOption{}
	for _, option := range options {
		byId[option.Id] = option
	}

	assert.False(t, byId[inactive.Id.Hex()].IsAvailable)
	assert.Equal(t, ReasonInactive, byId[inactive.Id.Hex()].DisabledReason)

	assert.False(t, byId[notYetOpen.Id.Hex()].IsAvailable)
	assert.Equal(t, ReasonNotAvailableYet, byId[notYetOpen.Id.Hex()].DisabledReason)

	assert.False(t, byId[expired.Id.Hex()].IsAvailable)
	assert.Equal(t, ReasonExpired, byId[expired.Id.Hex()].DisabledReason)

	assert.False(t, byId[soldOut.Id.Hex()].IsAvailable)
	assert.Equal(t, ReasonSoldOut, byId[soldOut.Id.Hex()].DisabledReason)
	assert.Equal(t, int64(5), byId[soldOut.Id.Hex()].SoldCount)

	assert.True(t, byId[open.Id.Hex()].IsAvailable)
	assert.Empty(t, byId[open.Id.Hex()].DisabledReason)
}

func TestInactiveWinsOverExpired(t *testing.T) {
	fee := testFee("retired workshop")
	fee.IsActive = false
	fee.ValidTo = "2026-01-31"

	options := ListAvailableFees([]model.CustomRegistrationFee{fee}, nil, day(t, "2026-03-10"))

	require.Len(t, options, 1)
	assert.Equal(t, ReasonInactive, options[0].DisabledReason)
}

func TestValidityWindowIsInclusive(t *testing.T) {
	fee := testFee("window workshop")

	firstDay := ListAvailableFees([]model.CustomRegistrationFee{fee}, nil, day(t, "2026-01-01"))
	lastDay := ListAvailableFees([]model.CustomRegistrationFee{fee}, nil, day(t, "2026-06-30"))
	dayAfter := ListAvailableFees([]model.CustomRegistrationFee{fee}, nil, day(t, "2026-07-01"))

	assert.True(t, firstDay[0].IsAvailable)
	assert.True(t, lastDay[0].IsAvailable)
	assert.False(t, dayAfter[0].IsAvailable)
	assert.Equal(t, ReasonExpired, dayAfter[0].DisabledReason)
}

func TestIsSoldOut(t *testing.T) {
	tests := []struct {
		description string
		capacity    *int64
		soldCount   int64
		expected    bool
	}{
		{"capacity reached", int64Ptr(5), 5, true},
		{"one below capacity", int64Ptr(5), 4, false},
		{"over capacity", int64Ptr(5), 7, true},
		{"nil capacity is unlimited", nil, 1000, false},
		{"zero capacity is unlimited", int64Ptr(0), 1000, false},
		{"negative capacity is unlimited", int64Ptr(-1), 1000, false},
	}

	for _, test := range tests {
		fee := testFee("capacity workshop")
		fee.Capacity = test.capacity
		assert.Equalf(t, test.expected, IsSoldOut(fee, test.soldCount), test.description)
	}
}

func TestListFeesForAdminShowsEverything(t *testing.T) {
	inactive := testFee("inactive workshop")
	inactive.IsActive = false
	inactive.DisplayOrder = 2

	full := testFee("full workshop")
	full.Capacity = int64Ptr(3)
	full.DisplayOrder = 1

	views := ListFeesForAdmin(
		[]model.CustomRegistrationFee{inactive, full},
		map[string]int64{full.Id.Hex(): 3})

	require.Len(t, views, 2)
	// ordered by display_order, no filtering whatsoever
	assert.Equal(t, "full workshop", views[0].Name)
	assert.True(t, views[0].IsSoldOut)
	assert.Equal(t, int64(3), views[0].SoldCount)
	assert.Equal(t, "inactive workshop", views[1].Name)
	assert.False(t, views[1].IsSoldOut)
}

func TestListAvailableFeesOrdering(t *testing.T) {
	second := testFee("second")
	second.DisplayOrder = 10
	first := testFee("first")
	first.DisplayOrder = 1

	options := ListAvailableFees([]model.CustomRegistrationFee{second, first}, nil, day(t, "2026-03-10"))

	require.Len(t, options, 2)
	assert.Equal(t, "first", options[0].Name)
	assert.Equal(t, "second", options[1].Name)
}

func int64Ptr(v int64) *int64 {
	return &v
}
