package pricing

import (
	"sort"
	"time"

	"confreg-webapp/model"
)

type DisabledReason string

const (
	ReasonInactive        DisabledReason = "inactive"
	ReasonNotAvailableYet DisabledReason = "not_available_yet"
	ReasonExpired         DisabledReason = "expired"
	ReasonSoldOut         DisabledReason = "sold_out"
)

// FeeOption is the shape a public registration form consumes to render
// selectable and disabled fee options.
type FeeOption struct {
	Id             string         `json:"id"`
	Name           string         `json:"name"`
	PriceGross     float64        `json:"price_gross"`
	Currency       string         `json:"currency"`
	IsAvailable    bool           `json:"is_available"`
	DisabledReason DisabledReason `json:"disabled_reason,omitempty"`
	SoldCount      int64          `json:"sold_count"`
	Capacity       *int64         `json:"capacity"`
}

// AdminFeeView is a fee enriched with sales data. Admin listings apply
// no date or active-flag filtering, admins see everything.
type AdminFeeView struct {
	model.CustomRegistrationFee
	SoldCount int64 `json:"sold_count"`
	IsSoldOut bool  `json:"is_sold_out"`
}

// IsSoldOut reports whether a fee's capacity has been reached. A nil or
// non-positive capacity means unlimited and is never sold out.
func IsSoldOut(fee model.CustomRegistrationFee, soldCount int64) bool {
	return fee.Capacity != nil && *fee.Capacity > 0 && soldCount >= *fee.Capacity
}

// ListAvailableFees annotates every fee with its current availability.
// Unavailable fees are never omitted from the result: callers render
// them as disabled with the reason, not silently hide them.
//
// When a fee is unavailable for several reasons at once the reported
// reason follows a fixed precedence: inactive, then not yet open, then
// expired, then sold out.
func ListAvailableFees(fees []model.CustomRegistrationFee, soldCounts map[string]int64, now time.Time) []FeeOption {
	today := now.Format(DateLayout)

	ordered := make([]model.CustomRegistrationFee, len(fees))
	copy(ordered, fees)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DisplayOrder < ordered[j].DisplayOrder
	})

	options := make([]FeeOption, 0, len(ordered))
	for _, fee := range ordered {
		sold := soldCounts[fee.Id.Hex()]

		option := FeeOption{
			Id:          fee.Id.Hex(),
			Name:        fee.Name,
			PriceGross:  fee.PriceGross,
			Currency:    fee.Currency,
			IsAvailable: true,
			SoldCount:   sold,
			Capacity:    fee.Capacity,
		}

		switch {
		case !fee.IsActive:
			option.IsAvailable = false
			option.DisabledReason = ReasonInactive
		case today < fee.ValidFrom:
			option.IsAvailable = false
			option.DisabledReason = ReasonNotAvailableYet
		case today > fee.ValidTo:
			option.IsAvailable = false
			option.DisabledReason = ReasonExpired
		case IsSoldOut(fee, sold):
			option.IsAvailable = false
			option.DisabledReason = ReasonSoldOut
		}

		options = append(options, option)
	}

	return options
}

// ListFeesForAdmin enriches every fee with its raw sold count and a
// sold-out flag, without any availability filtering.
func ListFeesForAdmin(fees []model.CustomRegistrationFee, soldCounts map[string]int64) []AdminFeeView {
	views := make([]AdminFeeView, 0, len(fees))
	for _, fee := range fees {
		sold := soldCounts[fee.Id.Hex()]
		views = append(views, AdminFeeView{
			CustomRegistrationFee: fee,
			SoldCount:             sold,
			IsSoldOut:             IsSoldOut(fee, sold),
		})
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].DisplayOrder < views[j].DisplayOrder
	})

	return views
}
