package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// CustomRegistrationFee is an admin-defined registration option with its
// own validity window and capacity, independent of the built-in tiers.
// Net and gross prices are recomputed server side whenever the price or
// a VAT-relevant field changes, they are never accepted from the client
// as a pair.
type CustomRegistrationFee struct {
	Id            primitive.ObjectID `json:"_id" bson:"_id"`
	ConferenceId  primitive.ObjectID `json:"conference_id" bson:"conference_id"`
	Name          string             `json:"name" bson:"name" validate:"required,min=2"`
	ValidFrom     string             `json:"valid_from" bson:"valid_from" validate:"required"` // YYYY-MM-DD, inclusive
	ValidTo       string             `json:"valid_to" bson:"valid_to" validate:"required"`     // YYYY-MM-DD, inclusive
	IsActive      bool               `json:"is_active" bson:"is_active"`
	PriceNet      float64            `json:"price_net" bson:"price_net" validate:"gte=0"`
	PriceGross    float64            `json:"price_gross" bson:"price_gross" validate:"gte=0"`
	Capacity      *int64             `json:"capacity" bson:"capacity" validate:"omitempty,gte=0"` // nil or 0 means unlimited
	Currency      string             `json:"currency" bson:"currency" validate:"required,len=3"`
	DisplayOrder  int                `json:"display_order" bson:"display_order"`
	VATPercentage *float64           `json:"vat_percentage,omitempty" bson:"vat_percentage,omitempty" validate:"omitempty,gte=0"`
}
