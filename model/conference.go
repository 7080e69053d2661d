package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// TierPrice is the price of one built-in registration tier.
// Deadline is only used by the early bird tier: registrations strictly
// before it get the early bird price.
type TierPrice struct {
	Amount   float64 `json:"amount" bson:"amount"`
	Deadline string  `json:"deadline,omitempty" bson:"deadline,omitempty"` // YYYY-MM-DD
}

type ConferencePricing struct {
	Currency                string    `json:"currency" bson:"currency"`
	EarlyBird               TierPrice `json:"early_bird" bson:"early_bird"`
	Regular                 TierPrice `json:"regular" bson:"regular"`
	Late                    TierPrice `json:"late" bson:"late"`
	StudentDiscount         float64   `json:"student_discount" bson:"student_discount"`
	AccompanyingPersonPrice float64   `json:"accompanying_person_price" bson:"accompanying_person_price"`
}

type Conference struct {
	Id             primitive.ObjectID      `json:"_id" bson:"_id"`
	ConferenceName string                  `json:"conference_name" bson:"conference_name"`
	StartDate      string                  `json:"start_date" bson:"start_date"` // YYYY-MM-DD
	IsPublished    bool                    `json:"is_published" bson:"is_published"`
	Pricing        ConferencePricing       `json:"pricing" bson:"pricing"`
	VATPercentage  *float64                `json:"vat_percentage" bson:"vat_percentage"` // nil means no conference-level VAT default
	Fees           []CustomRegistrationFee `json:"fees" bson:"fees"`
	AdminLogins    []string                `json:"admin_logins" bson:"admin_logins"`
}
