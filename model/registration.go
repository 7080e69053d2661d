package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RegistrationStatusPending   = "pending"
	RegistrationStatusConfirmed = "confirmed"
	RegistrationStatusPaid      = "paid"
	RegistrationStatusCancelled = "cancelled"
)

// Registration is one attendee registration for a conference.
// FeeType is the stored selection token: either a built-in tier name
// (early_bird, regular, late, student, accompanying_person) or a custom
// fee reference in the form custom_{feeId}.
type Registration struct {
	Id           primitive.ObjectID `json:"_id" bson:"_id"`
	ConferenceId primitive.ObjectID `json:"conference_id" bson:"conference_id"`
	AttendeeName string             `json:"attendee_name" bson:"attendee_name"`
	Email        string             `json:"email" bson:"email"`
	FeeType      string             `json:"registration_fee_type" bson:"registration_fee_type"`
	Status       string             `json:"status" bson:"status"`
	OrderId      string             `json:"order_id,omitempty" bson:"order_id,omitempty"` // payment gateway order reference
	RegisteredAt string             `json:"registered_at" bson:"registered_at"`
	UpdatedAt    string             `json:"updated_at" bson:"updated_at"`
}
