package database

import (
	"fmt"

	"confreg-webapp/model"
	"confreg-webapp/pricing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func GetRegistrations(conferenceId primitive.ObjectID) ([]model.Registration, error) {
	cur, err := RegistrationsCollection.Find(ctx,
		bson.D{primitive.E{Key: "conference_id", Value: conferenceId}})
	if err != nil {
		return nil, fmt.Errorf("server side problem occured while reading registrations from database: %v", err)
	}
	defer cur.Close(ctx)

	registrations := []model.Registration{}
	if err := cur.All(ctx, &registrations); err != nil {
		return nil, fmt.Errorf("server side problem occured while reading registrations from database: %v", err)
	}

	return registrations, nil
}

func GetRegistration(conferenceId primitive.ObjectID, registrationIdHex string) (model.Registration, error) {
	regId, err := primitive.ObjectIDFromHex(registrationIdHex)
	if err != nil {
		return model.Registration{}, fmt.Errorf("malformed registration id %v: %v", registrationIdHex, err)
	}

	var registration model.Registration
	err = RegistrationsCollection.FindOne(ctx, bson.D{
		primitive.E{Key: "_id", Value: regId},
		primitive.E{Key: "conference_id", Value: conferenceId},
	}).Decode(&registration)
	if err != nil {
		return model.Registration{}, fmt.Errorf("no registration with id %v for conference id %v", registrationIdHex, conferenceId.Hex())
	}

	return registration, nil
}

// SoldCounts returns how many registrations carry each fee-type token
// for a conference, keyed by fee id for custom fee tokens and by the
// raw token otherwise. Counts only confirmed and paid registrations;
// when the status-filtered aggregation fails, falls back to counting
// every registration regardless of status (degraded accuracy beats a
// hard failure here). Recomputed on demand, never cached.
func SoldCounts(conferenceId primitive.ObjectID) (map[string]int64, error) {
	counts, err := aggregateSoldCounts(conferenceId, true)
	if err != nil {
		counts, err = aggregateSoldCounts(conferenceId, false)
	}
	if err != nil {
		return nil, fmt.Errorf("server side problem occured while counting sold fees: %v", err)
	}
	return counts, nil
}

func aggregateSoldCounts(conferenceId primitive.ObjectID, filterByStatus bool) (map[string]int64, error) {
	match := bson.D{primitive.E{Key: "conference_id", Value: conferenceId}}
	if filterByStatus {
		match = append(match, primitive.E{Key: "status", Value: bson.D{
			primitive.E{Key: "$in", Value: bson.A{
				model.RegistrationStatusConfirmed,
				model.RegistrationStatusPaid,
			}},
		}})
	}

	pipeline := mongoPipeline(match)
	cur, err := RegistrationsCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	type group struct {
		Id    string `bson:"_id"`
		Count int64  `bson:"count"`
	}

	counts := map[string]int64{}
	for cur.Next(ctx) {
		var g group
		if err := cur.Decode(&g); err != nil {
			return nil, err
		}
		selection := pricing.ParseFeeType(g.Id)
		if selection.Kind == pricing.SelectionCustomFee {
			counts[selection.FeeId] += g.Count
		} else if g.Id != "" {
			counts[g.Id] += g.Count
		}
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func mongoPipeline(match bson.D) []bson.D {
	return []bson.D{
		{primitive.E{Key: "$match", Value: match}},
		{primitive.E{Key: "$group", Value: bson.D{
			primitive.E{Key: "_id", Value: "$registration_fee_type"},
			primitive.E{Key: "count", Value: bson.D{primitive.E{Key: "$sum", Value: 1}}},
		}}},
	}
}
