package database

import (
	"context"
	"fmt"
	"log"

	"confreg-webapp/config"
	"confreg-webapp/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ctx = context.TODO()
var UsersCollection *mongo.Collection
var ConferencesCollection *mongo.Collection
var RegistrationsCollection *mongo.Collection

func DBInit(collectionName string) (*mongo.Collection, error) {
	connString, err := config.GetSecret("MONGODB_CONNSTRING")
	if err != nil {
		log.Fatal("cannot find connection string for DB in the environment")
	}

	clientOptions := options.Client().ApplyURI(connString)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %v", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("db is not available: %v", err)
	}

	return client.Database("confreg-service").Collection(collectionName), nil
}

// GetConferences fetches conferences matching an optional equality
// filter. Unpublished conferences are only returned when includeHidden
// is set (admin callers).
func GetConferences(includeHidden bool, filterKey string, filterValue ...string) ([]model.Conference, error) {
	filter := bson.D{}
	if filterKey == "_id" && len(filterValue) > 0 {
		objId, err := primitive.ObjectIDFromHex(filterValue[0])
		if err != nil {
			return nil, fmt.Errorf("malformed conference id %v: %v", filterValue[0], err)
		}
		filter = append(filter, primitive.E{Key: "_id", Value: objId})
	} else if filterKey != "" && len(filterValue) > 0 {
		filter = append(filter, primitive.E{Key: filterKey, Value: filterValue[0]})
	}
	if !includeHidden {
		filter = append(filter, primitive.E{Key: "is_published", Value: true})
	}

	cur, err := ConferencesCollection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("server side problem occured while reading conferences from database: %v", err)
	}
	defer cur.Close(ctx)

	conferences := []model.Conference{}
	if err := cur.All(ctx, &conferences); err != nil {
		return nil, fmt.Errorf("server side problem occured while reading conferences from database: %v", err)
	}

	return conferences, nil
}

func IfConferenceNameAlreadyExist(name string) (bool, error) {
	count, err := ConferencesCollection.CountDocuments(ctx,
		bson.D{primitive.E{Key: "conference_name", Value: name}})
	if err != nil {
		return false, fmt.Errorf("server side problem occured while checking conference name: %v", err)
	}
	return count > 0, nil
}

func WriteToCollection(item interface{}, collection *mongo.Collection) error {
	_, err := collection.InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("db write failed: %v", err)
	}
	return nil
}

func UpdateCollectionItem(id primitive.ObjectID, item interface{}, collection *mongo.Collection) error {
	_, err := collection.ReplaceOne(ctx, bson.D{primitive.E{Key: "_id", Value: id}}, item)
	if err != nil {
		return fmt.Errorf("db update failed: %v", err)
	}
	return nil
}

func DeleteFromCollection(idHex string, collection *mongo.Collection) error {
	objId, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return fmt.Errorf("malformed id %v: %v", idHex, err)
	}
	res, err := collection.DeleteOne(ctx, bson.D{primitive.E{Key: "_id", Value: objId}})
	if err != nil {
		return fmt.Errorf("db delete failed: %v", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("no document with id %v", idHex)
	}
	return nil
}

func GetUserData(userLogin string) (model.UserData, error) {
	var user model.UserData
	cur, err := UsersCollection.Find(ctx, bson.D{primitive.E{Key: "login", Value: userLogin}})
	if err != nil {
		return model.UserData{}, fmt.Errorf("server side problem occured while reading user data from database: %v", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		err := cur.Decode(&user)
		if err != nil {
			return model.UserData{}, fmt.Errorf("server side problem occured while reading user data from database: %v", err)
		}
	}

	if err := cur.Err(); err != nil {
		return model.UserData{}, fmt.Errorf("server side problem occured while reading user data from database: %v", err)
	}

	return user, nil
}
