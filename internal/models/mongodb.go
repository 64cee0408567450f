package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDB groups the collection handles the store methods operate on.
// Concurrency control is left to the driver and the server; every method is
// a single independent operation.
type MongoDB struct {
	Products   *mongo.Collection
	Categories *mongo.Collection
	Orders     *mongo.Collection
	Users      *mongo.Collection
}

func OpenMongoDB(ctx context.Context, uri, database string) (*MongoDB, *mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, nil, err
	}

	db := client.Database(database)
	return &MongoDB{
		Products:   db.Collection("products"),
		Categories: db.Collection("categories"),
		Orders:     db.Collection("orders"),
		Users:      db.Collection("users"),
	}, client, nil
}
