package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InsertOrder persists an order created from a successful gateway
// transaction. Orders always start in the initial status.
func (m *MongoDB) InsertOrder(ctx context.Context, o *Order) (*Order, error) {
	o.ID = primitive.NewObjectID()
	o.Status = StatusNotProcess
	o.CreatedAt = time.Now()

	if _, err := m.Orders.InsertOne(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (m *MongoDB) AllOrders(ctx context.Context) ([]*Order, error) {
	return m.findOrders(ctx, bson.M{})
}

func (m *MongoDB) OrdersByBuyer(ctx context.Context, buyer primitive.ObjectID) ([]*Order, error) {
	return m.findOrders(ctx, bson.M{"buyer": buyer})
}

func (m *MongoDB) UpdateOrderStatus(ctx context.Context, id, status string) (*Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var o Order
	err = m.Orders.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status}},
		opts).Decode(&o)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (m *MongoDB) findOrders(ctx context.Context, filter bson.M) ([]*Order, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := m.Orders.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var orders []*Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
