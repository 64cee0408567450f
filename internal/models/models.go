package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Photo is stored inline on the product document. List and detail queries
// project it out; only the photo endpoint reads it.
type Photo struct {
	Data        []byte `bson:"data,omitempty" json:"-"`
	ContentType string `bson:"content_type,omitempty" json:"-"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	CategoryID  primitive.ObjectID `bson:"category_id,omitempty" json:"category_id"`
	Category    *Category          `bson:"-" json:"category,omitempty"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Shipping    bool               `bson:"shipping" json:"shipping"`
	Photo       Photo              `bson:"photo,omitempty" json:"-"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name string             `bson:"name" json:"name"`
	Slug string             `bson:"slug" json:"slug"`
}

// PaymentResult is the snapshot of the gateway outcome stored on the order.
type PaymentResult struct {
	Success       bool    `bson:"success" json:"success"`
	TransactionID string  `bson:"transaction_id,omitempty" json:"transaction_id,omitempty"`
	Amount        float64 `bson:"amount" json:"amount"`
}

type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Products  []Product          `bson:"products" json:"products"`
	Payment   PaymentResult      `bson:"payment" json:"payment"`
	Buyer     primitive.ObjectID `bson:"buyer" json:"buyer"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Order statuses, in lifecycle order. New orders start as StatusNotProcess
// and only move via the admin status update.
const (
	StatusNotProcess = "Not Process"
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

var OrderStatuses = []string{
	StatusNotProcess,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Phone        string             `bson:"phone" json:"phone"`
	Address      string             `bson:"address" json:"address"`
	Role         string             `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// CartItem is the per-session cart entry kept server-side alongside the
// client's own cart context.
type CartItem struct {
	ProductID primitive.ObjectID `json:"product_id"`
	Name      string             `json:"name"`
	Price     float64            `json:"price"`
}
