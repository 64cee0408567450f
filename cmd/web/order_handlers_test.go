package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"shopapi/internal/models"
	"shopapi/internal/models/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuyerOrders(t *testing.T) {
	app, _ := newTestApplication(t)
	buyer := primitive.NewObjectID()
	app.orders = &mocks.OrderStore{
		OrdersByBuyerFunc: func(ctx context.Context, got primitive.ObjectID) ([]*models.Order, error) {
			assert.Equal(t, buyer, got)
			return []*models.Order{{ID: primitive.NewObjectID(), Buyer: buyer, Status: models.StatusNotProcess}}, nil
		},
	}
	token := userToken(t, app, buyer)

	rr := doRequest(t, app, http.MethodGet, "/api/v1/auth/orders", token, nil, "")

	assert.Equal(t, http.StatusOK, rr.Code)

	var orders []*models.Order
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, buyer, orders[0].Buyer)
}

func TestAllOrders(t *testing.T) {
	app, _ := newTestApplication(t)
	app.orders = &mocks.OrderStore{
		AllOrdersFunc: func(ctx context.Context) ([]*models.Order, error) {
			return []*models.Order{
				{ID: primitive.NewObjectID(), Status: models.StatusNotProcess},
				{ID: primitive.NewObjectID(), Status: models.StatusShipped},
			}, nil
		},
	}
	token := adminToken(t, app)

	rr := doRequest(t, app, http.MethodGet, "/api/v1/auth/all-orders", token, nil, "")

	assert.Equal(t, http.StatusOK, rr.Code)

	var orders []*models.Order
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &orders))
	assert.Len(t, orders, 2)
}

func TestAllOrdersRequiresAdmin(t *testing.T) {
	app, _ := newTestApplication(t)
	token := userToken(t, app, primitive.NewObjectID())

	rr := doRequest(t, app, http.MethodGet, "/api/v1/auth/all-orders", token, nil, "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	app, _ := newTestApplication(t)
	id := primitive.NewObjectID()
	app.orders = &mocks.OrderStore{
		UpdateOrderStatusFunc: func(ctx context.Context, gotID, status string) (*models.Order, error) {
			assert.Equal(t, id.Hex(), gotID)
			assert.Equal(t, models.StatusShipped, status)
			return &models.Order{ID: id, Status: status}, nil
		},
	}
	token := adminToken(t, app)

	rr := doRequest(t, app, http.MethodPut, "/api/v1/auth/order-status/"+id.Hex(), token, strings.NewReader(`{"status":"Shipped"}`), "application/json")

	assert.Equal(t, http.StatusOK, rr.Code)
	got := decodeBody(t, rr.Body.Bytes())
	assert.Equal(t, true, got["success"])
}

func TestUpdateOrderStatusUnknownStatus(t *testing.T) {
	app, _ := newTestApplication(t)
	token := adminToken(t, app)

	rr := doRequest(t, app, http.MethodPut, "/api/v1/auth/order-status/"+primitive.NewObjectID().Hex(), token, strings.NewReader(`{"status":"Lost"}`), "application/json")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateOrderStatusStoreError(t *testing.T) {
	app, _ := newTestApplication(t)
	app.orders = &mocks.OrderStore{
		UpdateOrderStatusFunc: func(ctx context.Context, id, status string) (*models.Order, error) {
			return nil, errors.New("update failed")
		},
	}
	token := adminToken(t, app)

	rr := doRequest(t, app, http.MethodPut, "/api/v1/auth/order-status/"+primitive.NewObjectID().Hex(), token, strings.NewReader(`{"status":"Processing"}`), "application/json")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	got := decodeBody(t, rr.Body.Bytes())
	assert.Equal(t, "Error while updating order", got["message"])
}
