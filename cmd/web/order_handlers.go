package main

import (
	"encoding/json"
	"net/http"

	"shopapi/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buyerOrders and allOrders answer with bare arrays; the admin orders page
// consumes the response body directly.
func (app *application) buyerOrders(w http.ResponseWriter, r *http.Request) {
	buyer, err := primitive.ObjectIDFromHex(app.requestUser(r).Subject)
	if err != nil {
		app.opError(w, http.StatusInternalServerError, "Error while getting orders", err)
		return
	}

	orders, err := app.orders.OrdersByBuyer(r.Context(), buyer)
	if err != nil {
		app.opError(w, http.StatusInternalServerError, "Error while getting orders", err)
		return
	}

	app.writeJSON(w, http.StatusOK, orders)
}

func (app *application) allOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := app.orders.AllOrders(r.Context())
	if err != nil {
		app.opError(w, http.StatusInternalServerError, "Error while getting orders", err)
		return
	}

	app.writeJSON(w, http.StatusOK, orders)
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

func (app *application) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req orderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !models.ValidOrderStatus(req.Status) {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	id := r.URL.Query().Get(":orderId")
	order, err := app.orders.UpdateOrderStatus(r.Context(), id, req.Status)
	if err != nil {
		app.opError(w, http.StatusInternalServerError, "Error while updating order", err)
		return
	}

	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"order":   order,
	})
}
