package main

import (
	"encoding/json"
	"net/http"

	"shopapi/internal/models"
)

const cartSessionKey = "cart"

// Session cart: a server-side companion to the client's cart context so a
// visitor's cart survives page reloads. Stored as JSON in the scs session.

func (app *application) sessionCart(r *http.Request) []models.CartItem {
	raw := app.session.GetBytes(r.Context(), cartSessionKey)
	if len(raw) == 0 {
		return nil
	}
	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

func (app *application) putSessionCart(r *http.Request, items []models.CartItem) {
	raw, err := json.Marshal(items)
	if err != nil {
		app.logger.Errorw("cart marshal failed", "err", err)
		return
	}
	app.session.Put(r.Context(), cartSessionKey, raw)
}

func (app *application) cartAdd(w http.ResponseWriter, r *http.Request) {
	pid := r.URL.Query().Get(":pid")

	product, err := app.products.ProductByID(r.Context(), pid)
	if err != nil {
		app.opError(w, http.StatusBadRequest, "Error while adding to cart", err)
		return
	}

	items := append(app.sessionCart(r), models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
	})
	app.putSessionCart(r, items)

	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"cart":    items,
	})
}

func (app *application) cartShow(w http.ResponseWriter, r *http.Request) {
	items := app.sessionCart(r)

	var total float64
	for _, item := range items {
		total += item.Price
	}

	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"cart":    items,
		"total":   total,
	})
}

func (app *application) cartClear(w http.ResponseWriter, r *http.Request) {
	app.session.Remove(r.Context(), cartSessionKey)
	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"cart":    []models.CartItem{},
	})
}
