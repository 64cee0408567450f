package main

import (
	"encoding/json"
	"net/http"
	"strconv"
)

func (app *application) createProduct(w http.ResponseWriter, r *http.Request) {
	form, fieldErr := parseProductForm(r)
	if fieldErr != "" {
		app.fieldError(w, fieldErr)
		return
	}

	product, err := app.products.InsertProduct(r.Context(), form)
	if err != nil {
		app.opError(w, http.StatusInternalServerError, "Error while creating product", err)
		return
	}

	app.writeJSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"message":  "Product Created Successfully",
		"products": product,
	})
}

func (app *application) getProducts(w http.ResponseWriter, r *http.Request) {
	products, err := app.products.LatestProducts(r.Context())
	if err != nil {
		app.opError(w, http.StatusInternalServerError, "Error while getting products", err)
		return
	}

	app.writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "All Products Fetched",
		"counTotal": len(products),
		"products":  products,
	})
}

func (app *application) getSingleProduct(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get(":slug")

	product, err := app.products.ProductBySlug(r.Context(), slug)
	if err != nil {
		// message typo is part of the response contract
		app.opError(w, http.StatusInternalServerError, "Error while getitng single product", err)
		return
	}

	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Single Product Fetched",
		"product": product,
	})
}

func (app *application) productPhoto(w http.ResponseWriter, r *http.Request) {
	pid := r.URL.Query().Get(":pid")

	photo, err := app.products.ProductPhoto(r.Context(), pid)
	if err != nil {
		app.opError(w, http.StatusInternalServerError, "Error while getting photo", err)
		return
	}
	if len(photo.Data) == 0 {
		app.clientError(w, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-type", photo.ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(photo.Data)
}

func (app *application) updateProduct(w http.ResponseWriter, r *http.Request) {
	form, fieldErr := parseProductForm(r)
	if fieldErr != "" {
		app.fieldError(w, fieldErr)
		return
	}

	pid := r.URL.Query().Get(":pid")
	product, err := app.products.UpdateProduct(r.Context(), pid, form)
	if err != nil {
		app.opError(w, http.StatusInternalServerError, "Error while updating product", err)
		return
	}

	app.writeJSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"message":  "Product Updated Successfully",
		"products": product,
	})
}

// deleteProduct removes the record without an existence check; deleting an
// unknown id still reports success.
func (app *application) deleteProduct(w http.ResponseWriter, r *http.Request) {
	pid := r.URL.Query().Get(":pid")

	if err := app.products.DeleteProduct(r.Context(), pid); err != nil {
		app.opError(w, http.StatusInternalServerError, "Error while deleting product", err)
		return
	}

	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Product Deleted Successfully",
	})
}

type filterRequest struct {
	Checked []string  `json:"checked"`
	Radio   []float64 `json:"radio"`
}

func (app *application) filterProducts(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.opError(w, http.StatusInternalServerError, "Error while filtering products", err)
		return
	}

	products, err := app.products.FilterProducts(r.Context(), req.Checked, req.Radio)
	if err != nil {
		app.opError(w, http.StatusInternalServerError, "Error while filtering products", err)
		return
	}

	app.writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"products": products,
	})
}

func (app *application) productCount(w http.ResponseWriter, r *http.Request) {
	total, err := app.products.CountProducts(r.Context())
	if err != nil {
		app.opError(w, http.StatusInternalServerError, "Error in product count", err)
		return
	}

	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"total":   total,
	})
}

func (app *application) productList(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get(":page"))
	if err != nil {
		page = 1
	}

	products, err := app.products.ProductPage(r.Context(), page)
	if err != nil {
		app.opError(w, http.StatusInternalServerError, "Error in per page control", err)
		return
	}

	app.writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"products": products,
	})
}

// searchProducts answers with a bare array, unlike the enveloped responses
// elsewhere.
func (app *application) searchProducts(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get(":keyword")

	products, err := app.products.SearchProducts(r.Context(), keyword)
	if err != nil {
		app.opError(w, http.StatusBadRequest, "Error In Search Product API", err)
		return
	}

	app.writeJSON(w, http.StatusOK, products)
}

func (app *application) relatedProducts(w http.ResponseWriter, r *http.Request) {
	pid := r.URL.Query().Get(":pid")
	cid := r.URL.Query().Get(":cid")

	products, err := app.products.RelatedProducts(r.Context(), pid, cid)
	if err != nil {
		// message typo is part of the response contract
		app.opError(w, http.StatusBadRequest, "Error while geting related product", err)
		return
	}

	app.writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"products": products,
	})
}

func (app *application) productsByCategory(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get(":slug")

	category, err := app.categories.CategoryBySlug(r.Context(), slug)
	if err != nil {
		app.opError(w, http.StatusBadRequest, "Error while getting products", err)
		return
	}

	products, err := app.products.ProductsByCategory(r.Context(), category.ID)
	if err != nil {
		app.opError(w, http.StatusBadRequest, "Error while getting products", err)
		return
	}

	app.writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"category": category,
		"products": products,
	})
}
