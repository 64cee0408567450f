package main

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
)

type categoryRequest struct {
	Name string `json:"name"`
}

func (app *application) createCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		app.writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Name is required"})
		return
	}

	if existing, err := app.categories.CategoryByName(r.Context(), req.Name); err == nil && existing != nil {
		app.writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Category Already Exisits",
		})
		return
	} else if err != nil && err != mongo.ErrNoDocuments {
		app.opError(w, http.StatusInternalServerError, "Error in Category", err)
		return
	}

	category, err := app.categories.InsertCategory(r.Context(), req.Name)
	if err != nil {
		app.opError(w, http.StatusInternalServerError, "Error in Category", err)
		return
	}

	app.writeJSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"message":  "new category created",
		"category": category,
	})
}

func (app *application) updateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		app.writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Name is required"})
		return
	}

	id := r.URL.Query().Get(":id")
	category, err := app.categories.UpdateCategory(r.Context(), id, req.Name)
	if err != nil {
		app.opError(w, http.StatusInternalServerError, "Error while updating category", err)
		return
	}

	app.writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  "Category Updated Successfully",
		"category": category,
	})
}

// getCategories keys the list as "category"; the admin form reads that
// field.
func (app *application) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := app.categories.AllCategories(r.Context())
	if err != nil {
		app.opError(w, http.StatusInternalServerError, "Error while getting all categories", err)
		return
	}

	app.writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  "All Categories List",
		"category": categories,
	})
}

func (app *application) singleCategory(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get(":slug")

	category, err := app.categories.CategoryBySlug(r.Context(), slug)
	if err != nil {
		app.opError(w, http.StatusInternalServerError, "Error while getting single category", err)
		return
	}

	app.writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  "Get Single Category Successfully",
		"category": category,
	})
}

func (app *application) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")

	if err := app.categories.DeleteCategory(r.Context(), id); err != nil {
		app.opError(w, http.StatusInternalServerError, "Error while deleting category", err)
		return
	}

	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Category Deleted Successfully",
	})
}
