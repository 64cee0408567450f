package main

import (
	"io"
	"net/http"
	"strconv"

	"shopapi/internal/models"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Photos are stored inline on the document; anything larger is rejected.
const maxPhotoBytes = 1_000_000

const oversizePhotoMessage = "photo is Required and should be less then 1mb"

var validate = validator.New()

// parseProductForm turns the multipart request into a typed product exactly
// once, at the API boundary. Required fields are checked independently and
// in a fixed order; the first failure wins and its field-specific message is
// returned. A parse failure on a numeric field counts as that field missing.
func parseProductForm(r *http.Request) (*models.Product, string) {
	if err := r.ParseMultipartForm(2 * maxPhotoBytes); err != nil {
		return nil, "Name is Required"
	}

	name := r.FormValue("name")
	description := r.FormValue("description")
	rawPrice := r.FormValue("price")
	rawCategory := r.FormValue("category")
	rawQuantity := r.FormValue("quantity")
	rawShipping := r.FormValue("shipping")

	if validate.Var(name, "required") != nil {
		return nil, "Name is Required"
	}
	if validate.Var(description, "required") != nil {
		return nil, "Description is Required"
	}
	price, err := strconv.ParseFloat(rawPrice, 64)
	if validate.Var(rawPrice, "required") != nil || err != nil {
		return nil, "Price is Required"
	}
	categoryID, err := primitive.ObjectIDFromHex(rawCategory)
	if validate.Var(rawCategory, "required") != nil || err != nil {
		return nil, "Category is Required"
	}
	quantity, err := strconv.Atoi(rawQuantity)
	if validate.Var(rawQuantity, "required") != nil || err != nil {
		return nil, "Quantity is Required"
	}
	shipping, _ := strconv.ParseBool(rawShipping)

	p := &models.Product{
		Name:        name,
		Description: description,
		Price:       price,
		CategoryID:  categoryID,
		Quantity:    quantity,
		Shipping:    shipping,
	}

	file, header, err := r.FormFile("photo")
	if err == http.ErrMissingFile {
		return p, ""
	}
	if err != nil {
		return nil, oversizePhotoMessage
	}
	defer file.Close()

	if header.Size > maxPhotoBytes {
		return nil, oversizePhotoMessage
	}
	data, err := io.ReadAll(file)
	if err != nil || len(data) > maxPhotoBytes {
		return nil, oversizePhotoMessage
	}

	p.Photo = models.Photo{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
	}
	return p, ""
}
