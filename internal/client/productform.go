package client

import (
	"context"
	"strconv"

	"shopapi/internal/models"
)

// Fixed user-facing strings for the admin product pages.
const (
	MsgProductCreated = "Product created successfully"
	MsgProductUpdated = "Product updated successfully"
	MsgProductDeleted = "Product deleted successfully"

	MsgFetchProductError  = "Something went wrong in getting product"
	MsgFetchCategoryError = "Something went wrong in getting category"
	MsgCreateProductError = "Something went wrong in creating product"
	MsgUpdateProductError = "Something went wrong in updating product"
	MsgDeleteProductError = "Something went wrong in deleting product"

	ConfirmDeleteProduct = "Delete Product? Enter any key to confirm. This action is irreversible."

	AdminProductsPath = "/dashboard/admin/products"
)

type FormState int

const (
	StateIdle FormState = iota
	StateEditing
	StateSubmitting
)

// Notifier surfaces toast notifications.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Navigator moves the user to another page after a successful action.
type Navigator interface {
	NavigateTo(path string)
}

// Prompter gates destructive actions behind a confirmation.
type Prompter interface {
	Confirm(msg string) bool
}

// ProductForm drives the admin create/update product workflow:
// idle → editing (populated or blank) → submitting → navigate away on
// success, or toast and stay editing on failure. Field validation is
// deferred to the server's required-field checks.
type ProductForm struct {
	api    *Client
	notify Notifier
	nav    Navigator
	prompt Prompter

	state FormState
	id    string

	Name        string
	Description string
	Price       string
	Quantity    string
	CategoryID  string
	Shipping    string
	Photo       []byte
	PhotoName   string

	categories []*models.Category
}

func NewProductForm(api *Client, notify Notifier, nav Navigator, prompt Prompter) *ProductForm {
	return &ProductForm{
		api:    api,
		notify: notify,
		nav:    nav,
		prompt: prompt,
		state:  StateIdle,
	}
}

func (f *ProductForm) State() FormState { return f.state }

func (f *ProductForm) Categories() []*models.Category { return f.categories }

// Load fetches the category list and, for an update form, the existing
// record. Either fetch failing surfaces a toast and leaves the form in a
// degraded but usable state: blank fields, empty category list.
func (f *ProductForm) Load(ctx context.Context, slug string) {
	f.state = StateEditing

	if slug != "" {
		product, err := f.api.Product(ctx, slug)
		if err != nil {
			f.notify.Error(MsgFetchProductError)
		} else {
			f.id = product.ID.Hex()
			f.Name = product.Name
			f.Description = product.Description
			f.Price = strconv.FormatFloat(product.Price, 'f', -1, 64)
			f.Quantity = strconv.Itoa(product.Quantity)
			f.CategoryID = product.CategoryID.Hex()
			f.Shipping = strconv.FormatBool(product.Shipping)
		}
	}

	categories, err := f.api.Categories(ctx)
	if err != nil {
		f.notify.Error(MsgFetchCategoryError)
		f.categories = nil
		return
	}
	f.categories = categories
}

func (f *ProductForm) fields() ProductFields {
	return ProductFields{
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Quantity:    f.Quantity,
		CategoryID:  f.CategoryID,
		Shipping:    f.Shipping,
		Photo:       f.Photo,
		PhotoName:   f.PhotoName,
	}
}

// Submit sends the form. There is no guard against a second submit racing
// the first; the server treats each as an independent request.
func (f *ProductForm) Submit(ctx context.Context) {
	f.state = StateSubmitting

	var (
		ok  bool
		err error
	)
	updating := f.id != ""
	if updating {
		ok, err = f.api.UpdateProduct(ctx, f.id, f.fields())
	} else {
		ok, err = f.api.CreateProduct(ctx, f.fields())
	}

	if err != nil || !ok {
		if updating {
			f.notify.Error(MsgUpdateProductError)
		} else {
			f.notify.Error(MsgCreateProductError)
		}
		f.state = StateEditing
		return
	}

	if updating {
		f.notify.Success(MsgProductUpdated)
	} else {
		f.notify.Success(MsgProductCreated)
	}
	f.state = StateIdle
	f.nav.NavigateTo(AdminProductsPath)
}

// Delete asks for confirmation first; a cancelled prompt aborts with no
// network call.
func (f *ProductForm) Delete(ctx context.Context) {
	if !f.prompt.Confirm(ConfirmDeleteProduct) {
		return
	}

	if err := f.api.DeleteProduct(ctx, f.id); err != nil {
		f.notify.Error(MsgDeleteProductError)
		return
	}

	f.notify.Success(MsgProductDeleted)
	f.nav.NavigateTo(AdminProductsPath)
}
