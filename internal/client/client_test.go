package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopapi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestCategories(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/category/get-category", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"success":  true,
			"category": []*models.Category{{Name: "Books", Slug: "books"}},
		})
	})

	categories, err := c.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Books", categories[0].Name)
}

func TestCategoriesUnsuccessful(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"success": false})
	})

	_, err := c.Categories(context.Background())
	assert.Error(t, err)
}

func TestSearchDecodesBareArray(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/product/search/phone", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []*models.Product{{Name: "phone"}, {Name: "phone case"}})
	})

	products, err := c.Search(context.Background(), "phone")
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductCount(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"success": true, "total": 17})
	})

	total, err := c.ProductCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(17), total)
}

func TestFilterSendsBody(t *testing.T) {
	cid := primitive.NewObjectID().Hex()
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Checked []string  `json:"checked"`
			Radio   []float64 `json:"radio"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, []string{cid}, in.Checked)
		assert.Equal(t, []float64{20, 39}, in.Radio)

		writeJSON(t, w, http.StatusOK, map[string]any{"success": true, "products": []*models.Product{{Name: "match"}}})
	})

	products, err := c.Filter(context.Background(), []string{cid}, []float64{20, 39})
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestRequestFailureStatus(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, map[string]string{"error": "boom"})
	})

	_, err := c.Products(context.Background())
	assert.ErrorIs(t, err, errRequestFailed)
}

func TestTokenHeaderSent(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "my-token", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, []*models.Order{})
	})
	c.Token = "my-token"

	_, err := c.AllOrders(context.Background())
	require.NoError(t, err)
}

func TestCreateProductSendsMultipart(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Phone", r.FormValue("name"))
		assert.Equal(t, "99.5", r.FormValue("price"))
		assert.Equal(t, "3", r.FormValue("quantity"))

		file, header, err := r.FormFile("photo")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "phone.jpg", header.Filename)

		writeJSON(t, w, http.StatusCreated, map[string]any{"success": true, "message": "Product Created Successfully"})
	})

	ok, err := c.CreateProduct(context.Background(), ProductFields{
		Name:        "Phone",
		Description: "a phone",
		Price:       "99.5",
		Quantity:    "3",
		CategoryID:  primitive.NewObjectID().Hex(),
		Shipping:    "true",
		Photo:       []byte("bytes"),
		PhotoName:   "phone.jpg",
	})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCreateProductOmitsEmptyPhoto(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("photo")
		assert.ErrorIs(t, err, http.ErrMissingFile)

		writeJSON(t, w, http.StatusCreated, map[string]any{"success": true})
	})

	ok, err := c.CreateProduct(context.Background(), ProductFields{Name: "Phone"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUpdateOrderStatus(t *testing.T) {
	id := primitive.NewObjectID().Hex()
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/auth/order-status/"+id, r.URL.Path)

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, models.StatusShipped, in["status"])

		writeJSON(t, w, http.StatusOK, map[string]any{"success": true})
	})

	require.NoError(t, c.UpdateOrderStatus(context.Background(), id, models.StatusShipped))
}

func TestPay(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Nonce string           `json:"nonce"`
			Cart  []models.Product `json:"cart"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "nonce-1", in.Nonce)
		assert.Len(t, in.Cart, 2)

		writeJSON(t, w, http.StatusOK, map[string]bool{"ok": true})
	})

	cart := []models.Product{{Name: "a", Price: 5}, {Name: "b", Price: 10}}
	require.NoError(t, c.Pay(context.Background(), "nonce-1", cart))
}

func TestPayRejected(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]bool{"ok": false})
	})

	err := c.Pay(context.Background(), "nonce", nil)
	assert.Error(t, err)
}

func TestLoginStoresToken(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": true,
			"user":    &models.User{Name: "Jan", Email: "jan@example.com"},
			"token":   "jwt-token",
		})
	})

	user, err := c.Login(context.Background(), "jan@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Jan", user.Name)
	assert.Equal(t, "jwt-token", c.Token)
}

func TestLoginInvalid(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"success": false})
	})

	_, err := c.Login(context.Background(), "jan@example.com", "wrong")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	assert.Empty(t, c.Token)
}
