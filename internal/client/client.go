// Package client is the Go surface of the storefront and admin console:
// thin fetch wrappers over the REST API, ambient state contexts, and the
// admin form workflows built on top of them.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"shopapi/internal/models"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client

	// Token is sent on every request once the user is signed in.
	Token string
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{},
	}
}

var errRequestFailed = errors.New("request failed")

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: %s %s: %s", errRequestFailed, method, path, resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.do(ctx, method, path, bytes.NewReader(raw), "application/json", out)
}

// Categories is the shared category list fetch used by several pages.
func (c *Client) Categories(ctx context.Context) ([]*models.Category, error) {
	var resp struct {
		Success  bool               `json:"success"`
		Category []*models.Category `json:"category"`
	}
	if err := c.getJSON(ctx, "/api/v1/category/get-category", &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, errors.New("error in getting category")
	}
	return resp.Category, nil
}

func (c *Client) Products(ctx context.Context) ([]*models.Product, error) {
	var resp struct {
		Products []*models.Product `json:"products"`
	}
	err := c.getJSON(ctx, "/api/v1/product/get-product", &resp)
	return resp.Products, err
}

func (c *Client) Product(ctx context.Context, slug string) (*models.Product, error) {
	var resp struct {
		Product *models.Product `json:"product"`
	}
	if err := c.getJSON(ctx, "/api/v1/product/get-product/"+slug, &resp); err != nil {
		return nil, err
	}
	return resp.Product, nil
}

func (c *Client) ProductList(ctx context.Context, page int) ([]*models.Product, error) {
	var resp struct {
		Products []*models.Product `json:"products"`
	}
	err := c.getJSON(ctx, fmt.Sprintf("/api/v1/product/product-list/%d", page), &resp)
	return resp.Products, err
}

func (c *Client) ProductCount(ctx context.Context) (int64, error) {
	var resp struct {
		Total int64 `json:"total"`
	}
	err := c.getJSON(ctx, "/api/v1/product/product-count", &resp)
	return resp.Total, err
}

func (c *Client) Search(ctx context.Context, keyword string) ([]*models.Product, error) {
	var products []*models.Product
	err := c.getJSON(ctx, "/api/v1/product/search/"+keyword, &products)
	return products, err
}

func (c *Client) Filter(ctx context.Context, checked []string, radio []float64) ([]*models.Product, error) {
	var resp struct {
		Products []*models.Product `json:"products"`
	}
	in := map[string]any{"checked": checked, "radio": radio}
	err := c.sendJSON(ctx, http.MethodPost, "/api/v1/product/product-filters", in, &resp)
	return resp.Products, err
}

func (c *Client) Related(ctx context.Context, productID, categoryID string) ([]*models.Product, error) {
	var resp struct {
		Products []*models.Product `json:"products"`
	}
	err := c.getJSON(ctx, "/api/v1/product/related-product/"+productID+"/"+categoryID, &resp)
	return resp.Products, err
}

func (c *Client) ProductsByCategory(ctx context.Context, slug string) (*models.Category, []*models.Product, error) {
	var resp struct {
		Category *models.Category  `json:"category"`
		Products []*models.Product `json:"products"`
	}
	err := c.getJSON(ctx, "/api/v1/product/product-category/"+slug, &resp)
	return resp.Category, resp.Products, err
}

// ProductFields carries the string-typed form fields the way the form
// collects them; the server owns the parse into domain types.
type ProductFields struct {
	Name        string
	Description string
	Price       string
	Quantity    string
	CategoryID  string
	Shipping    string

	Photo            []byte
	PhotoName        string
	PhotoContentType string
}

type mutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) CreateProduct(ctx context.Context, f ProductFields) (bool, error) {
	return c.sendProductForm(ctx, http.MethodPost, "/api/v1/product/create-product", f)
}

func (c *Client) UpdateProduct(ctx context.Context, id string, f ProductFields) (bool, error) {
	return c.sendProductForm(ctx, http.MethodPut, "/api/v1/product/update-product/"+id, f)
}

func (c *Client) sendProductForm(ctx context.Context, method, path string, f ProductFields) (bool, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":        f.Name,
		"description": f.Description,
		"price":       f.Price,
		"quantity":    f.Quantity,
		"category":    f.CategoryID,
		"shipping":    f.Shipping,
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return false, err
		}
	}
	if len(f.Photo) > 0 {
		part, err := mw.CreateFormFile("photo", f.PhotoName)
		if err != nil {
			return false, err
		}
		if _, err := part.Write(f.Photo); err != nil {
			return false, err
		}
	}
	if err := mw.Close(); err != nil {
		return false, err
	}

	var resp mutationResponse
	err := c.do(ctx, method, path, &buf, mw.FormDataContentType(), &resp)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/product/delete-product/"+id, nil, "", nil)
}

func (c *Client) AllOrders(ctx context.Context) ([]*models.Order, error) {
	var orders []*models.Order
	err := c.getJSON(ctx, "/api/v1/auth/all-orders", &orders)
	return orders, err
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	in := map[string]string{"status": status}
	return c.sendJSON(ctx, http.MethodPut, "/api/v1/auth/order-status/"+orderID, in, nil)
}

func (c *Client) GatewayToken(ctx context.Context) (string, error) {
	var resp struct {
		ClientToken string `json:"clientToken"`
	}
	err := c.getJSON(ctx, "/api/v1/product/braintree/token", &resp)
	return resp.ClientToken, err
}

func (c *Client) Pay(ctx context.Context, nonce string, cart []models.Product) error {
	in := map[string]any{"nonce": nonce, "cart": cart}
	var resp struct {
		OK bool `json:"ok"`
	}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/v1/product/braintree/payment", in, &resp); err != nil {
		return err
	}
	if !resp.OK {
		return errors.New("payment was not accepted")
	}
	return nil
}

// Login authenticates and stores the bearer token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	var resp struct {
		Success bool         `json:"success"`
		User    *models.User `json:"user"`
		Token   string       `json:"token"`
	}
	in := map[string]string{"email": email, "password": password}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/v1/auth/login", in, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, models.ErrInvalidCredentials
	}
	c.Token = resp.Token
	return resp.User, nil
}
