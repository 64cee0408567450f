package main

import (
	"net/http"

	"github.com/bmizerany/pat"
)

func (app *application) routes() http.Handler {
	mux := pat.New()

	// Catalog
	mux.Post("/api/v1/product/create-product", app.requireSignIn(app.requireAdmin(http.HandlerFunc(app.createProduct))))
	mux.Get("/api/v1/product/get-product/:slug", http.HandlerFunc(app.getSingleProduct))
	mux.Get("/api/v1/product/get-product", http.HandlerFunc(app.getProducts))
	mux.Get("/api/v1/product/product-photo/:pid", http.HandlerFunc(app.productPhoto))
	mux.Put("/api/v1/product/update-product/:pid", app.requireSignIn(app.requireAdmin(http.HandlerFunc(app.updateProduct))))
	mux.Del("/api/v1/product/delete-product/:pid", app.requireSignIn(app.requireAdmin(http.HandlerFunc(app.deleteProduct))))
	mux.Post("/api/v1/product/product-filters", http.HandlerFunc(app.filterProducts))
	mux.Get("/api/v1/product/product-count", http.HandlerFunc(app.productCount))
	mux.Get("/api/v1/product/product-list/:page", http.HandlerFunc(app.productList))
	mux.Get("/api/v1/product/search/:keyword", http.HandlerFunc(app.searchProducts))
	mux.Get("/api/v1/product/related-product/:pid/:cid", http.HandlerFunc(app.relatedProducts))
	mux.Get("/api/v1/product/product-category/:slug", http.HandlerFunc(app.productsByCategory))

	// Payment relay
	mux.Get("/api/v1/product/braintree/token", http.HandlerFunc(app.gatewayToken))
	mux.Post("/api/v1/product/braintree/payment", app.requireSignIn(http.HandlerFunc(app.gatewayPayment)))

	// Categories
	mux.Post("/api/v1/category/create-category", app.requireSignIn(app.requireAdmin(http.HandlerFunc(app.createCategory))))
	mux.Put("/api/v1/category/update-category/:id", app.requireSignIn(app.requireAdmin(http.HandlerFunc(app.updateCategory))))
	mux.Get("/api/v1/category/get-category", http.HandlerFunc(app.getCategories))
	mux.Get("/api/v1/category/single-category/:slug", http.HandlerFunc(app.singleCategory))
	mux.Del("/api/v1/category/delete-category/:id", app.requireSignIn(app.requireAdmin(http.HandlerFunc(app.deleteCategory))))

	// Auth and orders
	mux.Post("/api/v1/auth/register", http.HandlerFunc(app.register))
	mux.Post("/api/v1/auth/login", http.HandlerFunc(app.login))
	mux.Get("/api/v1/auth/user-auth", app.requireSignIn(http.HandlerFunc(app.authProbe)))
	mux.Get("/api/v1/auth/admin-auth", app.requireSignIn(app.requireAdmin(http.HandlerFunc(app.authProbe))))
	mux.Get("/api/v1/auth/orders", app.requireSignIn(http.HandlerFunc(app.buyerOrders)))
	mux.Get("/api/v1/auth/all-orders", app.requireSignIn(app.requireAdmin(http.HandlerFunc(app.allOrders))))
	mux.Put("/api/v1/auth/order-status/:orderId", app.requireSignIn(app.requireAdmin(http.HandlerFunc(app.updateOrderStatus))))

	// Session cart
	mux.Post("/api/v1/cart/add/:pid", http.HandlerFunc(app.cartAdd))
	mux.Get("/api/v1/cart", http.HandlerFunc(app.cartShow))
	mux.Del("/api/v1/cart", http.HandlerFunc(app.cartClear))

	return app.logRequest(app.recoverPanic(app.session.LoadAndSave(mux)))
}
