package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"shopapi/internal/gateway"
	"shopapi/internal/models"

	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type productStore interface {
	InsertProduct(ctx context.Context, p *models.Product) (*models.Product, error)
	LatestProducts(ctx context.Context) ([]*models.Product, error)
	ProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	ProductByID(ctx context.Context, id string) (*models.Product, error)
	ProductPhoto(ctx context.Context, id string) (*models.Photo, error)
	UpdateProduct(ctx context.Context, id string, p *models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	FilterProducts(ctx context.Context, checked []string, radio []float64) ([]*models.Product, error)
	CountProducts(ctx context.Context) (int64, error)
	ProductPage(ctx context.Context, page int) ([]*models.Product, error)
	SearchProducts(ctx context.Context, keyword string) ([]*models.Product, error)
	RelatedProducts(ctx context.Context, productID, categoryID string) ([]*models.Product, error)
	ProductsByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]*models.Product, error)
	DecrementStock(ctx context.Context, productID primitive.ObjectID, qty int) error
}

type categoryStore interface {
	InsertCategory(ctx context.Context, name string) (*models.Category, error)
	CategoryByName(ctx context.Context, name string) (*models.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	UpdateCategory(ctx context.Context, id, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	AllCategories(ctx context.Context) ([]*models.Category, error)
}

type orderStore interface {
	InsertOrder(ctx context.Context, o *models.Order) (*models.Order, error)
	AllOrders(ctx context.Context) ([]*models.Order, error)
	OrdersByBuyer(ctx context.Context, buyer primitive.ObjectID) ([]*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) (*models.Order, error)
}

type userStore interface {
	InsertUser(ctx context.Context, name, email, password, phone, address string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

type application struct {
	logger     *zap.SugaredLogger
	session    *scs.SessionManager
	products   productStore
	categories categoryStore
	orders     orderStore
	users      userStore
	gateway    *gateway.Adapter
	jwtSecret  []byte
	orderQueue chan *models.Order
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	addr := flag.String("addr", ":4000", "HTTP network address")
	flag.Parse()

	uri := os.Getenv("MONGO_URL")
	if uri == "" {
		log.Fatal("MONGO_URL environment variable not found")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET environment variable not found")
	}

	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	db, client, err := models.OpenMongoDB(context.Background(), uri, "shopapi")
	if err != nil {
		logger.Fatalw("mongo connect failed", "err", err)
	}
	defer client.Disconnect(context.Background())
	logger.Info("connected to database")

	session := scs.New()
	session.Lifetime = 12 * time.Hour

	app := &application{
		logger:     logger,
		session:    session,
		products:   db,
		categories: db,
		orders:     db,
		users:      db,
		gateway:    gateway.NewAdapter(&gateway.Sandbox{}),
		jwtSecret:  []byte(secret),
		orderQueue: make(chan *models.Order, 64),
	}

	go app.orderWorker()

	srv := &http.Server{
		Addr:    *addr,
		Handler: app.routes(),
	}

	logger.Infow("starting server", "addr", *addr)
	logger.Fatal(srv.ListenAndServe())
}
