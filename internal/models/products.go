package models

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// Listing endpoints cap the payload; photo binaries are always
	// projected out of list responses.
	latestLimit  = 20
	pageSize     = 6
	relatedLimit = 3
)

// withoutPhoto excludes the inline photo binary from query results.
var withoutPhoto = bson.M{"photo": 0}

func (m *MongoDB) InsertProduct(ctx context.Context, p *Product) (*Product, error) {
	p.ID = primitive.NewObjectID()
	p.Slug = Slugify(p.Name)
	p.CreatedAt = time.Now()

	if _, err := m.Products.InsertOne(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// LatestProducts returns the newest products with populated categories,
// capped at a fixed page size.
func (m *MongoDB) LatestProducts(ctx context.Context) ([]*Product, error) {
	opts := options.Find().
		SetProjection(withoutPhoto).
		SetSort(bson.M{"created_at": -1}).
		SetLimit(latestLimit)

	products, err := m.findProducts(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	return products, m.populateCategories(ctx, products)
}

func (m *MongoDB) ProductBySlug(ctx context.Context, slug string) (*Product, error) {
	var p Product
	opts := options.FindOne().SetProjection(withoutPhoto)
	if err := m.Products.FindOne(ctx, bson.M{"slug": slug}, opts).Decode(&p); err != nil {
		return nil, err
	}
	products := []*Product{&p}
	return &p, m.populateCategories(ctx, products)
}

func (m *MongoDB) ProductByID(ctx context.Context, id string) (*Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var p Product
	opts := options.FindOne().SetProjection(withoutPhoto)
	if err := m.Products.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ProductPhoto reads only the photo subdocument for the given product id.
func (m *MongoDB) ProductPhoto(ctx context.Context, id string) (*Photo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var p Product
	opts := options.FindOne().SetProjection(bson.M{"photo": 1})
	if err := m.Products.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&p); err != nil {
		return nil, err
	}
	return &p.Photo, nil
}

// UpdateProduct replaces the product's fields and recomputes the slug. The
// photo is only touched when a new one was uploaded.
func (m *MongoDB) UpdateProduct(ctx context.Context, id string, p *Product) (*Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"name":        p.Name,
		"slug":        Slugify(p.Name),
		"description": p.Description,
		"price":       p.Price,
		"category_id": p.CategoryID,
		"quantity":    p.Quantity,
		"shipping":    p.Shipping,
	}
	if len(p.Photo.Data) > 0 {
		set["photo"] = p.Photo
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(withoutPhoto)

	var updated Product
	err = m.Products.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct removes the record. A missing id is not treated as an error.
func (m *MongoDB) DeleteProduct(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = m.Products.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

// FilterProducts matches products whose category is in checked (when
// non-empty) and whose price lies within radio's inclusive bounds (when
// provided). No filters means the full set.
func (m *MongoDB) FilterProducts(ctx context.Context, checked []string, radio []float64) ([]*Product, error) {
	filter := bson.M{}
	if len(checked) > 0 {
		ids := make([]primitive.ObjectID, 0, len(checked))
		for _, c := range checked {
			if oid, err := primitive.ObjectIDFromHex(c); err == nil {
				ids = append(ids, oid)
			}
		}
		filter["category_id"] = bson.M{"$in": ids}
	}
	if len(radio) >= 2 {
		filter["price"] = bson.M{"$gte": radio[0], "$lte": radio[1]}
	}

	opts := options.Find().SetProjection(withoutPhoto)
	return m.findProducts(ctx, filter, opts)
}

func (m *MongoDB) CountProducts(ctx context.Context) (int64, error) {
	return m.Products.EstimatedDocumentCount(ctx)
}

// ProductPage returns one page of products, newest first. Pages are
// 1-indexed; anything below 1 is treated as the first page.
func (m *MongoDB) ProductPage(ctx context.Context, page int) ([]*Product, error) {
	if page < 1 {
		page = 1
	}
	opts := options.Find().
		SetProjection(withoutPhoto).
		SetSort(bson.M{"created_at": -1}).
		SetSkip(int64(page-1) * pageSize).
		SetLimit(pageSize)

	return m.findProducts(ctx, bson.M{}, opts)
}

// SearchProducts performs a case-insensitive substring match across name
// and description.
func (m *MongoDB) SearchProducts(ctx context.Context, keyword string) ([]*Product, error) {
	quoted := regexp.QuoteMeta(keyword)
	filter := bson.M{"$or": bson.A{
		bson.M{"name": bson.M{"$regex": quoted, "$options": "i"}},
		bson.M{"description": bson.M{"$regex": quoted, "$options": "i"}},
	}}

	opts := options.Find().SetProjection(withoutPhoto)
	return m.findProducts(ctx, filter, opts)
}

// RelatedProducts returns up to three products sharing the category,
// excluding the product itself.
func (m *MongoDB) RelatedProducts(ctx context.Context, productID, categoryID string) ([]*Product, error) {
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, err
	}
	cid, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, err
	}

	filter := bson.M{
		"category_id": cid,
		"_id":         bson.M{"$ne": pid},
	}
	opts := options.Find().SetProjection(withoutPhoto).SetLimit(relatedLimit)

	products, err := m.findProducts(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return products, m.populateCategories(ctx, products)
}

func (m *MongoDB) ProductsByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]*Product, error) {
	opts := options.Find().SetProjection(withoutPhoto)
	products, err := m.findProducts(ctx, bson.M{"category_id": categoryID}, opts)
	if err != nil {
		return nil, err
	}
	return products, m.populateCategories(ctx, products)
}

// DecrementStock is run by the order worker after a successful payment.
func (m *MongoDB) DecrementStock(ctx context.Context, productID primitive.ObjectID, qty int) error {
	_, err := m.Products.UpdateOne(ctx,
		bson.M{"_id": productID},
		bson.M{"$inc": bson.M{"quantity": -qty}})
	return err
}

func (m *MongoDB) findProducts(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*Product, error) {
	cur, err := m.Products.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var products []*Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// populateCategories attaches the referenced category document to each
// product in place of the bare identifier.
func (m *MongoDB) populateCategories(ctx context.Context, products []*Product) error {
	seen := make(map[primitive.ObjectID]bool)
	var ids []primitive.ObjectID
	for _, p := range products {
		if !p.CategoryID.IsZero() && !seen[p.CategoryID] {
			seen[p.CategoryID] = true
			ids = append(ids, p.CategoryID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	cur, err := m.Categories.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	var cats []*Category
	if err := cur.All(ctx, &cats); err != nil {
		return err
	}

	byID := make(map[primitive.ObjectID]*Category, len(cats))
	for _, c := range cats {
		byID[c.ID] = c
	}
	for _, p := range products {
		p.Category = byID[p.CategoryID]
	}
	return nil
}
