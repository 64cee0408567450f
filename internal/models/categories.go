package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (m *MongoDB) InsertCategory(ctx context.Context, name string) (*Category, error) {
	cat := &Category{
		ID:   primitive.NewObjectID(),
		Name: name,
		Slug: Slugify(name),
	}
	if _, err := m.Categories.InsertOne(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (m *MongoDB) CategoryByName(ctx context.Context, name string) (*Category, error) {
	var c Category
	err := m.Categories.FindOne(ctx, bson.M{"name": name}).Decode(&c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (m *MongoDB) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	var c Category
	err := m.Categories.FindOne(ctx, bson.M{"slug": slug}).Decode(&c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCategory renames the category and recomputes its slug.
func (m *MongoDB) UpdateCategory(ctx context.Context, id, name string) (*Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{"name": name, "slug": Slugify(name)}}
	if _, err := m.Categories.UpdateOne(ctx, bson.M{"_id": oid}, update); err != nil {
		return nil, err
	}
	return &Category{ID: oid, Name: name, Slug: Slugify(name)}, nil
}

func (m *MongoDB) DeleteCategory(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = m.Categories.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (m *MongoDB) AllCategories(ctx context.Context) ([]*Category, error) {
	cur, err := m.Categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var cats []*Category
	if err := cur.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}
