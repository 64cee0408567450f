package models

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
)

func (m *MongoDB) InsertUser(ctx context.Context, name, email, password, phone, address string) (*User, error) {
	if _, err := m.UserByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        phone,
		Address:      address,
		Role:         "customer",
		CreatedAt:    time.Now(),
	}
	if _, err := m.Users.InsertOne(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (m *MongoDB) UserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	if err := m.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *MongoDB) Authenticate(ctx context.Context, email, password string) (*User, error) {
	var user User
	err := m.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return &user, nil
}
