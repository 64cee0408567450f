package main

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"shopapi/internal/gateway"
	"shopapi/internal/models"

	"github.com/alexedwards/scs/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestApplication(t *testing.T) (*application, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zap.InfoLevel)

	session := scs.New()
	session.Lifetime = time.Hour

	app := &application{
		logger:     zap.New(core).Sugar(),
		session:    session,
		gateway:    gateway.NewAdapter(&gateway.Sandbox{}),
		jwtSecret:  []byte("test-secret"),
		orderQueue: make(chan *models.Order, 16),
	}
	return app, logs
}

func adminToken(t *testing.T, app *application) string {
	t.Helper()

	token, err := app.newToken(&models.User{
		ID:   primitive.NewObjectID(),
		Name: "Admin User",
		Role: "admin",
	})
	require.NoError(t, err)
	return token
}

func userToken(t *testing.T, app *application, id primitive.ObjectID) string {
	t.Helper()

	token, err := app.newToken(&models.User{
		ID:   id,
		Name: "Customer",
		Role: "customer",
	})
	require.NoError(t, err)
	return token
}

type formFile struct {
	name string
	data []byte
}

// multipartBody builds a create/update product request body from string
// fields plus an optional photo part.
func multipartBody(t *testing.T, fields map[string]string, photo *formFile) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if photo != nil {
		part, err := mw.CreateFormFile("photo", photo.name)
		require.NoError(t, err)
		_, err = part.Write(photo.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func doRequest(t *testing.T, app *application, method, url, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, url, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	rr := httptest.NewRecorder()
	app.routes().ServeHTTP(rr, req)
	return rr
}

func validFields() map[string]string {
	return map[string]string{
		"name":        "product",
		"description": "product description",
		"price":       "100",
		"category":    primitive.NewObjectID().Hex(),
		"quantity":    "10",
		"shipping":    "true",
	}
}
