package gateway

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSDK struct {
	tokenFn func(req TokenRequest, cb func(error, *Token))
	saleFn  func(req SaleRequest, cb func(error, *Sale))
}

func (s *stubSDK) GenerateClientToken(req TokenRequest, cb func(error, *Token)) {
	s.tokenFn(req, cb)
}

func (s *stubSDK) SaleTransaction(req SaleRequest, cb func(error, *Sale)) {
	s.saleFn(req, cb)
}

func TestAdapterClientToken(t *testing.T) {
	a := NewAdapter(&stubSDK{
		tokenFn: func(_ TokenRequest, cb func(error, *Token)) {
			cb(nil, &Token{ClientToken: "ct-1"})
		},
	})

	token, err := a.ClientToken()
	require.NoError(t, err)
	assert.Equal(t, "ct-1", token.ClientToken)
}

func TestAdapterClientTokenCallbackError(t *testing.T) {
	want := errors.New("provider down")
	a := NewAdapter(&stubSDK{
		tokenFn: func(_ TokenRequest, cb func(error, *Token)) {
			cb(want, nil)
		},
	})

	token, err := a.ClientToken()
	assert.Nil(t, token)
	assert.Equal(t, want, err)
}

func TestAdapterSale(t *testing.T) {
	var gotReq SaleRequest
	a := NewAdapter(&stubSDK{
		saleFn: func(req SaleRequest, cb func(error, *Sale)) {
			gotReq = req
			cb(nil, &Sale{ID: "txn-9", Amount: req.Amount, Success: true})
		},
	})

	sale, err := a.Sale(49.5, "nonce-9")
	require.NoError(t, err)
	assert.Equal(t, "txn-9", sale.ID)
	assert.Equal(t, 49.5, sale.Amount)
	assert.True(t, sale.Success)

	assert.Equal(t, 49.5, gotReq.Amount)
	assert.Equal(t, "nonce-9", gotReq.Nonce)
	assert.True(t, gotReq.Options.SubmitForSettlement)
}

func TestAdapterSaleCallbackError(t *testing.T) {
	a := NewAdapter(&stubSDK{
		saleFn: func(req SaleRequest, cb func(error, *Sale)) {
			cb(ErrSaleDeclined, nil)
		},
	})

	sale, err := a.Sale(10, "nonce")
	assert.Nil(t, sale)
	assert.ErrorIs(t, err, ErrSaleDeclined)
}

func TestAdapterDoesNotRecoverPanics(t *testing.T) {
	a := NewAdapter(&stubSDK{
		tokenFn: func(_ TokenRequest, cb func(error, *Token)) {
			panic("sdk blew up")
		},
	})

	assert.Panics(t, func() { a.ClientToken() })
}

func TestSandbox(t *testing.T) {
	t.Run("approves sales", func(t *testing.T) {
		a := NewAdapter(&Sandbox{})

		sale, err := a.Sale(30, "nonce")
		require.NoError(t, err)
		assert.True(t, sale.Success)
		assert.Equal(t, 30.0, sale.Amount)
		assert.NotEmpty(t, sale.ID)
	})

	t.Run("declines when configured", func(t *testing.T) {
		a := NewAdapter(&Sandbox{Decline: true})

		sale, err := a.Sale(30, "nonce")
		assert.Nil(t, sale)
		assert.ErrorIs(t, err, ErrSaleDeclined)
	})

	t.Run("hands out distinct tokens", func(t *testing.T) {
		a := NewAdapter(&Sandbox{})

		first, err := a.ClientToken()
		require.NoError(t, err)
		second, err := a.ClientToken()
		require.NoError(t, err)
		assert.NotEqual(t, first.ClientToken, second.ClientToken)
	})
}
