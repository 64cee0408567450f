// Package gateway adapts the payment provider's error-first callback SDK
// surface into plain (value, error) returns, so handlers are written against
// one failure contract instead of callback-shaped control flow.
package gateway

// TokenRequest mirrors the provider's client-token generation request.
// The hosted SDK takes no meaningful parameters for it.
type TokenRequest struct{}

// Token is a single-use client token the checkout form exchanges for a
// payment nonce.
type Token struct {
	ClientToken string `json:"clientToken"`
}

// SaleRequest is a sale transaction: the computed cart total and the nonce
// supplied by the client's payment form.
type SaleRequest struct {
	Amount  float64
	Nonce   string
	Options SaleOptions
}

type SaleOptions struct {
	SubmitForSettlement bool
}

// Sale is the gateway's transaction outcome.
type Sale struct {
	ID      string  `json:"id"`
	Amount  float64 `json:"amount"`
	Success bool    `json:"success"`
}

// SDK is the error-first callback surface exposed by the provider library.
// Callbacks receive either an error or a result, never both. A misbehaving
// implementation may also panic synchronously instead of invoking the
// callback; the adapter deliberately lets that propagate (see Adapter).
type SDK interface {
	GenerateClientToken(req TokenRequest, cb func(err error, t *Token))
	SaleTransaction(req SaleRequest, cb func(err error, s *Sale))
}

// Adapter is the single adaptation layer over the callback SDK.
//
// Panics thrown synchronously by the SDK are not recovered here: the handler
// boundary owns that behavior (it logs and sends no response, which is the
// contract the payment relay is tested against).
type Adapter struct {
	sdk SDK
}

func NewAdapter(sdk SDK) *Adapter {
	return &Adapter{sdk: sdk}
}

func (a *Adapter) ClientToken() (*Token, error) {
	var (
		token *Token
		cbErr error
	)
	a.sdk.GenerateClientToken(TokenRequest{}, func(err error, t *Token) {
		token, cbErr = t, err
	})
	if cbErr != nil {
		return nil, cbErr
	}
	return token, nil
}

func (a *Adapter) Sale(amount float64, nonce string) (*Sale, error) {
	var (
		sale  *Sale
		cbErr error
	)
	req := SaleRequest{
		Amount:  amount,
		Nonce:   nonce,
		Options: SaleOptions{SubmitForSettlement: true},
	}
	a.sdk.SaleTransaction(req, func(err error, s *Sale) {
		sale, cbErr = s, err
	})
	if cbErr != nil {
		return nil, cbErr
	}
	return sale, nil
}
