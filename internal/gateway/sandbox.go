package gateway

import (
	"errors"

	"github.com/google/uuid"
)

// Sandbox is an in-process SDK implementation for local development and
// tests. It hands out random client tokens and approves every sale unless
// configured to decline.
type Sandbox struct {
	Decline bool
}

var ErrSaleDeclined = errors.New("sale transaction declined")

func (s *Sandbox) GenerateClientToken(_ TokenRequest, cb func(error, *Token)) {
	cb(nil, &Token{ClientToken: uuid.New().String()})
}

func (s *Sandbox) SaleTransaction(req SaleRequest, cb func(error, *Sale)) {
	if s.Decline {
		cb(ErrSaleDeclined, nil)
		return
	}
	cb(nil, &Sale{
		ID:      uuid.New().String(),
		Amount:  req.Amount,
		Success: true,
	})
}
