package client

import (
	"context"

	"shopapi/internal/models"
)

const (
	MsgFetchOrdersError  = "Something went wrong in getting orders"
	MsgUpdateStatusError = "Something went wrong in updating order status"
)

// OrdersPage drives the admin order list: fetch on mount (only when signed
// in), per-order status updates with the list left untouched on failure.
type OrdersPage struct {
	api    *Client
	notify Notifier
	auth   *AuthContext

	orders []*models.Order
}

func NewOrdersPage(api *Client, notify Notifier, auth *AuthContext) *OrdersPage {
	return &OrdersPage{
		api:    api,
		notify: notify,
		auth:   auth,
	}
}

func (p *OrdersPage) Orders() []*models.Order { return p.orders }

func (p *OrdersPage) Load(ctx context.Context) {
	if !p.auth.SignedIn() {
		return
	}

	orders, err := p.api.AllOrders(ctx)
	if err != nil {
		p.notify.Error(MsgFetchOrdersError)
		return
	}
	p.orders = orders
}

// SetStatus updates one order's status. On rejection the error toast is
// shown and the local list is left unchanged.
func (p *OrdersPage) SetStatus(ctx context.Context, orderID, status string) {
	if err := p.api.UpdateOrderStatus(ctx, orderID, status); err != nil {
		p.notify.Error(MsgUpdateStatusError)
		return
	}

	for _, o := range p.orders {
		if o.ID.Hex() == orderID {
			o.Status = status
		}
	}
}
