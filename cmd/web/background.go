package main

import "context"

// orderWorker drains newly persisted orders and decrements stock for each
// purchased product. Failures are logged and skipped; stock counts are
// advisory, not transactional.
func (app *application) orderWorker() {
	for order := range app.orderQueue {
		for _, item := range order.Products {
			err := app.products.DecrementStock(context.Background(), item.ID, 1)
			if err != nil {
				app.logger.Errorw("stock decrement failed",
					"order", order.ID.Hex(), "product", item.ID.Hex(), "err", err)
			}
		}
	}
}
