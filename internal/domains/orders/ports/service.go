package ports

import (
	"context"

	"github.com/Apurer/order-entry/internal/domains/orders/domain"
)

// Service exposes the order placement use case to adapters.
type Service interface {
	PlaceOrder(ctx context.Context, order *domain.Order) (*domain.OrderSummary, error)
}
