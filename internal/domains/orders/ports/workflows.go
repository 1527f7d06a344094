package ports

import (
	"context"

	"github.com/Apurer/order-entry/internal/domains/orders/domain"
)

// WorkflowOrchestrator runs order placement either inline or on a durable engine.
type WorkflowOrchestrator interface {
	PlaceOrder(ctx context.Context, order *domain.Order) (*domain.OrderSummary, error)
}
