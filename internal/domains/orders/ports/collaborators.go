package ports

import (
	"context"
	"errors"

	"github.com/Apurer/order-entry/internal/domains/orders/domain"
)

// ErrNotFound is returned by lookups that have no matching record.
var ErrNotFound = errors.New("record not found")

// ProductAvailability reports whether a SKU can be sold right now.
type ProductAvailability interface {
	IsInStock(ctx context.Context, sku string) (bool, error)
}

// Fulfillment accepts a validated order and assigns its identifiers.
type Fulfillment interface {
	Fulfill(ctx context.Context, order *domain.Order) (*domain.OrderConfirmation, error)
}

// CustomerDirectory resolves customers by id.
type CustomerDirectory interface {
	Get(ctx context.Context, customerID int64) (*domain.Customer, error)
}

// TaxLookup returns the taxes applicable to a destination.
type TaxLookup interface {
	GetTaxEntries(ctx context.Context, postalCode, country string) ([]domain.TaxEntry, error)
}

// Notifier sends the order confirmation to the customer.
type Notifier interface {
	SendOrderConfirmationEmail(ctx context.Context, customerID int64, orderID string) error
}
