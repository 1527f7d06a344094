package memory

import (
	"context"
	"sync"

	"github.com/Apurer/order-entry/internal/domains/orders/domain"
	"github.com/Apurer/order-entry/internal/domains/orders/ports"
)

var _ ports.ProductAvailability = (*Catalog)(nil)

// Catalog is an in-memory product availability adapter.
type Catalog struct {
	mu       sync.RWMutex
	products map[string]catalogEntry
}

type catalogEntry struct {
	product domain.Product
	stock   int
}

func NewCatalog() *Catalog {
	return &Catalog{products: map[string]catalogEntry{}}
}

// Stock registers a product with the given number of units on hand.
func (c *Catalog) Stock(product domain.Product, units int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[product.SKU] = catalogEntry{product: product, stock: units}
}

// IsInStock reports false for unknown SKUs.
func (c *Catalog) IsInStock(_ context.Context, sku string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.products[sku]
	return ok && entry.stock > 0, nil
}
