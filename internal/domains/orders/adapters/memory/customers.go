package memory

import (
	"context"
	"sync"

	"github.com/Apurer/order-entry/internal/domains/orders/domain"
	"github.com/Apurer/order-entry/internal/domains/orders/ports"
)

var _ ports.CustomerDirectory = (*CustomerDirectory)(nil)

type CustomerDirectory struct {
	mu        sync.RWMutex
	customers map[int64]domain.Customer
}

func NewCustomerDirectory() *CustomerDirectory {
	return &CustomerDirectory{customers: map[int64]domain.Customer{}}
}

// Put adds or replaces a customer.
func (d *CustomerDirectory) Put(customer domain.Customer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.customers[customer.ID] = customer
}

func (d *CustomerDirectory) Get(_ context.Context, customerID int64) (*domain.Customer, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	customer, ok := d.customers[customerID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &customer, nil
}
