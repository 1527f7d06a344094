package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Apurer/order-entry/internal/domains/orders/domain"
	"github.com/Apurer/order-entry/internal/domains/orders/ports"
)

var _ ports.Fulfillment = (*Fulfillment)(nil)

// Fulfillment accepts orders in memory and hands out sequential order numbers.
type Fulfillment struct {
	mu         sync.Mutex
	nextNumber int64
	orders     map[string]domain.Order
}

func NewFulfillment() *Fulfillment {
	return &Fulfillment{orders: map[string]domain.Order{}}
}

func (f *Fulfillment) Fulfill(_ context.Context, order *domain.Order) (*domain.OrderConfirmation, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := *order
	clone.Items = append([]domain.OrderItem(nil), order.Items...)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextNumber++
	id := uuid.NewString()
	f.orders[id] = clone
	return &domain.OrderConfirmation{
		OrderID:     id,
		OrderNumber: fmt.Sprintf("ORD-%06d", f.nextNumber),
	}, nil
}

// Get returns a copy of a fulfilled order.
func (f *Fulfillment) Get(orderID string) (*domain.Order, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[orderID]
	if !ok {
		return nil, false
	}
	return &order, true
}
