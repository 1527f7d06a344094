package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Apurer/order-entry/internal/domains/orders/domain"
	"github.com/Apurer/order-entry/internal/domains/orders/ports"
)

var _ ports.Fulfillment = (*FulfillmentRepository)(nil)

// FulfillmentRepository records accepted orders; the database assigns order numbers.
type FulfillmentRepository struct {
	db *gorm.DB
}

func NewFulfillmentRepository(db *gorm.DB) *FulfillmentRepository {
	return &FulfillmentRepository{db: db}
}

func (r *FulfillmentRepository) Fulfill(ctx context.Context, order *domain.Order) (*domain.OrderConfirmation, error) {
	if err := ensureDB(r.db, "fulfillment repository"); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := orderRecord{
		ID:         uuid.NewString(),
		CustomerID: order.CustomerID,
		SKUs:       order.SKUs(),
		Quantities: make([]int64, 0, len(order.Items)),
		NetTotal:   order.NetTotal(),
	}
	for _, item := range order.Items {
		record.Quantities = append(record.Quantities, int64(item.Quantity))
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return &domain.OrderConfirmation{
		OrderID:     record.ID,
		OrderNumber: formatOrderNumber(record.Number),
	}, nil
}

func formatOrderNumber(n int64) string {
	return fmt.Sprintf("ORD-%06d", n)
}
