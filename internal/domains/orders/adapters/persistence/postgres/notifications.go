package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/Apurer/order-entry/internal/domains/orders/ports"
)

var _ ports.Notifier = (*NotificationOutbox)(nil)

// NotificationOutbox stores confirmations for asynchronous delivery.
type NotificationOutbox struct {
	db *gorm.DB
}

func NewNotificationOutbox(db *gorm.DB) *NotificationOutbox {
	return &NotificationOutbox{db: db}
}

func (o *NotificationOutbox) SendOrderConfirmationEmail(ctx context.Context, customerID int64, orderID string) error {
	if err := ensureDB(o.db, "notification outbox"); err != nil {
		return err
	}
	return o.db.WithContext(ctx).Create(&notificationRecord{CustomerID: customerID, OrderID: orderID}).Error
}

// CountForOrder counts confirmations recorded for an order.
func (o *NotificationOutbox) CountForOrder(ctx context.Context, orderID string) (int64, error) {
	if err := ensureDB(o.db, "notification outbox"); err != nil {
		return 0, err
	}
	var count int64
	err := o.db.WithContext(ctx).Model(&notificationRecord{}).Where("order_id = ?", orderID).Count(&count).Error
	return count, err
}
