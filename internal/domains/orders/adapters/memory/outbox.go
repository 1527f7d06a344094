package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Apurer/order-entry/internal/domains/orders/ports"
)

var _ ports.Notifier = (*Outbox)(nil)

// Confirmation is a notification captured by the outbox.
type Confirmation struct {
	CustomerID int64
	OrderID    string
	SentAt     time.Time
}

// Outbox records confirmations instead of delivering them.
type Outbox struct {
	mu   sync.Mutex
	sent []Confirmation
	now  func() time.Time
}

func NewOutbox() *Outbox {
	return &Outbox{now: time.Now}
}

func (o *Outbox) SendOrderConfirmationEmail(_ context.Context, customerID int64, orderID string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, Confirmation{CustomerID: customerID, OrderID: orderID, SentAt: o.now()})
	return nil
}

// Sent returns the confirmations recorded so far.
func (o *Outbox) Sent() []Confirmation {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Confirmation(nil), o.sent...)
}
