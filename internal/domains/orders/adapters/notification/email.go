package notification

import (
	"context"
	"errors"

	"github.com/Apurer/order-entry/internal/clients/http/mailer"
	"github.com/Apurer/order-entry/internal/domains/orders/ports"
)

var _ ports.Notifier = (*EmailNotifier)(nil)

// EmailNotifier delivers order confirmations through the mail gateway.
type EmailNotifier struct {
	client *mailer.Client
}

func NewEmailNotifier(client *mailer.Client) *EmailNotifier {
	return &EmailNotifier{client: client}
}

func (n *EmailNotifier) SendOrderConfirmationEmail(ctx context.Context, customerID int64, orderID string) error {
	if n == nil || n.client == nil {
		return errors.New("email notifier not configured")
	}
	return n.client.SendOrderConfirmation(ctx, customerID, mailer.OrderConfirmationRequest{OrderID: orderID})
}
