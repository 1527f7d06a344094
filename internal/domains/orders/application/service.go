package application

import (
	"context"
	"errors"

	"github.com/Apurer/order-entry/internal/domains/orders/domain"
	"github.com/Apurer/order-entry/internal/domains/orders/ports"
)

// Collaborators groups the outbound ports the placement workflow depends on.
type Collaborators struct {
	Availability ports.ProductAvailability
	Fulfillment  ports.Fulfillment
	Customers    ports.CustomerDirectory
	Taxes        ports.TaxLookup
	Notifier     ports.Notifier
}

// Service places orders: validate, fulfill, enrich, total, notify.
type Service struct {
	deps  Collaborators
	clock ports.Clock
}

type Option func(*Service)

// WithClock overrides the clock used for delivery estimates.
func WithClock(clock ports.Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func NewService(deps Collaborators, opts ...Option) *Service {
	s := &Service{deps: deps, clock: ports.SystemClock}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// PlaceOrder runs the placement workflow. Validation failures are wrapped in
// ErrInvalidOrder; collaborator errors are returned untouched.
func (s *Service) PlaceOrder(ctx context.Context, order *domain.Order) (*domain.OrderSummary, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := order.Validate(ctx, s.deps.Availability.IsInStock); err != nil {
		return nil, mapError(err)
	}

	confirmation, err := s.deps.Fulfillment.Fulfill(ctx, order)
	if err != nil {
		return nil, err
	}
	customer, err := s.deps.Customers.Get(ctx, order.CustomerID)
	if err != nil {
		return nil, err
	}
	taxes, err := s.deps.Taxes.GetTaxEntries(ctx, customer.PostalCode, customer.Country)
	if err != nil {
		return nil, err
	}

	net := order.NetTotal()
	summary := &domain.OrderSummary{
		CustomerID:            order.CustomerID,
		OrderID:               confirmation.OrderID,
		OrderNumber:           confirmation.OrderNumber,
		Items:                 append([]domain.OrderItem(nil), order.Items...),
		NetTotal:              net,
		Taxes:                 taxes,
		Total:                 domain.GrandTotal(net, taxes),
		EstimatedDeliveryDate: domain.EstimateDelivery(s.clock.Now()),
	}

	if err := s.deps.Notifier.SendOrderConfirmationEmail(ctx, order.CustomerID, confirmation.OrderID); err != nil {
		return nil, err
	}
	return summary, nil
}

var _ ports.Service = (*Service)(nil)
