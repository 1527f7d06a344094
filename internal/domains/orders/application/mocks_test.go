package application

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Apurer/order-entry/internal/domains/orders/domain"
)

type mockAvailability struct{ mock.Mock }

func (m *mockAvailability) IsInStock(ctx context.Context, sku string) (bool, error) {
	args := m.Called(ctx, sku)
	return args.Bool(0), args.Error(1)
}

type mockFulfillment struct{ mock.Mock }

func (m *mockFulfillment) Fulfill(ctx context.Context, order *domain.Order) (*domain.OrderConfirmation, error) {
	args := m.Called(ctx, order)
	confirmation, _ := args.Get(0).(*domain.OrderConfirmation)
	return confirmation, args.Error(1)
}

type mockCustomers struct{ mock.Mock }

func (m *mockCustomers) Get(ctx context.Context, customerID int64) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	customer, _ := args.Get(0).(*domain.Customer)
	return customer, args.Error(1)
}

type mockTaxes struct{ mock.Mock }

func (m *mockTaxes) GetTaxEntries(ctx context.Context, postalCode, country string) ([]domain.TaxEntry, error) {
	args := m.Called(ctx, postalCode, country)
	entries, _ := args.Get(0).([]domain.TaxEntry)
	return entries, args.Error(1)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) SendOrderConfirmationEmail(ctx context.Context, customerID int64, orderID string) error {
	args := m.Called(ctx, customerID, orderID)
	return args.Error(0)
}

type mocks struct {
	availability *mockAvailability
	fulfillment  *mockFulfillment
	customers    *mockCustomers
	taxes        *mockTaxes
	notifier     *mockNotifier
}

func newMocks() *mocks {
	return &mocks{
		availability: &mockAvailability{},
		fulfillment:  &mockFulfillment{},
		customers:    &mockCustomers{},
		taxes:        &mockTaxes{},
		notifier:     &mockNotifier{},
	}
}

func (m *mocks) collaborators() Collaborators {
	return Collaborators{
		Availability: m.availability,
		Fulfillment:  m.fulfillment,
		Customers:    m.customers,
		Taxes:        m.taxes,
		Notifier:     m.notifier,
	}
}

func (m *mocks) assertExpectations(t mock.TestingT) {
	m.availability.AssertExpectations(t)
	m.fulfillment.AssertExpectations(t)
	m.customers.AssertExpectations(t)
	m.taxes.AssertExpectations(t)
	m.notifier.AssertExpectations(t)
}
