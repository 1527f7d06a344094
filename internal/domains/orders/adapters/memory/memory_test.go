package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/order-entry/internal/domains/orders/domain"
	"github.com/Apurer/order-entry/internal/domains/orders/ports"
)

func TestCatalog_IsInStock(t *testing.T) {
	catalog := NewCatalog()
	catalog.Stock(domain.Product{SKU: "in"}, 3)
	catalog.Stock(domain.Product{SKU: "empty"}, 0)
	ctx := context.Background()

	ok, err := catalog.IsInStock(ctx, "in")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = catalog.IsInStock(ctx, "empty")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = catalog.IsInStock(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFulfillment_AssignsUniqueIdsAndSequentialNumbers(t *testing.T) {
	f := NewFulfillment()
	order := &domain.Order{CustomerID: 7, Items: []domain.OrderItem{{Product: domain.Product{SKU: "a"}, Quantity: 1}}}

	first, err := f.Fulfill(context.Background(), order)
	require.NoError(t, err)
	second, err := f.Fulfill(context.Background(), order)
	require.NoError(t, err)

	assert.NotEqual(t, first.OrderID, second.OrderID)
	assert.Equal(t, "ORD-000001", first.OrderNumber)
	assert.Equal(t, "ORD-000002", second.OrderNumber)

	stored, ok := f.Get(first.OrderID)
	require.True(t, ok)
	assert.Equal(t, int64(7), stored.CustomerID)

	_, err = f.Fulfill(context.Background(), nil)
	require.Error(t, err)
}

func TestCustomerDirectory_Get(t *testing.T) {
	dir := NewCustomerDirectory()
	dir.Put(domain.Customer{ID: 1, PostalCode: "10115", Country: "DE"})

	customer, err := dir.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "10115", customer.PostalCode)

	_, err = dir.Get(context.Background(), 2)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestTaxTable_NormalizesDestination(t *testing.T) {
	table := NewTaxTable()
	table.Set("10115", "de", domain.TaxEntry{Description: "VAT", Rate: decimal.RequireFromString("0.19")})

	entries, err := table.GetTaxEntries(context.Background(), " 10115 ", "DE")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "VAT", entries[0].Description)

	entries, err = table.GetTaxEntries(context.Background(), "99999", "DE")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOutbox_RecordsConfirmations(t *testing.T) {
	outbox := NewOutbox()
	require.NoError(t, outbox.SendOrderConfirmationEmail(context.Background(), 9, "ord-9"))

	sent := outbox.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, int64(9), sent[0].CustomerID)
	assert.Equal(t, "ord-9", sent[0].OrderID)
	assert.False(t, sent[0].SentAt.IsZero())
}
