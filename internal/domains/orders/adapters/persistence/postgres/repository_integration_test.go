//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Apurer/order-entry/internal/domains/orders/domain"
	"github.com/Apurer/order-entry/internal/domains/orders/ports"
	"github.com/Apurer/order-entry/internal/platform/migrations"
)

func setupOrdersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("orderentry_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestProductRepository_IsInStock(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewProductRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, domain.Product{SKU: "a", Price: decimal.RequireFromString("1.50")}, 2))
	require.NoError(t, repo.Upsert(ctx, domain.Product{SKU: "b", Price: decimal.RequireFromString("3")}, 0))

	ok, err := repo.IsInStock(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.IsInStock(ctx, "b")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.IsInStock(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Upsert(ctx, domain.Product{SKU: "b", Price: decimal.RequireFromString("3")}, 5))
	ok, err = repo.IsInStock(ctx, "b")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCustomerRepository_SaveAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewCustomerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.Customer{ID: 5, Name: "Ada", PostalCode: "55401", Country: "US"}))
	customer, err := repo.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Ada", customer.Name)
	assert.Equal(t, "55401", customer.PostalCode)

	_, err = repo.Get(ctx, 6)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestTaxRepository_ReplaceAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewTaxRepository(db)
	ctx := context.Background()

	err := repo.Replace(ctx, "55401", "us", []domain.TaxEntry{
		{Description: "state", Rate: decimal.RequireFromString("0.06875")},
		{Description: "city", Rate: decimal.RequireFromString("0.005")},
	})
	require.NoError(t, err)

	entries, err := repo.GetTaxEntries(ctx, "55401", "US")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "state", entries[0].Description)
	assert.True(t, decimal.RequireFromString("0.06875").Equal(entries[0].Rate))

	require.NoError(t, repo.Replace(ctx, "55401", "US", nil))
	entries, err = repo.GetTaxEntries(ctx, "55401", "US")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFulfillmentRepository_AssignsNumbers(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewFulfillmentRepository(db)
	outbox := NewNotificationOutbox(db)
	ctx := context.Background()
	order := &domain.Order{CustomerID: 1, Items: []domain.OrderItem{
		{Product: domain.Product{SKU: "a", Price: decimal.RequireFromString("2")}, Quantity: 3},
	}}

	first, err := repo.Fulfill(ctx, order)
	require.NoError(t, err)
	second, err := repo.Fulfill(ctx, order)
	require.NoError(t, err)
	assert.NotEqual(t, first.OrderID, second.OrderID)
	assert.NotEqual(t, first.OrderNumber, second.OrderNumber)

	require.NoError(t, outbox.SendOrderConfirmationEmail(ctx, 1, first.OrderID))
	count, err := outbox.CountForOrder(ctx, first.OrderID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
