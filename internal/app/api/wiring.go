package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Apurer/order-entry/internal/clients/http/mailer"
	ordercache "github.com/Apurer/order-entry/internal/domains/orders/adapters/cache"
	ordermemory "github.com/Apurer/order-entry/internal/domains/orders/adapters/memory"
	ordernotification "github.com/Apurer/order-entry/internal/domains/orders/adapters/notification"
	orderobs "github.com/Apurer/order-entry/internal/domains/orders/adapters/observability"
	orderpostgres "github.com/Apurer/order-entry/internal/domains/orders/adapters/persistence/postgres"
	orderapp "github.com/Apurer/order-entry/internal/domains/orders/application"
	"github.com/Apurer/order-entry/internal/domains/orders/domain"
	orderports "github.com/Apurer/order-entry/internal/domains/orders/ports"
	"github.com/Apurer/order-entry/internal/platform/migrations"
	platformobservability "github.com/Apurer/order-entry/internal/platform/observability"
	platformpostgres "github.com/Apurer/order-entry/internal/platform/postgres"
)

// NewOrderService builds the instrumented placement service from configuration.
// The returned cleanup releases database and cache connections.
func NewOrderService(ctx context.Context, cfg Config, instruments *platformobservability.Instruments) (orderports.Service, func(), error) {
	logger := effectiveLogger(instruments)
	deps, cleanup, err := buildCollaborators(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return orderobs.New(
		orderapp.NewService(deps),
		orderobs.WithLogger(logger),
		orderobs.WithTracer(instruments.Tracer("internal.orders.application")),
		orderobs.WithMeter(instruments.Meter("internal.orders.application")),
	), cleanup, nil
}

func buildCollaborators(ctx context.Context, cfg Config, logger *slog.Logger) (orderapp.Collaborators, func(), error) {
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}
	fail := func(err error) (orderapp.Collaborators, func(), error) {
		cleanup()
		return orderapp.Collaborators{}, nil, err
	}

	db, closeDB := platformpostgres.Open(ctx, cfg.PostgresDSN, logger)
	cleanups = append(cleanups, closeDB)

	var deps orderapp.Collaborators
	if db != nil {
		if cfg.AutoMigrate {
			if err := migrations.Run(db); err != nil {
				return fail(fmt.Errorf("run migrations: %w", err))
			}
		}
		if cfg.SeedDemoData {
			if err := seedPostgres(ctx, db); err != nil {
				return fail(fmt.Errorf("seed demo data: %w", err))
			}
			logger.Info("seeded postgres catalog with demo data")
		}
		deps = orderapp.Collaborators{
			Availability: orderpostgres.NewProductRepository(db),
			Fulfillment:  orderpostgres.NewFulfillmentRepository(db),
			Customers:    orderpostgres.NewCustomerRepository(db),
			Taxes:        orderpostgres.NewTaxRepository(db),
			Notifier:     orderpostgres.NewNotificationOutbox(db),
		}
		logger.Info("order collaborators configured with postgres")
	} else {
		catalog := ordermemory.NewCatalog()
		customers := ordermemory.NewCustomerDirectory()
		taxes := ordermemory.NewTaxTable()
		if cfg.SeedDemoData {
			seedMemory(catalog, customers, taxes)
			logger.Info("seeded in-memory catalog with demo data")
		}
		deps = orderapp.Collaborators{
			Availability: catalog,
			Fulfillment:  ordermemory.NewFulfillment(),
			Customers:    customers,
			Taxes:        taxes,
			Notifier:     ordermemory.NewOutbox(),
		}
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		cleanups = append(cleanups, func() { _ = client.Close() })
		deps.Taxes = ordercache.NewTaxLookup(deps.Taxes, client,
			ordercache.WithTTL(cfg.TaxCacheTTL),
			ordercache.WithLogger(logger),
		)
		logger.Info("tax lookups cached in redis", slog.String("addr", cfg.RedisAddr))
	}

	if cfg.MailGatewayURL != "" {
		client, err := mailer.NewClient(cfg.MailGatewayURL, nil)
		if err != nil {
			return fail(fmt.Errorf("configure mail gateway: %w", err))
		}
		deps.Notifier = ordernotification.NewEmailNotifier(client)
		logger.Info("order confirmations sent through mail gateway", slog.String("url", cfg.MailGatewayURL))
	}
	return deps, cleanup, nil
}

type demoStock struct {
	product domain.Product
	units   int
}

var (
	demoCatalog = []demoStock{
		{product: domain.Product{SKU: "SKU-1001", Name: "Espresso beans 1kg", Price: decimal.RequireFromString("24.90")}, units: 40},
		{product: domain.Product{SKU: "SKU-1002", Name: "Milk frother", Price: decimal.RequireFromString("59.00")}, units: 5},
		{product: domain.Product{SKU: "SKU-1003", Name: "Descaler", Price: decimal.RequireFromString("7.50")}, units: 0},
	}
	demoCustomer = domain.Customer{ID: 1, Name: "Demo Customer", Email: "demo@example.com", PostalCode: "55401", Country: "US"}
	demoTaxes    = []domain.TaxEntry{
		{Description: "Minnesota sales tax", Rate: decimal.RequireFromString("0.06875")},
		{Description: "Minneapolis sales tax", Rate: decimal.RequireFromString("0.005")},
	}
)

func seedMemory(catalog *ordermemory.Catalog, customers *ordermemory.CustomerDirectory, taxes *ordermemory.TaxTable) {
	for _, s := range demoCatalog {
		catalog.Stock(s.product, s.units)
	}
	customers.Put(demoCustomer)
	taxes.Set(demoCustomer.PostalCode, demoCustomer.Country, demoTaxes...)
}

func seedPostgres(ctx context.Context, db *gorm.DB) error {
	products := orderpostgres.NewProductRepository(db)
	for _, s := range demoCatalog {
		if err := products.Upsert(ctx, s.product, s.units); err != nil {
			return err
		}
	}
	if err := orderpostgres.NewCustomerRepository(db).Save(ctx, demoCustomer); err != nil {
		return err
	}
	return orderpostgres.NewTaxRepository(db).Replace(ctx, demoCustomer.PostalCode, demoCustomer.Country, demoTaxes)
}
