//go:build pact
// +build pact

package provider_test

import (
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	pacttest "github.com/Apurer/order-entry/test/pact"

	orderserver "github.com/Apurer/order-entry/go"
	ordermemory "github.com/Apurer/order-entry/internal/domains/orders/adapters/memory"
	orderobs "github.com/Apurer/order-entry/internal/domains/orders/adapters/observability"
	orderworkflows "github.com/Apurer/order-entry/internal/domains/orders/adapters/workflows"
	orderapp "github.com/Apurer/order-entry/internal/domains/orders/application"
	orderdomain "github.com/Apurer/order-entry/internal/domains/orders/domain"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestOrderEntryProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateCatalogBaseline: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.seedBaseline()
			return nil, nil
		},
		pacttest.StateCustomerMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.seedBaseline()
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.seedBaseline()
			return nil
		},
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	catalog   *ordermemory.Catalog
	customers *ordermemory.CustomerDirectory
	taxes     *ordermemory.TaxTable
	server    *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	app := &contractProviderApp{
		catalog:   ordermemory.NewCatalog(),
		customers: ordermemory.NewCustomerDirectory(),
		taxes:     ordermemory.NewTaxTable(),
	}
	service := orderobs.New(orderapp.NewService(orderapp.Collaborators{
		Availability: app.catalog,
		Fulfillment:  ordermemory.NewFulfillment(),
		Customers:    app.customers,
		Taxes:        app.taxes,
		Notifier:     ordermemory.NewOutbox(),
	}))

	router := gin.New()
	router.Use(gin.Recovery())
	router = orderserver.NewRouterWithGinEngine(router, orderserver.ApiHandleFunctions{
		OrdersAPI: orderserver.NewOrdersAPI(orderworkflows.NewInlineOrderWorkflows(service)),
	})

	app.server = httptest.NewServer(router)
	t.Cleanup(app.server.Close)
	return app
}

// seedBaseline is idempotent; the unknown customer is simply never registered.
func (a *contractProviderApp) seedBaseline() {
	price := decimal.RequireFromString("3.00")
	a.catalog.Stock(orderdomain.Product{SKU: pacttest.InStockSKU, Price: price}, 100)
	a.catalog.Stock(orderdomain.Product{SKU: pacttest.OutOfStockSKU, Price: price}, 0)
	a.customers.Put(orderdomain.Customer{
		ID:         pacttest.ExistingCustomerID,
		PostalCode: pacttest.CustomerPostalCode,
		Country:    pacttest.CustomerCountry,
	})
	a.taxes.Set(pacttest.CustomerPostalCode, pacttest.CustomerCountry,
		orderdomain.TaxEntry{Description: "state", Rate: decimal.RequireFromString("0.06875")},
		orderdomain.TaxEntry{Description: "city", Rate: decimal.RequireFromString("0.005")},
	)
}
