//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "order-entry-api"
	ConsumerName = "storefront"

	StateCatalogBaseline = "catalog with sku 1 in stock and sku 2 sold out"
	StateCustomerMissing = "no customer with id 404"
)

const (
	ExistingCustomerID int64 = 42
	MissingCustomerID  int64 = 404

	InStockSKU    = "1"
	OutOfStockSKU = "2"

	CustomerPostalCode = "55401"
	CustomerCountry    = "US"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the storefront consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleOrderPayload builds a placement request for the given customer and SKUs, one unit each.
func ExampleOrderPayload(customerID int64, skus ...string) map[string]any {
	items := make([]map[string]any, 0, len(skus))
	for _, sku := range skus {
		items = append(items, map[string]any{
			"product":  map[string]any{"sku": sku, "name": "Pact product " + sku, "price": "3.00"},
			"quantity": 1,
		})
	}
	return map[string]any{"customerId": customerID, "items": items}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
