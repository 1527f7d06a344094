package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/Apurer/order-entry/internal/domains/orders/domain"
	"github.com/Apurer/order-entry/internal/domains/orders/ports"
)

var _ ports.TaxLookup = (*TaxTable)(nil)

// TaxTable maps destinations to tax entries. Unknown destinations have no taxes.
type TaxTable struct {
	mu      sync.RWMutex
	entries map[string][]domain.TaxEntry
}

func NewTaxTable() *TaxTable {
	return &TaxTable{entries: map[string][]domain.TaxEntry{}}
}

// Set replaces the entries for a destination.
func (t *TaxTable) Set(postalCode, country string, entries ...domain.TaxEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[destinationKey(postalCode, country)] = append([]domain.TaxEntry(nil), entries...)
}

func (t *TaxTable) GetTaxEntries(_ context.Context, postalCode, country string) ([]domain.TaxEntry, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]domain.TaxEntry(nil), t.entries[destinationKey(postalCode, country)]...), nil
}

func destinationKey(postalCode, country string) string {
	return strings.ToUpper(strings.TrimSpace(country)) + "|" + strings.TrimSpace(postalCode)
}
