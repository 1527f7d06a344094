package postgres

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Apurer/order-entry/internal/domains/orders/domain"
	"github.com/Apurer/order-entry/internal/domains/orders/ports"
)

var _ ports.TaxLookup = (*TaxRepository)(nil)

// TaxRepository resolves tax entries by destination.
type TaxRepository struct {
	db *gorm.DB
}

func NewTaxRepository(db *gorm.DB) *TaxRepository {
	return &TaxRepository{db: db}
}

// Replace swaps all entries for a destination in one transaction.
func (r *TaxRepository) Replace(ctx context.Context, postalCode, country string, entries []domain.TaxEntry) error {
	if err := ensureDB(r.db, "tax repository"); err != nil {
		return err
	}
	postalCode, country = normalizeDestination(postalCode, country)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("postal_code = ? AND country = ?", postalCode, country).Delete(&taxEntryRecord{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		records := make([]taxEntryRecord, 0, len(entries))
		for _, entry := range entries {
			records = append(records, taxEntryRecord{
				PostalCode:  postalCode,
				Country:     country,
				Description: entry.Description,
				Rate:        entry.Rate,
			})
		}
		return tx.Create(&records).Error
	})
}

func (r *TaxRepository) GetTaxEntries(ctx context.Context, postalCode, country string) ([]domain.TaxEntry, error) {
	if err := ensureDB(r.db, "tax repository"); err != nil {
		return nil, err
	}
	postalCode, country = normalizeDestination(postalCode, country)
	var records []taxEntryRecord
	if err := r.db.WithContext(ctx).
		Where("postal_code = ? AND country = ?", postalCode, country).
		Order("id").
		Find(&records).Error; err != nil {
		return nil, err
	}
	entries := make([]domain.TaxEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, domain.TaxEntry{Description: record.Description, Rate: record.Rate})
	}
	return entries, nil
}

func normalizeDestination(postalCode, country string) (string, string) {
	return strings.TrimSpace(postalCode), strings.ToUpper(strings.TrimSpace(country))
}
