package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/order-entry/internal/domains/orders/domain"
	"github.com/Apurer/order-entry/internal/domains/orders/ports"
)

var _ ports.ProductAvailability = (*ProductRepository)(nil)

// ProductRepository answers stock checks from the products table.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository wires a PostgreSQL-backed catalog. Caller manages DB lifecycle.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Upsert inserts or updates a product and its units on hand.
func (r *ProductRepository) Upsert(ctx context.Context, product domain.Product, units int) error {
	if err := ensureDB(r.db, "product repository"); err != nil {
		return err
	}
	record := productRecord{SKU: product.SKU, Name: product.Name, Price: product.Price, UnitsOnHand: units}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "sku"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":          record.Name,
				"price":         record.Price,
				"units_on_hand": record.UnitsOnHand,
				"updated_at":    gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error
}

// IsInStock reports false for SKUs that are not in the catalog.
func (r *ProductRepository) IsInStock(ctx context.Context, sku string) (bool, error) {
	if err := ensureDB(r.db, "product repository"); err != nil {
		return false, err
	}
	var record productRecord
	if err := r.db.WithContext(ctx).Select("sku", "units_on_hand").First(&record, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return record.UnitsOnHand > 0, nil
}
