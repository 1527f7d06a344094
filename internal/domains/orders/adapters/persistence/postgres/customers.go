package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/order-entry/internal/domains/orders/domain"
	"github.com/Apurer/order-entry/internal/domains/orders/ports"
)

var _ ports.CustomerDirectory = (*CustomerRepository)(nil)

// CustomerRepository reads customers from PostgreSQL.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Save inserts or replaces a customer.
func (r *CustomerRepository) Save(ctx context.Context, customer domain.Customer) error {
	if err := ensureDB(r.db, "customer repository"); err != nil {
		return err
	}
	record := customerRecord{
		ID:         customer.ID,
		Name:       customer.Name,
		Email:      customer.Email,
		PostalCode: customer.PostalCode,
		Country:    customer.Country,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "email", "postal_code", "country"}),
		}).Create(&record).Error
}

func (r *CustomerRepository) Get(ctx context.Context, customerID int64) (*domain.Customer, error) {
	if err := ensureDB(r.db, "customer repository"); err != nil {
		return nil, err
	}
	var record customerRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return &domain.Customer{
		ID:         record.ID,
		Name:       record.Name,
		Email:      record.Email,
		PostalCode: record.PostalCode,
		Country:    record.Country,
	}, nil
}
