package migrations

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run applies the order-entry schema. Adapters do not automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&productRecord{},
		&customerRecord{},
		&taxEntryRecord{},
		&orderRecord{},
		&notificationRecord{},
	)
}

// Product schema mirrors the orders Postgres catalog adapter.
type productRecord struct {
	SKU         string          `gorm:"primaryKey;column:sku;size:64"`
	Name        string          `gorm:"column:name"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(14,4)"`
	UnitsOnHand int             `gorm:"column:units_on_hand"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

type customerRecord struct {
	ID         int64     `gorm:"primaryKey;column:id"`
	Name       string    `gorm:"column:name"`
	Email      string    `gorm:"column:email"`
	PostalCode string    `gorm:"column:postal_code;size:16"`
	Country    string    `gorm:"column:country;size:2"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (customerRecord) TableName() string { return "customers" }

type taxEntryRecord struct {
	ID          int64           `gorm:"primaryKey;column:id"`
	PostalCode  string          `gorm:"column:postal_code;size:16;index:idx_tax_entries_destination"`
	Country     string          `gorm:"column:country;size:2;index:idx_tax_entries_destination"`
	Description string          `gorm:"column:description"`
	Rate        decimal.Decimal `gorm:"column:rate;type:numeric(10,6)"`
}

func (taxEntryRecord) TableName() string { return "tax_entries" }

// Order schema mirrors the fulfillment adapter; number is a bigserial.
type orderRecord struct {
	ID         string          `gorm:"primaryKey;column:id;type:uuid"`
	Number     int64           `gorm:"column:number;autoIncrement;uniqueIndex"`
	CustomerID int64           `gorm:"column:customer_id;index"`
	SKUs       pq.StringArray  `gorm:"column:skus;type:text[]"`
	Quantities pq.Int64Array   `gorm:"column:quantities;type:bigint[]"`
	NetTotal   decimal.Decimal `gorm:"column:net_total;type:numeric(14,4)"`
	CreatedAt  time.Time       `gorm:"column:created_at;index"`
}

func (orderRecord) TableName() string { return "orders" }

type notificationRecord struct {
	ID         int64     `gorm:"primaryKey;column:id"`
	CustomerID int64     `gorm:"column:customer_id;index"`
	OrderID    string    `gorm:"column:order_id;type:uuid;index"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (notificationRecord) TableName() string { return "order_notifications" }
