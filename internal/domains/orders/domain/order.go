package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShippingDuration is the fixed lead time used for delivery estimates.
const ShippingDuration = 7 * 24 * time.Hour

// Product is the catalog entry referenced by an order line.
type Product struct {
	SKU   string
	Name  string
	Price decimal.Decimal
}

// OrderItem is a single line of an order.
type OrderItem struct {
	Product  Product
	Quantity int
}

// Subtotal returns quantity times unit price.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is the placement request aggregate.
type Order struct {
	CustomerID int64
	Items      []OrderItem
}

// SKUs lists the product SKUs in item order.
func (o *Order) SKUs() []string {
	skus := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		skus = append(skus, item.Product.SKU)
	}
	return skus
}

// NetTotal sums the item subtotals.
func (o *Order) NetTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Customer is the directory record used for tax resolution.
type Customer struct {
	ID         int64
	Name       string
	Email      string
	PostalCode string
	Country    string
}

// TaxEntry is a single tax applied to the net total.
type TaxEntry struct {
	Description string
	Rate        decimal.Decimal
}

// GrandTotal applies every tax rate to the net total and sums the results.
func GrandTotal(net decimal.Decimal, taxes []TaxEntry) decimal.Decimal {
	total := decimal.Zero
	for _, tax := range taxes {
		total = total.Add(net.Mul(tax.Rate))
	}
	return total
}

// OrderConfirmation is what fulfillment hands back for an accepted order.
type OrderConfirmation struct {
	OrderID     string
	OrderNumber string
}

// OrderSummary is the result of a successful placement.
type OrderSummary struct {
	CustomerID            int64
	OrderID               string
	OrderNumber           string
	Items                 []OrderItem
	NetTotal              decimal.Decimal
	Taxes                 []TaxEntry
	Total                 decimal.Decimal
	EstimatedDeliveryDate time.Time
}

// EstimateDelivery adds the shipping duration to now and drops the time of day.
func EstimateDelivery(now time.Time) time.Time {
	eta := now.Add(ShippingDuration)
	return time.Date(eta.Year(), eta.Month(), eta.Day(), 0, 0, 0, 0, eta.Location())
}
