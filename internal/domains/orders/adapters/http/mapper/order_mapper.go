package mapper

import (
	"github.com/shopspring/decimal"

	"github.com/Apurer/order-entry/internal/domains/orders/domain"
)

// DateLayout renders the delivery estimate as a calendar date.
const DateLayout = "2006-01-02"

// Product is the HTTP representation of a catalog product.
type Product struct {
	SKU   string          `json:"sku" binding:"required"`
	Name  string          `json:"name,omitempty"`
	Price decimal.Decimal `json:"price"`
}

// OrderItem is the HTTP representation of an order line.
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// PlaceOrder is the inbound payload for order placement.
type PlaceOrder struct {
	CustomerID int64       `json:"customerId" binding:"required"`
	Items      []OrderItem `json:"items" binding:"required,dive"`
}

// TaxEntry is the HTTP representation of an applied tax.
type TaxEntry struct {
	Description string          `json:"description"`
	Rate        decimal.Decimal `json:"rate"`
}

// OrderSummary is the HTTP response for a placed order.
type OrderSummary struct {
	CustomerID            int64           `json:"customerId"`
	OrderID               string          `json:"orderId"`
	OrderNumber           string          `json:"orderNumber"`
	Items                 []OrderItem     `json:"items"`
	NetTotal              decimal.Decimal `json:"netTotal"`
	Taxes                 []TaxEntry      `json:"taxes"`
	Total                 decimal.Decimal `json:"total"`
	EstimatedDeliveryDate string          `json:"estimatedDeliveryDate"`
}

// ToDomainOrder converts the inbound payload into the order aggregate.
func ToDomainOrder(payload PlaceOrder) *domain.Order {
	items := make([]domain.OrderItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, domain.OrderItem{
			Product: domain.Product{
				SKU:   item.Product.SKU,
				Name:  item.Product.Name,
				Price: item.Product.Price,
			},
			Quantity: item.Quantity,
		})
	}
	return &domain.Order{CustomerID: payload.CustomerID, Items: items}
}

// FromDomainSummary converts a placement result to its transport representation.
func FromDomainSummary(summary *domain.OrderSummary) OrderSummary {
	if summary == nil {
		return OrderSummary{}
	}
	items := make([]OrderItem, 0, len(summary.Items))
	for _, item := range summary.Items {
		items = append(items, OrderItem{
			Product:  Product{SKU: item.Product.SKU, Name: item.Product.Name, Price: item.Product.Price},
			Quantity: item.Quantity,
		})
	}
	taxes := make([]TaxEntry, 0, len(summary.Taxes))
	for _, tax := range summary.Taxes {
		taxes = append(taxes, TaxEntry{Description: tax.Description, Rate: tax.Rate})
	}
	return OrderSummary{
		CustomerID:            summary.CustomerID,
		OrderID:               summary.OrderID,
		OrderNumber:           summary.OrderNumber,
		Items:                 items,
		NetTotal:              summary.NetTotal,
		Taxes:                 taxes,
		Total:                 summary.Total,
		EstimatedDeliveryDate: summary.EstimatedDeliveryDate.Format(DateLayout),
	}
}
