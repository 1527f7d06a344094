package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func item(sku string, qty int, price string) OrderItem {
	return OrderItem{Product: Product{SKU: sku, Price: decimal.RequireFromString(price)}, Quantity: qty}
}

func stock(available map[string]bool) StockChecker {
	return func(_ context.Context, sku string) (bool, error) {
		return available[sku], nil
	}
}

func TestNetTotal(t *testing.T) {
	order := Order{Items: []OrderItem{item("a", 4, "3.0")}}
	require.True(t, decimal.RequireFromString("12").Equal(order.NetTotal()))

	order.Items = append(order.Items, item("b", 3, "0.10"))
	require.True(t, decimal.RequireFromString("12.3").Equal(order.NetTotal()))
}

func TestGrandTotal_SumsNetTimesEachRate(t *testing.T) {
	net := decimal.RequireFromString("12.0")
	taxes := []TaxEntry{
		{Description: "state", Rate: decimal.RequireFromString("2.3")},
		{Description: "city", Rate: decimal.RequireFromString("0.098")},
	}
	require.True(t, decimal.RequireFromString("28.776").Equal(GrandTotal(net, taxes)))
	require.True(t, decimal.Zero.Equal(GrandTotal(net, nil)))
}

func TestEstimateDelivery_DropsTimeOfDay(t *testing.T) {
	now := time.Date(2024, time.March, 28, 17, 45, 12, 99, time.UTC)
	require.Equal(t, time.Date(2024, time.April, 4, 0, 0, 0, 0, time.UTC), EstimateDelivery(now))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		items    []OrderItem
		inStock  map[string]bool
		wantKind ViolationKind
		wantErr  error
	}{
		{
			name:    "unique and in stock",
			items:   []OrderItem{item("a", 1, "1"), item("b", 1, "1")},
			inStock: map[string]bool{"a": true, "b": true},
		},
		{
			name:     "duplicate sku",
			items:    []OrderItem{item("a", 1, "1"), item("a", 2, "1")},
			inStock:  map[string]bool{"a": true},
			wantKind: ViolationDuplicateSku,
			wantErr:  ErrDuplicateSku,
		},
		{
			name:     "out of stock",
			items:    []OrderItem{item("a", 1, "1"), item("b", 1, "1")},
			inStock:  map[string]bool{"a": true},
			wantKind: ViolationOutOfStock,
			wantErr:  ErrOutOfStock,
		},
		{
			name:     "first item out of stock wins over later duplicate",
			items:    []OrderItem{item("a", 1, "1"), item("a", 1, "1")},
			inStock:  map[string]bool{},
			wantKind: ViolationOutOfStock,
			wantErr:  ErrOutOfStock,
		},
		{
			name:     "duplicate wins over later out of stock",
			items:    []OrderItem{item("a", 1, "1"), item("a", 1, "1"), item("b", 1, "1")},
			inStock:  map[string]bool{"a": true},
			wantKind: ViolationDuplicateSku,
			wantErr:  ErrDuplicateSku,
		},
		{
			name: "empty order",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := Order{Items: tt.items}
			err := order.Validate(context.Background(), stock(tt.inStock))
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.wantKind, verr.Kind)
		})
	}
}

func TestValidate_StockErrorPropagates(t *testing.T) {
	boom := errors.New("catalog offline")
	order := Order{Items: []OrderItem{item("a", 1, "1")}}
	err := order.Validate(context.Background(), func(context.Context, string) (bool, error) {
		return false, boom
	})
	require.Same(t, boom, err)
}
