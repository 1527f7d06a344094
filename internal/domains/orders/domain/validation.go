package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrDuplicateSku = errors.New("order items are not unique by product SKU")
	ErrOutOfStock   = errors.New("one or more products are out of stock")
)

// ViolationKind tags which placement invariant an order broke.
type ViolationKind string

const (
	ViolationDuplicateSku ViolationKind = "DuplicateSku"
	ViolationOutOfStock   ViolationKind = "OutOfStock"
)

// ValidationError reports the first invariant an order violated.
type ValidationError struct {
	Kind ViolationKind
	SKU  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s (sku %q)", e.sentinel().Error(), e.SKU)
}

// Unwrap exposes the sentinel so callers can use errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.sentinel()
}

func (e *ValidationError) sentinel() error {
	if e.Kind == ViolationOutOfStock {
		return ErrOutOfStock
	}
	return ErrDuplicateSku
}

// StockChecker answers whether a SKU can currently be sold.
type StockChecker func(ctx context.Context, sku string) (bool, error)

// Validate walks the items in order. For each item the duplicate check runs
// before the stock check, so the first failing item decides the error.
func (o *Order) Validate(ctx context.Context, inStock StockChecker) error {
	seen := make(map[string]struct{}, len(o.Items))
	for _, item := range o.Items {
		sku := item.Product.SKU
		if _, dup := seen[sku]; dup {
			return &ValidationError{Kind: ViolationDuplicateSku, SKU: sku}
		}
		ok, err := inStock(ctx, sku)
		if err != nil {
			return err
		}
		if !ok {
			return &ValidationError{Kind: ViolationOutOfStock, SKU: sku}
		}
		seen[sku] = struct{}{}
	}
	return nil
}
