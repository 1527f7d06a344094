package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/order-entry/internal/domains/orders/domain"
)

// ErrInvalidOrder signals the order violated a placement invariant.
var ErrInvalidOrder = errors.New("invalid order")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrDuplicateSku) || errors.Is(err, domain.ErrOutOfStock) {
		return fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	return err
}
