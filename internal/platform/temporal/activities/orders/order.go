package orders

import (
	"context"
	"errors"
	"log/slog"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	orderdomain "github.com/Apurer/order-entry/internal/domains/orders/domain"
	orderports "github.com/Apurer/order-entry/internal/domains/orders/ports"
)

// PlaceOrderActivityName runs the placement workflow against the configured collaborators.
const PlaceOrderActivityName = "orders.activities.PlaceOrder"

// NotFoundErrorType marks application errors raised for an unknown collaborator record.
const NotFoundErrorType = "NotFound"

// PlaceOrderInput is the activity payload.
type PlaceOrderInput struct {
	Order   orderdomain.Order
	TraceID string
}

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	service orderports.Service
}

func NewActivities(service orderports.Service) *Activities {
	return &Activities{service: service}
}

// PlaceOrder places the order and converts validation failures into
// non-retryable application errors typed by violation kind.
func (a *Activities) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*orderdomain.OrderSummary, error) {
	logger := activity.GetLogger(ctx)
	customerID := input.Order.CustomerID
	if a == nil || a.service == nil {
		logger.Error("place order activity not initialized", "customerId", customerID)
		return nil, errors.New("place order activity not initialized")
	}
	logger.Info("PlaceOrder activity started", "customerId", customerID, "items", len(input.Order.Items))
	order := input.Order
	summary, err := a.service.PlaceOrder(ctx, &order)
	if err != nil {
		logger.Error("PlaceOrder activity failed", "customerId", customerID, "error", err)
		return nil, EncodeError(err)
	}
	logger.Info("PlaceOrder activity completed", "orderId", summary.OrderID, "orderNumber", summary.OrderNumber)
	return summary, nil
}

// EncodeError turns validation and not-found errors into non-retryable
// application errors. Other errors pass through.
func EncodeError(err error) error {
	var verr *orderdomain.ValidationError
	if errors.As(err, &verr) {
		return temporal.NewNonRetryableApplicationError(err.Error(), string(verr.Kind), nil, verr.SKU)
	}
	if errors.Is(err, orderports.ErrNotFound) {
		return temporal.NewNonRetryableApplicationError(err.Error(), NotFoundErrorType, nil)
	}
	return err
}

// IsNotFound reports whether err carries an encoded not-found failure.
func IsNotFound(err error) bool {
	var appErr *temporal.ApplicationError
	return errors.As(err, &appErr) && appErr.Type() == NotFoundErrorType
}

// DecodeError recovers the validation error carried by an application error.
func DecodeError(err error) (*orderdomain.ValidationError, bool) {
	var appErr *temporal.ApplicationError
	if !errors.As(err, &appErr) {
		return nil, false
	}
	kind := orderdomain.ViolationKind(appErr.Type())
	if kind != orderdomain.ViolationDuplicateSku && kind != orderdomain.ViolationOutOfStock {
		return nil, false
	}
	verr := &orderdomain.ValidationError{Kind: kind}
	if !appErr.HasDetails() {
		slog.Default().Warn("order rejection carries no sku", slog.String("kind", string(kind)))
		return verr, true
	}
	if err := appErr.Details(&verr.SKU); err != nil {
		verr.SKU = ""
		slog.Default().Warn("failed to decode sku of order rejection",
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()),
		)
	}
	return verr, true
}
