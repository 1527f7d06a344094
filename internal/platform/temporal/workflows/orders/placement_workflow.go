package orders

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	orderdomain "github.com/Apurer/order-entry/internal/domains/orders/domain"
	orderactivities "github.com/Apurer/order-entry/internal/platform/temporal/activities/orders"
)

const (
	// PlacementWorkflowName is the public identifier for registering the workflow.
	PlacementWorkflowName = "orders.workflows.Placement"
	// PlacementTaskQueue is the queue consumed by the worker processing order workflows.
	PlacementTaskQueue = "ORDER_PLACEMENT"
)

// PlacementWorkflowInput carries the order to place.
type PlacementWorkflowInput struct {
	Order   orderdomain.Order
	TraceID string
}

// PlacementWorkflow runs the placement activity exactly once.
func PlacementWorkflow(ctx workflow.Context, input PlacementWorkflowInput) (*orderdomain.OrderSummary, error) {
	logger := workflow.GetLogger(ctx)
	customerID := input.Order.CustomerID
	logger.Info("PlacementWorkflow started", withTraceID(input.TraceID, "customerId", customerID)...)

	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy:         &temporal.RetryPolicy{MaximumAttempts: 1},
	})
	var summary orderdomain.OrderSummary
	err := workflow.ExecuteActivity(ctx, orderactivities.PlaceOrderActivityName, orderactivities.PlaceOrderInput{
		Order:   input.Order,
		TraceID: input.TraceID,
	}).Get(ctx, &summary)
	if err != nil {
		logger.Error("PlacementWorkflow failed", withTraceID(input.TraceID, "customerId", customerID, "error", err)...)
		return nil, err
	}
	logger.Info("PlacementWorkflow completed", withTraceID(input.TraceID, "orderId", summary.OrderID)...)
	return &summary, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
