package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	oteltrace "go.opentelemetry.io/otel/trace"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"

	orderapp "github.com/Apurer/order-entry/internal/domains/orders/application"
	"github.com/Apurer/order-entry/internal/domains/orders/domain"
	"github.com/Apurer/order-entry/internal/domains/orders/ports"
	orderactivities "github.com/Apurer/order-entry/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/Apurer/order-entry/internal/platform/temporal/workflows/orders"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalOrderWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlineOrderWorkflows)(nil)
)

// TemporalOrderWorkflows runs order placement on a Temporal cluster.
type TemporalOrderWorkflows struct {
	client    client.Client
	taskQueue string
}

func NewTemporalOrderWorkflows(c client.Client) *TemporalOrderWorkflows {
	return &TemporalOrderWorkflows{client: c, taskQueue: orderworkflows.PlacementTaskQueue}
}

// PlaceOrder starts the placement workflow and waits for its summary.
// Validation failures come back as the same errors the inline path returns.
func (o *TemporalOrderWorkflows) PlaceOrder(ctx context.Context, order *domain.Order) (*domain.OrderSummary, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal order workflows not configured")
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	options := client.StartWorkflowOptions{
		ID:                    fmt.Sprintf("order-placement-%s", uuid.NewString()),
		TaskQueue:             o.taskQueue,
		WorkflowIDReusePolicy: enumspb.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		orderworkflows.PlacementWorkflowName,
		orderworkflows.PlacementWorkflowInput{Order: *order, TraceID: workflowTraceID(ctx)},
	)
	if err != nil {
		return nil, err
	}
	var summary domain.OrderSummary
	if err := run.Get(ctx, &summary); err != nil {
		if verr, ok := orderactivities.DecodeError(err); ok {
			return nil, fmt.Errorf("%w: %w", orderapp.ErrInvalidOrder, verr)
		}
		if orderactivities.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %v", ports.ErrNotFound, err)
		}
		return nil, err
	}
	return &summary, nil
}

// InlineOrderWorkflows calls the service directly, for tests or when Temporal is unavailable.
type InlineOrderWorkflows struct {
	service ports.Service
}

func NewInlineOrderWorkflows(service ports.Service) *InlineOrderWorkflows {
	return &InlineOrderWorkflows{service: service}
}

func (o *InlineOrderWorkflows) PlaceOrder(ctx context.Context, order *domain.Order) (*domain.OrderSummary, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline order workflows not configured")
	}
	return o.service.PlaceOrder(ctx, order)
}

func workflowTraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanContextFromContext(ctx)
	if !spanCtx.HasTraceID() {
		return ""
	}
	return spanCtx.TraceID().String()
}
