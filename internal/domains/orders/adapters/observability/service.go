package observability

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	orderdomain "github.com/Apurer/order-entry/internal/domains/orders/domain"
	orderports "github.com/Apurer/order-entry/internal/domains/orders/ports"
)

const tracerName = "github.com/Apurer/order-entry/internal/domains/orders/adapters/observability/service"

// Service decorates the order placement service with tracing, logging, and metrics.
type Service struct {
	inner   orderports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core order service.
func New(inner orderports.Service, opts ...Option) orderports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) PlaceOrder(ctx context.Context, order *orderdomain.Order) (*orderdomain.OrderSummary, error) {
	var customerID int64
	var itemCount int
	if order != nil {
		customerID = order.CustomerID
		itemCount = len(order.Items)
	}
	ctx, span := s.tracer.Start(ctx, "OrderService.PlaceOrder",
		trace.WithAttributes(attribute.Int64("order.customer_id", customerID), attribute.Int("order.items", itemCount)))
	defer span.End()

	s.logInfo(ctx, "placing order", slog.Int64("order.customer_id", customerID), slog.Int("order.items", itemCount))
	summary, err := s.inner.PlaceOrder(ctx, order)
	if err != nil {
		if reason, ok := rejectionReason(err); ok {
			s.metrics.recordRejected(ctx, reason)
			span.SetAttributes(attribute.String("order.rejection", reason))
		}
		return nil, s.handleError(ctx, span, err, "failed to place order", slog.Int64("order.customer_id", customerID))
	}
	span.SetAttributes(
		attribute.String("order.id", summary.OrderID),
		attribute.String("order.number", summary.OrderNumber),
		attribute.String("order.total", summary.Total.String()),
	)
	s.metrics.recordPlaced(ctx)
	s.logInfo(ctx, "order placed",
		slog.String("order.id", summary.OrderID),
		slog.String("order.number", summary.OrderNumber),
		slog.String("order.net_total", summary.NetTotal.String()),
		slog.String("order.total", summary.Total.String()),
		slog.Time("order.estimated_delivery", summary.EstimatedDeliveryDate))
	return summary, nil
}

func rejectionReason(err error) (string, bool) {
	var verr *orderdomain.ValidationError
	if errors.As(err, &verr) {
		return string(verr.Kind), true
	}
	return "", false
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	ordersPlaced   metric.Int64Counter
	ordersRejected metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersPlaced, _ := m.Int64Counter("orders.service.orders_placed", metric.WithDescription("Number of orders placed"))
	ordersRejected, _ := m.Int64Counter("orders.service.orders_rejected", metric.WithDescription("Number of orders rejected by validation"))
	return serviceMetrics{ordersPlaced: ordersPlaced, ordersRejected: ordersRejected}
}

func (m serviceMetrics) recordPlaced(ctx context.Context) {
	if m.ordersPlaced != nil {
		m.ordersPlaced.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordRejected(ctx context.Context, reason string) {
	if m.ordersRejected != nil {
		m.ordersRejected.Add(ctx, 1, metric.WithAttributes(attribute.String("order.rejection", reason)))
	}
}

var _ orderports.Service = (*Service)(nil)
