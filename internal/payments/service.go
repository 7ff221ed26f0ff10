package payments

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"paylens/internal/audit"
	"paylens/internal/payments/metrics"
	"paylens/internal/platform/clock"
	dErrors "paylens/pkg/domain-errors"
	emailutil "paylens/pkg/email"
	"paylens/pkg/platform/sentinel"
	pstrings "paylens/pkg/platform/strings"
)

const tracerName = "paylens/payments"

// Operation names used for metrics, spans and the audit trail.
const (
	opPaymentsByDateAsc       = "payments_by_date_asc"
	opPaymentsByDateDesc      = "payments_by_date_desc"
	opPaymentsByItemCountAsc  = "payments_by_item_count_asc"
	opPaymentsByItemCountDesc = "payments_by_item_count_desc"
	opPaymentsForMonth        = "payments_for_month"
	opPaymentsForCurrentMonth = "payments_for_current_month"
	opPaymentsForLastDays     = "payments_for_last_days"
	opSingleItemPayments      = "single_item_payments"
	opProductsCurrentMonth    = "products_sold_in_current_month"
	opTotalForMonth           = "total_for_month"
	opDiscountForMonth        = "discount_for_month"
	opItemsForUserEmail       = "items_for_user_email"
	opPaymentsWithValueOver   = "payments_with_value_over"
	opMonthSummary            = "month_summary"
	opMonthStatement          = "month_statement"
	opRecordPayment           = "record_payment"
)

// AuditPublisher records report access events. Emission is best-effort; a
// failing publisher never fails a query.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service answers reporting queries over the payment snapshot. All queries
// are read-only: they evaluate against one FindAll snapshot, never mutate
// stored data, and return fresh slices the caller may keep or modify.
//
// Time-dependent queries read the injected clock exactly once per call, so
// a single call sees one coherent now even across a midnight or month
// boundary.
type Service struct {
	store   Store
	clock   clock.Clock
	logger  *slog.Logger
	audit   AuditPublisher
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.audit = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		if tp != nil {
			s.tracer = tp.Tracer(tracerName)
		}
	}
}

func New(store Store, clk clock.Clock, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("payment store is required")
	}
	if clk == nil {
		return nil, fmt.Errorf("clock is required")
	}

	svc := &Service{
		store:  store,
		clock:  clk,
		logger: slog.Default(),
		tracer: otel.Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// PaymentsByDateAsc returns every payment ordered by payment date, oldest
// first. The sort is stable: equal dates keep snapshot order.
func (s *Service) PaymentsByDateAsc(ctx context.Context) ([]Payment, error) {
	ctx, end := s.startQuery(ctx, opPaymentsByDateAsc)
	defer end()

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(snapshot, func(a, b Payment) int {
		return a.PaidAt.Compare(b.PaidAt)
	})

	s.emitAudit(ctx, audit.ActionReportViewed, opPaymentsByDateAsc, s.clock())
	return snapshot, nil
}

// PaymentsByDateDesc returns every payment ordered by payment date, newest
// first. The sort is stable: equal dates keep snapshot order.
func (s *Service) PaymentsByDateDesc(ctx context.Context) ([]Payment, error) {
	ctx, end := s.startQuery(ctx, opPaymentsByDateDesc)
	defer end()

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(snapshot, func(a, b Payment) int {
		return b.PaidAt.Compare(a.PaidAt)
	})

	s.emitAudit(ctx, audit.ActionReportViewed, opPaymentsByDateDesc, s.clock())
	return snapshot, nil
}

// PaymentsByItemCountAsc returns every payment ordered by item count,
// fewest items first. Stable; ties keep snapshot order.
func (s *Service) PaymentsByItemCountAsc(ctx context.Context) ([]Payment, error) {
	ctx, end := s.startQuery(ctx, opPaymentsByItemCountAsc)
	defer end()

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(snapshot, func(a, b Payment) int {
		return cmp.Compare(len(a.Items), len(b.Items))
	})

	s.emitAudit(ctx, audit.ActionReportViewed, opPaymentsByItemCountAsc, s.clock())
	return snapshot, nil
}

// PaymentsByItemCountDesc returns every payment ordered by item count,
// most items first. Descending order comes from sorting on the negated
// count. Stable; ties keep snapshot order.
func (s *Service) PaymentsByItemCountDesc(ctx context.Context) ([]Payment, error) {
	ctx, end := s.startQuery(ctx, opPaymentsByItemCountDesc)
	defer end()

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(snapshot, func(a, b Payment) int {
		return cmp.Compare(-len(a.Items), -len(b.Items))
	})

	s.emitAudit(ctx, audit.ActionReportViewed, opPaymentsByItemCountDesc, s.clock())
	return snapshot, nil
}

// PaymentsForMonth returns the payments whose date falls in the given
// calendar month, in snapshot order.
func (s *Service) PaymentsForMonth(ctx context.Context, month YearMonth) ([]Payment, error) {
	ctx, end := s.startQuery(ctx, opPaymentsForMonth, attribute.String("month", month.String()))
	defer end()

	out, err := s.paymentsForMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	s.emitAudit(ctx, audit.ActionReportViewed, opPaymentsForMonth+":"+month.String(), s.clock())
	return out, nil
}

// PaymentsForCurrentMonth returns the payments of the clock's current
// month, in snapshot order.
func (s *Service) PaymentsForCurrentMonth(ctx context.Context) ([]Payment, error) {
	ctx, end := s.startQuery(ctx, opPaymentsForCurrentMonth)
	defer end()

	now := s.clock()
	month := YearMonthOf(now)

	out, err := s.paymentsForMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	s.emitAudit(ctx, audit.ActionReportViewed, opPaymentsForCurrentMonth+":"+month.String(), now)
	return out, nil
}

// PaymentsForLastDays returns payments from the trailing window of the
// given number of days. Rejects negative day counts.
func (s *Service) PaymentsForLastDays(ctx context.Context, days int) ([]Payment, error) {
	ctx, end := s.startQuery(ctx, opPaymentsForLastDays, attribute.Int("days", days))
	defer end()

	if days < 0 {
		err := dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("days must not be negative, got %d", days))
		trace.SpanFromContext(ctx).RecordError(err)
		return nil, err
	}

	now := s.clock()
	cutoff := now.AddDate(0, 0, -days)

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Payment, 0, len(snapshot))
	for _, p := range snapshot {
		// Windowing is by day-of-year inside the cutoff's calendar year, so
		// a window crossing a year boundary returns nothing from the newer
		// year. TODO: compare instants instead once report consumers accept
		// cross-year windows.
		if p.PaidAt.Year() == cutoff.Year() && p.PaidAt.YearDay() > cutoff.YearDay() {
			out = append(out, p)
		}
	}

	s.emitAudit(ctx, audit.ActionReportViewed, fmt.Sprintf("%s:%d", opPaymentsForLastDays, days), now)
	return out, nil
}

// SingleItemPayments returns the distinct payments that have exactly one
// item, in snapshot order.
func (s *Service) SingleItemPayments(ctx context.Context) ([]Payment, error) {
	ctx, end := s.startQuery(ctx, opSingleItemPayments)
	defer end()

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Payment, 0, len(snapshot))
	seen := make(map[uuid.UUID]struct{}, len(snapshot))
	for _, p := range snapshot {
		if len(p.Items) != 1 {
			continue
		}
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}

	s.emitAudit(ctx, audit.ActionReportViewed, opSingleItemPayments, s.clock())
	return out, nil
}

// ProductsSoldInCurrentMonth returns the distinct product names sold in the
// clock's current month, first occurrence first. Names are compared exactly,
// with no trimming or case folding.
func (s *Service) ProductsSoldInCurrentMonth(ctx context.Context) ([]string, error) {
	ctx, end := s.startQuery(ctx, opProductsCurrentMonth)
	defer end()

	now := s.clock()
	month := YearMonthOf(now)

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(snapshot))
	for _, p := range snapshot {
		if !month.Contains(p.PaidAt) {
			continue
		}
		for _, item := range p.Items {
			names = append(names, item.Name)
		}
	}

	s.emitAudit(ctx, audit.ActionReportViewed, opProductsCurrentMonth+":"+month.String(), now)
	return pstrings.Dedupe(names), nil
}

// TotalForMonth returns the sum of final prices across all items of the
// given month's payments. A month with no payments totals to zero.
func (s *Service) TotalForMonth(ctx context.Context, month YearMonth) (decimal.Decimal, error) {
	ctx, end := s.startQuery(ctx, opTotalForMonth, attribute.String("month", month.String()))
	defer end()

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, p := range snapshot {
		if month.Contains(p.PaidAt) {
			total = total.Add(p.Total())
		}
	}

	s.emitAudit(ctx, audit.ActionReportViewed, opTotalForMonth+":"+month.String(), s.clock())
	return total, nil
}

// DiscountForMonth returns the sum of per-item discounts (regular minus
// final) across the given month's payments. A month with no payments
// discounts to zero.
func (s *Service) DiscountForMonth(ctx context.Context, month YearMonth) (decimal.Decimal, error) {
	ctx, end := s.startQuery(ctx, opDiscountForMonth, attribute.String("month", month.String()))
	defer end()

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, p := range snapshot {
		if month.Contains(p.PaidAt) {
			total = total.Add(p.DiscountTotal())
		}
	}

	s.emitAudit(ctx, audit.ActionReportViewed, opDiscountForMonth+":"+month.String(), s.clock())
	return total, nil
}

// ItemsForUserEmail returns every item bought by the payer with exactly the
// given email, flattened in snapshot order then item order. An unknown email
// yields an empty list.
func (s *Service) ItemsForUserEmail(ctx context.Context, email string) ([]PaymentItem, error) {
	ctx, end := s.startQuery(ctx, opItemsForUserEmail)
	defer end()

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]PaymentItem, 0)
	for _, p := range snapshot {
		if p.User.Email != email {
			continue
		}
		out = append(out, p.Items...)
	}

	// The trail records which mailbox was looked up without storing the
	// address itself.
	s.emitAudit(ctx, audit.ActionReportViewed, opItemsForUserEmail+":"+emailutil.Masked(email), s.clock())
	return out, nil
}

// PaymentsWithValueOver returns the distinct payments whose final-price sum
// is strictly greater than the threshold, in snapshot order.
func (s *Service) PaymentsWithValueOver(ctx context.Context, threshold int64) ([]Payment, error) {
	ctx, end := s.startQuery(ctx, opPaymentsWithValueOver, attribute.Int64("threshold", threshold))
	defer end()

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	limit := decimal.NewFromInt(threshold)
	out := make([]Payment, 0, len(snapshot))
	seen := make(map[uuid.UUID]struct{}, len(snapshot))
	for _, p := range snapshot {
		if p.Total().Cmp(limit) <= 0 {
			continue
		}
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}

	s.emitAudit(ctx, audit.ActionReportViewed, fmt.Sprintf("%s:%d", opPaymentsWithValueOver, threshold), s.clock())
	return out, nil
}

// RecordPayment validates and persists one payment. A missing payment ID is
// stamped here; a duplicate ID is rejected as a conflict.
func (s *Service) RecordPayment(ctx context.Context, payment Payment) (Payment, error) {
	ctx, end := s.startQuery(ctx, opRecordPayment)
	defer end()

	if err := payment.Validate(); err != nil {
		trace.SpanFromContext(ctx).RecordError(err)
		return Payment{}, err
	}
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}

	if err := s.store.Save(ctx, payment); err != nil {
		err = translateStoreError(err, "failed to record payment")
		trace.SpanFromContext(ctx).RecordError(err)
		return Payment{}, err
	}

	if s.metrics != nil {
		s.metrics.IncrementPaymentsRecorded()
	}
	s.logger.InfoContext(ctx, "payment recorded",
		"payment_id", payment.ID,
		"paid_at", payment.PaidAt,
		"items", len(payment.Items),
	)
	s.emitAudit(ctx, audit.ActionPaymentRecorded, payment.ID.String(), s.clock())
	return payment, nil
}

// paymentsForMonth filters the snapshot down to one calendar month,
// preserving snapshot order.
func (s *Service) paymentsForMonth(ctx context.Context, month YearMonth) ([]Payment, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Payment, 0, len(snapshot))
	for _, p := range snapshot {
		if month.Contains(p.PaidAt) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) snapshot(ctx context.Context) ([]Payment, error) {
	payments, err := s.store.FindAll(ctx)
	if err != nil {
		wrapped := dErrors.Wrap(err, dErrors.CodeInternal, "failed to load payments")
		trace.SpanFromContext(ctx).RecordError(wrapped)
		s.logger.ErrorContext(ctx, "failed to load payment snapshot", "error", err.Error())
		return nil, wrapped
	}
	if s.metrics != nil {
		s.metrics.ObserveSnapshotSize(len(payments))
	}
	return payments, nil
}

func (s *Service) startQuery(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func()) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "payments."+op, trace.WithAttributes(attrs...))
	return ctx, func() {
		span.End()
		if s.metrics != nil {
			s.metrics.ObserveQuery(op, time.Since(start))
		}
	}
}

func (s *Service) emitAudit(ctx context.Context, action, subject string, now time.Time) {
	if s.audit == nil {
		return
	}
	event := audit.NewEvent(ctx, action, subject, now)
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"action", action,
			"subject", subject,
			"error", err.Error(),
		)
	}
}

func translateStoreError(err error, message string) error {
	switch {
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.Wrap(err, dErrors.CodeConflict, message)
	case errors.Is(err, sentinel.ErrUnavailable):
		return dErrors.Wrap(err, dErrors.CodeUnavailable, message)
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, message)
	}
}
