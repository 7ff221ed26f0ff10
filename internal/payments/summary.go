package payments

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"paylens/internal/audit"
	pstrings "paylens/pkg/platform/strings"
)

// MonthSummary is the aggregate view of one calendar month: payment count,
// value and discount totals, and the distinct products sold.
type MonthSummary struct {
	Month        YearMonth
	PaymentCount int
	Total        decimal.Decimal
	Discount     decimal.Decimal
	Products     []string
}

// MonthStatement is the exportable variant of a month summary: the same
// totals plus the underlying payments and a generation timestamp. Rendering
// to a document format is the transport's job.
type MonthStatement struct {
	Month       YearMonth
	GeneratedAt time.Time
	Payments    []Payment
	Total       decimal.Decimal
	Discount    decimal.Decimal
}

// MonthSummary aggregates one calendar month. All figures come from a single
// snapshot, so they are mutually consistent even while new payments are being
// recorded concurrently.
func (s *Service) MonthSummary(ctx context.Context, month YearMonth) (MonthSummary, error) {
	ctx, end := s.startQuery(ctx, opMonthSummary, attribute.String("month", month.String()))
	defer end()

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return MonthSummary{}, err
	}

	agg, err := aggregateMonth(ctx, month, snapshot)
	if err != nil {
		return MonthSummary{}, err
	}

	names := make([]string, 0, len(agg.payments))
	for _, p := range agg.payments {
		for _, item := range p.Items {
			names = append(names, item.Name)
		}
	}

	summary := MonthSummary{
		Month:        month,
		PaymentCount: len(agg.payments),
		Total:        agg.total,
		Discount:     agg.discount,
		Products:     pstrings.Dedupe(names),
	}

	s.emitAudit(ctx, audit.ActionReportViewed, opMonthSummary+":"+month.String(), s.clock())
	return summary, nil
}

// MonthStatement assembles the export payload for one calendar month. The
// generation timestamp comes from a single clock read shared with the audit
// event.
func (s *Service) MonthStatement(ctx context.Context, month YearMonth) (MonthStatement, error) {
	ctx, end := s.startQuery(ctx, opMonthStatement, attribute.String("month", month.String()))
	defer end()

	now := s.clock()

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return MonthStatement{}, err
	}

	agg, err := aggregateMonth(ctx, month, snapshot)
	if err != nil {
		return MonthStatement{}, err
	}

	statement := MonthStatement{
		Month:       month,
		GeneratedAt: now,
		Payments:    agg.payments,
		Total:       agg.total,
		Discount:    agg.discount,
	}

	s.emitAudit(ctx, audit.ActionStatementExported, month.String(), now)
	return statement, nil
}

type monthAggregate struct {
	payments []Payment
	total    decimal.Decimal
	discount decimal.Decimal
}

// aggregateMonth computes the month filter and both totals in parallel over
// one shared snapshot. The goroutines write to disjoint fields; Wait is the
// synchronization point.
func aggregateMonth(ctx context.Context, month YearMonth, snapshot []Payment) (monthAggregate, error) {
	agg := monthAggregate{total: decimal.Zero, discount: decimal.Zero}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		filtered := make([]Payment, 0, len(snapshot))
		for _, p := range snapshot {
			if month.Contains(p.PaidAt) {
				filtered = append(filtered, p)
			}
		}
		agg.payments = filtered
		return nil
	})

	g.Go(func() error {
		total := decimal.Zero
		for _, p := range snapshot {
			if month.Contains(p.PaidAt) {
				total = total.Add(p.Total())
			}
		}
		agg.total = total
		return nil
	})

	g.Go(func() error {
		discount := decimal.Zero
		for _, p := range snapshot {
			if month.Contains(p.PaidAt) {
				discount = discount.Add(p.DiscountTotal())
			}
		}
		agg.discount = discount
		return nil
	})

	if err := g.Wait(); err != nil {
		return monthAggregate{}, err
	}
	return agg, nil
}
