package payments

import (
	"context"
	"time"

	"paylens/internal/audit"
	"paylens/internal/platform/clock"
	dErrors "paylens/pkg/domain-errors"
)

// =============================================================================
// Month Summary / Statement
// =============================================================================

func (s *PaymentServiceSuite) TestMonthSummary() {
	s.Run("aggregates one month from a single snapshot", func() {
		got, err := s.service.MonthSummary(context.Background(), YearMonth{2023, time.June})
		s.Require().NoError(err)

		s.Equal(YearMonth{2023, time.June}, got.Month)
		s.Equal(4, got.PaymentCount)
		s.True(got.Total.Equal(d("744.5")), "got %s", got.Total)
		s.True(got.Discount.Equal(d("103.5")), "got %s", got.Discount)
		s.Equal([]string{"Kiwi", "Monitor", "Cable", "Lemon", "Basket"}, got.Products)
	})

	s.Run("figures agree with the individual queries", func() {
		summary, err := s.service.MonthSummary(context.Background(), YearMonth{2023, time.June})
		s.Require().NoError(err)

		total, err := s.service.TotalForMonth(context.Background(), YearMonth{2023, time.June})
		s.Require().NoError(err)
		discount, err := s.service.DiscountForMonth(context.Background(), YearMonth{2023, time.June})
		s.Require().NoError(err)
		monthly, err := s.service.PaymentsForMonth(context.Background(), YearMonth{2023, time.June})
		s.Require().NoError(err)

		s.True(summary.Total.Equal(total))
		s.True(summary.Discount.Equal(discount))
		s.Equal(len(monthly), summary.PaymentCount)
	})

	s.Run("empty month aggregates to zeros", func() {
		got, err := s.service.MonthSummary(context.Background(), YearMonth{2023, time.February})
		s.Require().NoError(err)

		s.Equal(0, got.PaymentCount)
		s.True(got.Total.IsZero())
		s.True(got.Discount.IsZero())
		s.Empty(got.Products)
	})

	s.Run("emits report_viewed with the month as subject", func() {
		pub := &capturingPublisher{}
		svc, err := New(s.store, clock.Fixed(s.now), WithAuditPublisher(pub))
		s.Require().NoError(err)

		_, err = svc.MonthSummary(context.Background(), YearMonth{2023, time.June})
		s.Require().NoError(err)

		events := pub.recorded()
		s.Require().Len(events, 1)
		s.Equal(audit.ActionReportViewed, events[0].Action)
		s.Equal("month_summary:2023-06", events[0].Subject)
	})

	s.Run("store failure propagates", func() {
		svc, err := New(failingStore{}, clock.Fixed(s.now))
		s.Require().NoError(err)

		_, err = svc.MonthSummary(context.Background(), YearMonth{2023, time.June})
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeInternal))
	})
}

func (s *PaymentServiceSuite) TestMonthStatement() {
	s.Run("carries the month's payments and totals", func() {
		got, err := s.service.MonthStatement(context.Background(), YearMonth{2023, time.June})
		s.Require().NoError(err)

		s.Equal(YearMonth{2023, time.June}, got.Month)
		s.Equal(s.ids([]Payment{s.jun10a, s.jun14, s.jun1, s.jun10b}), s.ids(got.Payments))
		s.True(got.Total.Equal(d("744.5")), "got %s", got.Total)
		s.True(got.Discount.Equal(d("103.5")), "got %s", got.Discount)
		s.Equal(s.now, got.GeneratedAt)
	})

	s.Run("emits statement_exported stamped with the generation time", func() {
		counter := &countingClock{now: s.now}
		pub := &capturingPublisher{}
		svc, err := New(s.store, counter.Clock(), WithAuditPublisher(pub))
		s.Require().NoError(err)

		got, err := svc.MonthStatement(context.Background(), YearMonth{2023, time.June})
		s.Require().NoError(err)

		events := pub.recorded()
		s.Require().Len(events, 1)
		s.Equal(audit.ActionStatementExported, events[0].Action)
		s.Equal("2023-06", events[0].Subject)
		s.Equal(got.GeneratedAt, events[0].Timestamp)
		s.Equal(1, counter.callCount(), "generation time and audit stamp share one clock read")
	})

	s.Run("empty month yields an empty statement", func() {
		got, err := s.service.MonthStatement(context.Background(), YearMonth{2024, time.March})
		s.Require().NoError(err)
		s.Empty(got.Payments)
		s.True(got.Total.IsZero())
		s.True(got.Discount.IsZero())
	})

	s.Run("store failure propagates", func() {
		svc, err := New(failingStore{}, clock.Fixed(s.now))
		s.Require().NoError(err)

		_, err = svc.MonthStatement(context.Background(), YearMonth{2023, time.June})
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeInternal))
	})
}
