// Package handler exposes the payment reporting API over HTTP.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"paylens/internal/audit"
	"paylens/internal/payments"
	querymetrics "paylens/internal/payments/metrics"
	"paylens/internal/platform/metrics"
	"paylens/internal/platform/middleware"
	"paylens/internal/transport/http/shared"
	dErrors "paylens/pkg/domain-errors"
)

// Service defines the interface for payment reporting operations.
type Service interface {
	PaymentsByDateAsc(ctx context.Context) ([]payments.Payment, error)
	PaymentsByDateDesc(ctx context.Context) ([]payments.Payment, error)
	PaymentsByItemCountAsc(ctx context.Context) ([]payments.Payment, error)
	PaymentsByItemCountDesc(ctx context.Context) ([]payments.Payment, error)
	PaymentsForMonth(ctx context.Context, month payments.YearMonth) ([]payments.Payment, error)
	PaymentsForCurrentMonth(ctx context.Context) ([]payments.Payment, error)
	PaymentsForLastDays(ctx context.Context, days int) ([]payments.Payment, error)
	SingleItemPayments(ctx context.Context) ([]payments.Payment, error)
	ProductsSoldInCurrentMonth(ctx context.Context) ([]string, error)
	ItemsForUserEmail(ctx context.Context, email string) ([]payments.PaymentItem, error)
	PaymentsWithValueOver(ctx context.Context, threshold int64) ([]payments.Payment, error)
	MonthSummary(ctx context.Context, month payments.YearMonth) (payments.MonthSummary, error)
	MonthStatement(ctx context.Context, month payments.YearMonth) (payments.MonthStatement, error)
	RecordPayment(ctx context.Context, payment payments.Payment) (payments.Payment, error)
}

// AuditTrail reads back recorded audit events. Nil when the configured audit
// backend is write-only.
type AuditTrail interface {
	ListByActions(ctx context.Context, actions []string, limit int) ([]audit.Event, error)
}

// Handler wires reporting endpoints to the payment query service.
type Handler struct {
	service      Service
	trail        AuditTrail
	logger       *slog.Logger
	httpMetrics  *metrics.Metrics
	queryMetrics *querymetrics.Metrics
	jwtValidator middleware.JWTValidator
	apiKeyHash   string
}

// New creates a reporting Handler. trail may be nil; the trail endpoint then
// answers 503.
func New(
	service Service,
	trail AuditTrail,
	logger *slog.Logger,
	httpMetrics *metrics.Metrics,
	queryMetrics *querymetrics.Metrics,
	jwtValidator middleware.JWTValidator,
	apiKeyHash string,
) *Handler {
	return &Handler{
		service:      service,
		trail:        trail,
		logger:       logger,
		httpMetrics:  httpMetrics,
		queryMetrics: queryMetrics,
		jwtValidator: jwtValidator,
		apiKeyHash:   apiKeyHash,
	}
}

// Register registers the reporting routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	api := chi.NewRouter()
	api.Use(middleware.Recovery(h.logger))
	api.Use(middleware.RequestID)
	api.Use(middleware.ClientMetadata)
	api.Use(middleware.Logger(h.logger))
	api.Use(middleware.Timeout(30 * time.Second))
	api.Use(middleware.ContentTypeJSON)
	api.Use(middleware.LatencyMiddleware(h.httpMetrics))
	api.Use(middleware.RequireAuth(h.jwtValidator, h.logger))

	api.Get("/reports/payments", h.handleListPayments)
	api.Get("/reports/payments/month/{month}", h.handlePaymentsForMonth)
	api.Get("/reports/payments/current-month", h.handlePaymentsForCurrentMonth)
	api.Get("/reports/payments/recent", h.handleRecentPayments)
	api.Get("/reports/payments/single-item", h.handleSingleItemPayments)
	api.Get("/reports/payments/over/{threshold}", h.handlePaymentsOverValue)
	api.Get("/reports/products/current-month", h.handleProductsForCurrentMonth)
	api.Get("/reports/customers/items", h.handleCustomerItems)
	api.Get("/reports/months/{month}/summary", h.handleMonthSummary)
	api.Get("/reports/months/{month}/statement", h.handleMonthStatement)
	api.With(middleware.RequireAPIKey(h.apiKeyHash, h.logger)).Post("/payments", h.handleRecordPayment)
	api.Get("/audit/trail", h.handleAuditTrail)

	r.Mount("/", api)
}

// handleListPayments serves the full snapshot under a caller-chosen order.
func (h *Handler) handleListPayments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		list []payments.Payment
		err  error
	)
	switch sort := r.URL.Query().Get("sort"); sort {
	case "", "date_desc":
		list, err = h.service.PaymentsByDateDesc(ctx)
	case "date_asc":
		list, err = h.service.PaymentsByDateAsc(ctx)
	case "items_asc":
		list, err = h.service.PaymentsByItemCountAsc(ctx)
	case "items_desc":
		list, err = h.service.PaymentsByItemCountDesc(ctx)
	default:
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest,
			fmt.Sprintf("unknown sort %q, want date_asc, date_desc, items_asc or items_desc", sort)))
		return
	}
	if err != nil {
		h.writeServiceError(ctx, w, "list payments", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, FromPayments(list))
}

func (h *Handler) handlePaymentsForMonth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	month, err := payments.ParseYearMonth(chi.URLParam(r, "month"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	list, err := h.service.PaymentsForMonth(ctx, month)
	if err != nil {
		h.writeServiceError(ctx, w, "payments for month", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, FromPayments(list))
}

func (h *Handler) handlePaymentsForCurrentMonth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.service.PaymentsForCurrentMonth(ctx)
	if err != nil {
		h.writeServiceError(ctx, w, "payments for current month", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, FromPayments(list))
}

func (h *Handler) handleRecentPayments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := r.URL.Query().Get("days")
	if raw == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "days query parameter is required"))
		return
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("days must be an integer, got %q", raw)))
		return
	}

	list, err := h.service.PaymentsForLastDays(ctx, days)
	if err != nil {
		h.writeServiceError(ctx, w, "recent payments", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, FromPayments(list))
}

func (h *Handler) handleSingleItemPayments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.service.SingleItemPayments(ctx)
	if err != nil {
		h.writeServiceError(ctx, w, "single-item payments", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, FromPayments(list))
}

func (h *Handler) handlePaymentsOverValue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := chi.URLParam(r, "threshold")
	threshold, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("threshold must be an integer, got %q", raw)))
		return
	}

	list, err := h.service.PaymentsWithValueOver(ctx, threshold)
	if err != nil {
		h.writeServiceError(ctx, w, "payments over value", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, FromPayments(list))
}

func (h *Handler) handleProductsForCurrentMonth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.service.ProductsSoldInCurrentMonth(ctx)
	if err != nil {
		h.writeServiceError(ctx, w, "products for current month", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, FromProducts(products))
}

func (h *Handler) handleCustomerItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := r.URL.Query().Get("email")
	if email == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "email query parameter is required"))
		return
	}

	items, err := h.service.ItemsForUserEmail(ctx, email)
	if err != nil {
		h.writeServiceError(ctx, w, "customer items", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, FromCustomerItems(email, items))
}

func (h *Handler) handleMonthSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	month, err := payments.ParseYearMonth(chi.URLParam(r, "month"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	summary, err := h.service.MonthSummary(ctx, month)
	if err != nil {
		h.writeServiceError(ctx, w, "month summary", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, FromMonthSummary(summary))
}

func (h *Handler) handleMonthStatement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	month, err := payments.ParseYearMonth(chi.URLParam(r, "month"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = formatXLSX
	}
	if format != formatXLSX && format != formatPDF {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest,
			fmt.Sprintf("unknown format %q, want xlsx or pdf", format)))
		return
	}

	statement, err := h.service.MonthStatement(ctx, month)
	if err != nil {
		h.writeServiceError(ctx, w, "month statement", err)
		return
	}

	var (
		doc         []byte
		contentType string
	)
	switch format {
	case formatXLSX:
		doc, err = BuildStatementXLSX(statement)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case formatPDF:
		doc, err = BuildStatementPDF(statement)
		contentType = "application/pdf"
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to render statement",
			"request_id", middleware.GetRequestID(ctx),
			"month", month.String(),
			"format", format,
			"error", err.Error(),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to render statement"))
		return
	}

	if h.queryMetrics != nil {
		h.queryMetrics.IncrementStatementsExported(format)
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("statement-%s.%s", month.String(), format)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (h *Handler) handleRecordPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := shared.DecodeAndPrepare[RecordPaymentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	saved, err := h.service.RecordPayment(ctx, req.Payment())
	if err != nil {
		h.writeServiceError(ctx, w, "record payment", err)
		return
	}

	h.logger.InfoContext(ctx, "payment recorded",
		"request_id", requestID,
		"payment_id", saved.ID,
	)
	shared.WriteJSON(w, http.StatusCreated, FromPayment(saved))
}

func (h *Handler) handleAuditTrail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.trail == nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeUnavailable,
			"audit trail is not readable with the configured audit backend"))
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("limit must be a non-negative integer, got %q", raw)))
			return
		}
		limit = parsed
	}

	events, err := h.trail.ListByActions(ctx, r.URL.Query()["action"], limit)
	if err != nil {
		h.writeServiceError(ctx, w, "audit trail", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, FromAuditEvents(events))
}

// writeServiceError logs the failure and maps it onto the wire. Client-class
// codes log as warnings; everything else is an error.
func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeInternal, dErrors.CodeUnavailable:
		h.logger.ErrorContext(ctx, "report operation failed",
			"operation", op,
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
	default:
		h.logger.WarnContext(ctx, "report operation rejected",
			"operation", op,
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
	}
	shared.WriteError(w, err)
}
