package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"paylens/internal/audit"
	jwttoken "paylens/internal/jwt_token"
	"paylens/internal/payments"
	"paylens/internal/payments/handler/mocks"
	"paylens/internal/platform/secrets"
	dErrors "paylens/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/payments-mocks.go -package=mocks Service,AuditTrail
type PaymentHandlerSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *PaymentHandlerSuite) SetupSuite() {
	s.ctx = context.Background()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerSuite))
}

const testAPIKey = "reporting-ingest-key"

// handlerFixture routes requests through the full middleware chain with a
// real JWT validator, so tests exercise exactly what production serves.
type handlerFixture struct {
	router  http.Handler
	service *mocks.MockService
	trail   *mocks.MockAuditTrail
	token   string
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockService := mocks.NewMockService(ctrl)
	mockTrail := mocks.NewMockAuditTrail(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens := jwttoken.NewJWTService("test-signing-key", "paylens", "paylens-reports")
	keyHash, err := secrets.Hash(testAPIKey)
	require.NoError(t, err)

	h := New(mockService, mockTrail, logger, nil, nil, jwttoken.NewJWTServiceAdapter(tokens), keyHash)
	r := chi.NewRouter()
	h.Register(r)

	token, err := tokens.GenerateAccessToken(uuid.New(), "analyst@example.com", time.Hour)
	require.NoError(t, err)

	return &handlerFixture{router: r, service: mockService, trail: mockTrail, token: token}
}

func (f *handlerFixture) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+f.token)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *handlerFixture) post(t *testing.T, path string, body []byte, apiKey string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+f.token)
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func testItem(name, regular, final string) payments.PaymentItem {
	return payments.PaymentItem{
		Name:         name,
		RegularPrice: decimal.RequireFromString(regular),
		FinalPrice:   decimal.RequireFromString(final),
	}
}

func testPayment(email string, paidAt time.Time, items ...payments.PaymentItem) payments.Payment {
	return payments.Payment{
		ID:     uuid.New(),
		User:   payments.User{ID: uuid.New(), Email: email},
		PaidAt: paidAt,
		Items:  items,
	}
}

func (s *PaymentHandlerSuite) TestListPayments_DefaultsToNewestFirst() {
	f := newHandlerFixture(s.T())
	list := []payments.Payment{
		testPayment("bob@example.com", time.Date(2023, 6, 14, 9, 0, 0, 0, time.UTC), testItem("Lemon", "4", "3.5")),
		testPayment("ann@example.com", time.Date(2023, 6, 10, 12, 0, 0, 0, time.UTC), testItem("Kiwi", "2", "2")),
	}
	f.service.EXPECT().PaymentsByDateDesc(gomock.Any()).Return(list, nil)

	rec := f.get(s.T(), "/reports/payments")

	assert.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(s.T(), rec)
	assert.Equal(s.T(), float64(2), body["count"])
	got := body["payments"].([]any)
	first := got[0].(map[string]any)
	assert.Equal(s.T(), list[0].ID.String(), first["id"])
	assert.Equal(s.T(), "3.5", first["total"])
}

func (s *PaymentHandlerSuite) TestListPayments_SortVariants() {
	cases := []struct {
		sort   string
		expect func(f *handlerFixture) *gomock.Call
	}{
		{"date_asc", func(f *handlerFixture) *gomock.Call { return f.service.EXPECT().PaymentsByDateAsc(gomock.Any()) }},
		{"date_desc", func(f *handlerFixture) *gomock.Call { return f.service.EXPECT().PaymentsByDateDesc(gomock.Any()) }},
		{"items_asc", func(f *handlerFixture) *gomock.Call { return f.service.EXPECT().PaymentsByItemCountAsc(gomock.Any()) }},
		{"items_desc", func(f *handlerFixture) *gomock.Call { return f.service.EXPECT().PaymentsByItemCountDesc(gomock.Any()) }},
	}
	for _, tc := range cases {
		s.Run(tc.sort, func() {
			f := newHandlerFixture(s.T())
			tc.expect(f).Return([]payments.Payment{}, nil)

			rec := f.get(s.T(), "/reports/payments?sort="+tc.sort)

			assert.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())
			assert.Contains(s.T(), rec.Body.String(), `"payments":[]`)
		})
	}
}

func (s *PaymentHandlerSuite) TestListPayments_RejectsUnknownSort() {
	f := newHandlerFixture(s.T())

	rec := f.get(s.T(), "/reports/payments?sort=amount")

	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
	body := decodeBody(s.T(), rec)
	assert.Equal(s.T(), "bad_request", body["error"])
	assert.Contains(s.T(), body["error_description"], "unknown sort")
}

func (s *PaymentHandlerSuite) TestListPayments_StoreFailureStaysOpaque() {
	f := newHandlerFixture(s.T())
	f.service.EXPECT().PaymentsByDateDesc(gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeInternal, "payment store unavailable"))

	rec := f.get(s.T(), "/reports/payments")

	assert.Equal(s.T(), http.StatusInternalServerError, rec.Code)
	body := decodeBody(s.T(), rec)
	assert.Equal(s.T(), "internal_error", body["error"])
	assert.NotContains(s.T(), rec.Body.String(), "payment store unavailable")
}

func (s *PaymentHandlerSuite) TestPaymentsForMonth() {
	f := newHandlerFixture(s.T())
	june := payments.YearMonth{Year: 2023, Month: time.June}
	list := []payments.Payment{testPayment("ann@example.com", time.Date(2023, 6, 10, 12, 0, 0, 0, time.UTC))}
	f.service.EXPECT().PaymentsForMonth(gomock.Any(), june).Return(list, nil)

	rec := f.get(s.T(), "/reports/payments/month/2023-06")

	assert.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(s.T(), rec)
	assert.Equal(s.T(), float64(1), body["count"])
}

func (s *PaymentHandlerSuite) TestPaymentsForMonth_RejectsBadMonth() {
	f := newHandlerFixture(s.T())

	rec := f.get(s.T(), "/reports/payments/month/2023-13")

	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
	body := decodeBody(s.T(), rec)
	assert.Equal(s.T(), "invalid_input", body["error"])
}

func (s *PaymentHandlerSuite) TestPaymentsForCurrentMonth() {
	f := newHandlerFixture(s.T())
	f.service.EXPECT().PaymentsForCurrentMonth(gomock.Any()).Return([]payments.Payment{}, nil)

	rec := f.get(s.T(), "/reports/payments/current-month")

	assert.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(s.T(), rec.Body.String(), `"payments":[]`)
}

func (s *PaymentHandlerSuite) TestRecentPayments() {
	s.Run("passes days through", func() {
		f := newHandlerFixture(s.T())
		f.service.EXPECT().PaymentsForLastDays(gomock.Any(), 30).Return([]payments.Payment{}, nil)

		rec := f.get(s.T(), "/reports/payments/recent?days=30")

		assert.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("requires days", func() {
		f := newHandlerFixture(s.T())

		rec := f.get(s.T(), "/reports/payments/recent")

		assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
		body := decodeBody(s.T(), rec)
		assert.Contains(s.T(), body["error_description"], "days")
	})

	s.Run("rejects non-integer days", func() {
		f := newHandlerFixture(s.T())

		rec := f.get(s.T(), "/reports/payments/recent?days=soon")

		assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
	})

	s.Run("negative days rejected by the service", func() {
		f := newHandlerFixture(s.T())
		f.service.EXPECT().PaymentsForLastDays(gomock.Any(), -3).
			Return(nil, dErrors.New(dErrors.CodeInvalidInput, "days must not be negative"))

		rec := f.get(s.T(), "/reports/payments/recent?days=-3")

		assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
		body := decodeBody(s.T(), rec)
		assert.Equal(s.T(), "invalid_input", body["error"])
	})
}

func (s *PaymentHandlerSuite) TestSingleItemPayments() {
	f := newHandlerFixture(s.T())
	list := []payments.Payment{testPayment("ann@example.com", time.Date(2023, 6, 1, 8, 0, 0, 0, time.UTC), testItem("Basket", "12", "10"))}
	f.service.EXPECT().SingleItemPayments(gomock.Any()).Return(list, nil)

	rec := f.get(s.T(), "/reports/payments/single-item")

	assert.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(s.T(), rec)
	assert.Equal(s.T(), float64(1), body["count"])
}

func (s *PaymentHandlerSuite) TestPaymentsOverValue() {
	s.Run("parses the threshold", func() {
		f := newHandlerFixture(s.T())
		f.service.EXPECT().PaymentsWithValueOver(gomock.Any(), int64(1000)).Return([]payments.Payment{}, nil)

		rec := f.get(s.T(), "/reports/payments/over/1000")

		assert.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("rejects a non-integer threshold", func() {
		f := newHandlerFixture(s.T())

		rec := f.get(s.T(), "/reports/payments/over/12.5")

		assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
		body := decodeBody(s.T(), rec)
		assert.Equal(s.T(), "bad_request", body["error"])
	})
}

func (s *PaymentHandlerSuite) TestProductsForCurrentMonth() {
	f := newHandlerFixture(s.T())
	f.service.EXPECT().ProductsSoldInCurrentMonth(gomock.Any()).Return([]string{"Kiwi", "Lemon"}, nil)

	rec := f.get(s.T(), "/reports/products/current-month")

	assert.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(s.T(), rec)
	assert.Equal(s.T(), []any{"Kiwi", "Lemon"}, body["products"])
	assert.Equal(s.T(), float64(2), body["count"])
}

func (s *PaymentHandlerSuite) TestProductsForCurrentMonth_EmptyIsAList() {
	f := newHandlerFixture(s.T())
	f.service.EXPECT().ProductsSoldInCurrentMonth(gomock.Any()).Return(nil, nil)

	rec := f.get(s.T(), "/reports/products/current-month")

	assert.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(s.T(), rec.Body.String(), `"products":[]`)
	assert.NotContains(s.T(), rec.Body.String(), "null")
}

func (s *PaymentHandlerSuite) TestCustomerItems() {
	f := newHandlerFixture(s.T())
	items := []payments.PaymentItem{testItem("Kiwi", "2", "2"), testItem("Lemon", "4", "3.5")}
	f.service.EXPECT().ItemsForUserEmail(gomock.Any(), "ann.smith@example.com").Return(items, nil)

	rec := f.get(s.T(), "/reports/customers/items?email=ann.smith@example.com")

	assert.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(s.T(), rec)
	assert.Equal(s.T(), "Ann Smith", body["customer"])
	assert.Equal(s.T(), float64(2), body["count"])
	got := body["items"].([]any)
	first := got[0].(map[string]any)
	assert.Equal(s.T(), "Kiwi", first["name"])
}

func (s *PaymentHandlerSuite) TestCustomerItems_RequiresEmail() {
	f := newHandlerFixture(s.T())

	rec := f.get(s.T(), "/reports/customers/items")

	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
	body := decodeBody(s.T(), rec)
	assert.Contains(s.T(), body["error_description"], "email")
}

func (s *PaymentHandlerSuite) TestMonthSummary() {
	f := newHandlerFixture(s.T())
	june := payments.YearMonth{Year: 2023, Month: time.June}
	f.service.EXPECT().MonthSummary(gomock.Any(), june).Return(payments.MonthSummary{
		Month:        june,
		PaymentCount: 4,
		Total:        decimal.RequireFromString("744.5"),
		Discount:     decimal.RequireFromString("103.5"),
		Products:     []string{"Kiwi", "Monitor"},
	}, nil)

	rec := f.get(s.T(), "/reports/months/2023-06/summary")

	assert.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(s.T(), rec)
	assert.Equal(s.T(), "2023-06", body["month"])
	assert.Equal(s.T(), float64(4), body["payment_count"])
	assert.Equal(s.T(), "744.5", body["total"])
	assert.Equal(s.T(), "103.5", body["discount"])
	assert.Equal(s.T(), []any{"Kiwi", "Monitor"}, body["products"])
}

func (s *PaymentHandlerSuite) statementFixture() payments.MonthStatement {
	june := payments.YearMonth{Year: 2023, Month: time.June}
	pay := testPayment("ann@example.com", time.Date(2023, 6, 10, 12, 0, 0, 0, time.UTC),
		testItem("Kiwi", "2", "2"), testItem("Monitor", "500", "450"))
	return payments.MonthStatement{
		Month:       june,
		GeneratedAt: time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC),
		Payments:    []payments.Payment{pay},
		Total:       pay.Total(),
		Discount:    pay.DiscountTotal(),
	}
}

func (s *PaymentHandlerSuite) TestMonthStatement_DefaultsToXLSX() {
	f := newHandlerFixture(s.T())
	june := payments.YearMonth{Year: 2023, Month: time.June}
	f.service.EXPECT().MonthStatement(gomock.Any(), june).Return(s.statementFixture(), nil)

	rec := f.get(s.T(), "/reports/months/2023-06/statement")

	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Equal(s.T(),
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Equal(s.T(), `attachment; filename="statement-2023-06.xlsx"`, rec.Header().Get("Content-Disposition"))
	// XLSX is a zip archive.
	assert.True(s.T(), bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")))
}

func (s *PaymentHandlerSuite) TestMonthStatement_PDF() {
	f := newHandlerFixture(s.T())
	june := payments.YearMonth{Year: 2023, Month: time.June}
	f.service.EXPECT().MonthStatement(gomock.Any(), june).Return(s.statementFixture(), nil)

	rec := f.get(s.T(), "/reports/months/2023-06/statement?format=pdf")

	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Equal(s.T(), "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(s.T(), `attachment; filename="statement-2023-06.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.True(s.T(), strings.HasPrefix(rec.Body.String(), "%PDF"))
}

func (s *PaymentHandlerSuite) TestMonthStatement_RejectsUnknownFormat() {
	f := newHandlerFixture(s.T())

	rec := f.get(s.T(), "/reports/months/2023-06/statement?format=csv")

	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
	body := decodeBody(s.T(), rec)
	assert.Contains(s.T(), body["error_description"], "unknown format")
}

func (s *PaymentHandlerSuite) TestRecordPayment() {
	f := newHandlerFixture(s.T())
	userID := uuid.New()
	saved := testPayment("ann@example.com", time.Date(2023, 6, 10, 12, 0, 0, 0, time.UTC), testItem("Kiwi", "2", "2"))
	f.service.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p payments.Payment) (payments.Payment, error) {
			assert.Equal(s.T(), userID, p.User.ID)
			assert.Equal(s.T(), "ann@example.com", p.User.Email)
			assert.Len(s.T(), p.Items, 1)
			return saved, nil
		})

	body, err := json.Marshal(RecordPaymentRequest{
		User:   RecordUserRequest{ID: userID.String(), Email: "ann@example.com"},
		PaidAt: time.Date(2023, 6, 10, 12, 0, 0, 0, time.UTC),
		Items:  []RecordItemRequest{{Name: "Kiwi", RegularPrice: decimal.RequireFromString("2"), FinalPrice: decimal.RequireFromString("2")}},
	})
	require.NoError(s.T(), err)

	rec := f.post(s.T(), "/payments", body, testAPIKey)

	assert.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())
	resp := decodeBody(s.T(), rec)
	assert.Equal(s.T(), saved.ID.String(), resp["id"])
}

func (s *PaymentHandlerSuite) TestRecordPayment_RejectsMalformedBody() {
	f := newHandlerFixture(s.T())

	rec := f.post(s.T(), "/payments", []byte("{not json"), testAPIKey)

	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
	body := decodeBody(s.T(), rec)
	assert.Equal(s.T(), "bad_request", body["error"])
}

func (s *PaymentHandlerSuite) TestRecordPayment_RejectsBadUserID() {
	f := newHandlerFixture(s.T())

	body, err := json.Marshal(RecordPaymentRequest{
		User:   RecordUserRequest{ID: "not-a-uuid", Email: "ann@example.com"},
		PaidAt: time.Date(2023, 6, 10, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(s.T(), err)

	rec := f.post(s.T(), "/payments", body, testAPIKey)

	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
}

func (s *PaymentHandlerSuite) TestRecordPayment_ConflictSurfacesAs409() {
	f := newHandlerFixture(s.T())
	userID := uuid.New()
	f.service.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).
		Return(payments.Payment{}, dErrors.New(dErrors.CodeConflict, "payment already recorded"))

	body, err := json.Marshal(RecordPaymentRequest{
		User:   RecordUserRequest{ID: userID.String(), Email: "ann@example.com"},
		PaidAt: time.Date(2023, 6, 10, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(s.T(), err)

	rec := f.post(s.T(), "/payments", body, testAPIKey)

	assert.Equal(s.T(), http.StatusConflict, rec.Code)
	resp := decodeBody(s.T(), rec)
	assert.Equal(s.T(), "conflict", resp["error"])
}

func (s *PaymentHandlerSuite) TestRecordPayment_RequiresAPIKey() {
	f := newHandlerFixture(s.T())

	rec := f.post(s.T(), "/payments", []byte(`{}`), "")

	assert.Equal(s.T(), http.StatusUnauthorized, rec.Code)
}

func (s *PaymentHandlerSuite) TestRecordPayment_RejectsWrongAPIKey() {
	f := newHandlerFixture(s.T())

	rec := f.post(s.T(), "/payments", []byte(`{}`), "wrong-key")

	assert.Equal(s.T(), http.StatusUnauthorized, rec.Code)
}

func (s *PaymentHandlerSuite) TestAuditTrail() {
	f := newHandlerFixture(s.T())
	events := []audit.Event{{
		ID:        uuid.New(),
		Timestamp: time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC),
		Actor:     "user-1",
		Action:    "report_viewed",
		Subject:   "by_date_desc",
	}}
	f.trail.EXPECT().ListByActions(gomock.Any(), []string{"report_viewed"}, 5).Return(events, nil)

	rec := f.get(s.T(), "/audit/trail?action=report_viewed&limit=5")

	assert.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(s.T(), rec)
	assert.Equal(s.T(), float64(1), body["count"])
	got := body["events"].([]any)
	first := got[0].(map[string]any)
	assert.Equal(s.T(), "report_viewed", first["action"])
}

func (s *PaymentHandlerSuite) TestAuditTrail_NoFilters() {
	f := newHandlerFixture(s.T())
	f.trail.EXPECT().ListByActions(gomock.Any(), []string(nil), 0).Return(nil, nil)

	rec := f.get(s.T(), "/audit/trail")

	assert.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(s.T(), rec.Body.String(), `"events":[]`)
}

func (s *PaymentHandlerSuite) TestAuditTrail_RejectsBadLimit() {
	for _, limit := range []string{"-1", "soon"} {
		s.Run(limit, func() {
			f := newHandlerFixture(s.T())

			rec := f.get(s.T(), "/audit/trail?limit="+limit)

			assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
		})
	}
}

func (s *PaymentHandlerSuite) TestAuditTrail_UnavailableWithoutReadableStore() {
	f := newHandlerFixture(s.T())
	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := jwttoken.NewJWTService("test-signing-key", "paylens", "paylens-reports")

	h := New(mocks.NewMockService(ctrl), nil, logger, nil, nil, jwttoken.NewJWTServiceAdapter(tokens), "")
	r := chi.NewRouter()
	h.Register(r)

	req := httptest.NewRequest(http.MethodGet, "/audit/trail", nil)
	req.Header.Set("Authorization", "Bearer "+f.token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusServiceUnavailable, rec.Code)
	body := decodeBody(s.T(), rec)
	assert.Equal(s.T(), "unavailable", body["error"])
}

func (s *PaymentHandlerSuite) TestRejectsMissingToken() {
	f := newHandlerFixture(s.T())

	req := httptest.NewRequest(http.MethodGet, "/reports/payments", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusUnauthorized, rec.Code)
	body := decodeBody(s.T(), rec)
	assert.Equal(s.T(), "unauthorized", body["error"])
}

func (s *PaymentHandlerSuite) TestRejectsForgedToken() {
	f := newHandlerFixture(s.T())

	req := httptest.NewRequest(http.MethodGet, "/reports/payments", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusUnauthorized, rec.Code)
}
