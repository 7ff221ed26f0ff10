package test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	jwttoken "paylens/internal/jwt_token"
	"paylens/internal/payments"
	"paylens/internal/payments/handler"
	"paylens/internal/platform/clock"
	httptransport "paylens/internal/transport/http"
	"paylens/pkg/testutil"
)

// TestRouterScaffold smoke-tests the fully wired router: in-memory store,
// demo seed, real JWT validation, no external backends.
func TestRouterScaffold(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.Fixed(time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC))

	store := payments.NewInMemoryStore()
	seeded, err := payments.SeedDemo(context.Background(), store, clk())
	require.NoError(t, err)
	require.NotZero(t, seeded)

	svc, err := payments.New(store, clk, payments.WithLogger(log))
	require.NoError(t, err)

	tokens := jwttoken.NewJWTService("scaffold-signing-key", "paylens", "paylens-reports")
	reports := handler.New(svc, nil, log, nil, nil, jwttoken.NewJWTServiceAdapter(tokens), "")
	router := httptransport.NewRouter(log, nil, reports)

	token, err := tokens.GenerateAccessToken(uuid.New(), "smoke@example.com", time.Hour)
	require.NoError(t, err)

	testutil.Given(t, "the wired HTTP router", func(t *testing.T) {
		testutil.When(t, "probing GET /healthz", func(t *testing.T) {
			rec := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))

			testutil.Then(t, "it should report ok", func(t *testing.T) {
				testutil.AssertStatus(t, rec, http.StatusOK)
				testutil.AssertJSONContains(t, rec, "status", "ok")
			})
		})

		testutil.When(t, "listing payments without a token", func(t *testing.T) {
			rec := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/v1/reports/payments"))

			testutil.Then(t, "it should reject the request", func(t *testing.T) {
				testutil.AssertStatusAndError(t, rec, http.StatusUnauthorized, "unauthorized")
			})
		})

		testutil.When(t, "listing payments with a valid token", func(t *testing.T) {
			req := testutil.WithBearer(testutil.NewRequest(t, http.MethodGet, "/api/v1/reports/payments"), token)
			rec := testutil.DoRequest(router, req)

			testutil.Then(t, "it should serve the seeded snapshot", func(t *testing.T) {
				testutil.AssertStatus(t, rec, http.StatusOK)
				resp := testutil.UnmarshalResponse[struct {
					Count int `json:"count"`
				}](t, rec)
				require.Equal(t, seeded, resp.Count)
			})
		})

		testutil.When(t, "scraping GET /metrics", func(t *testing.T) {
			rec := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))

			testutil.Then(t, "it should expose prometheus text", func(t *testing.T) {
				testutil.AssertStatus(t, rec, http.StatusOK)
				require.Contains(t, rec.Body.String(), "go_goroutines")
			})
		})
	})
}
