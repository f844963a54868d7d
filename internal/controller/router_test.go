package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"gigflow/internal/config"
	"gigflow/internal/entity"
	"gigflow/internal/notify"
	"gigflow/internal/repo"
	"gigflow/internal/service"
	"gigflow/pkg/metrics"

	"github.com/labstack/echo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestServer(t *testing.T, rateLimit config.RateLimitConfig) *echo.Echo {
	t.Helper()
	logger := zaptest.NewLogger(t)
	m := metrics.NewManager(metrics.WithRegistry(prometheus.NewRegistry()))

	services := service.NewServices(service.Dependencies{
		Repos:   repo.NewMemoryRepositories(),
		Inbox:   notify.NewMemoryInbox(20),
		Metrics: m,
		Logger:  logger,
	})

	e := echo.New()
	SetupRoutesHandlers(e, services, Options{Logger: logger, Metrics: m, RateLimit: rateLimit})

	return e
}

func do(t *testing.T, e *echo.Echo, method string, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func postGig(t *testing.T, e *echo.Echo, owner string, title string) entity.GigOutputModel {
	t.Helper()
	body := `{"title":"` + title + `","description":"Charts and tables","budget":1500,"ownerName":"Sarah Chen"}`
	rec := do(t, e, http.MethodPost, "/api/gigs/new?username="+url.QueryEscape(owner), body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[entity.GigOutputModel](t, rec)
}

func postBid(t *testing.T, e *echo.Echo, gigId string, bidder string, price string) *httptest.ResponseRecorder {
	t.Helper()
	body := `{"bidderName":"` + bidder + `","message":"I can do this","price":` + price + `}`
	return do(t, e, http.MethodPost, "/api/gigs/"+gigId+"/bids?username="+bidder, body)
}

func TestPing(t *testing.T) {
	e := newTestServer(t, config.RateLimitConfig{})
	rec := do(t, e, http.MethodGet, "/api/ping", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGigFlow(t *testing.T) {
	e := newTestServer(t, config.RateLimitConfig{})

	gig := postGig(t, e, "sarah", "Build a React Dashboard")
	assert.Equal(t, "Open", gig.Status)

	rec := postBid(t, e, gig.Id, "alice", "1400")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	b1 := decode[entity.BidOutputModel](t, rec)
	assert.Equal(t, "Pending", b1.Status)

	rec = postBid(t, e, gig.Id, "bob", "1300")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/gigs/"+gig.Id+"/bids", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]entity.BidOutputModel](t, rec), 2)

	rec = do(t, e, http.MethodPut, "/api/gigs/"+gig.Id+"/bids/"+b1.Id+"/hire?username=alice", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, e, http.MethodPut, "/api/gigs/"+gig.Id+"/bids/"+b1.Id+"/hire?username=sarah", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	hired := decode[entity.HireOutputModel](t, rec)
	assert.Equal(t, "Assigned", hired.Gig.Status)
	for _, b := range hired.Bids {
		if b.Id == b1.Id {
			assert.Equal(t, "Hired", b.Status)
		} else {
			assert.Equal(t, "Rejected", b.Status)
		}
	}

	rec = do(t, e, http.MethodPut, "/api/gigs/"+gig.Id+"/bids/"+b1.Id+"/hire?username=sarah", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = postBid(t, e, gig.Id, "carol", "1000")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.NotEmpty(t, decode[errorResponse](t, rec).Reason)

	rec = do(t, e, http.MethodGet, "/api/gigs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]entity.GigOutputModel](t, rec), "assigned gigs are hidden by default")

	rec = do(t, e, http.MethodGet, "/api/gigs?openOnly=false&search=react", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]entity.GigOutputModel](t, rec), 1)

	rec = do(t, e, http.MethodGet, "/api/gigs/"+gig.Id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Assigned", decode[entity.GigOutputModel](t, rec).Status)

	rec = do(t, e, http.MethodGet, "/api/notifications?username=alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	notes := decode[[]entity.NotificationOutputModel](t, rec)
	require.Len(t, notes, 1)
	assert.Equal(t, "hired", notes[0].Kind)

	rec = do(t, e, http.MethodGet, "/api/bids/my?username=bob", "")
	require.Equal(t, http.StatusOK, rec.Code)
	bobBids := decode[[]entity.UserBidOutputModel](t, rec)
	require.Len(t, bobBids, 1)
	assert.Equal(t, "Rejected", bobBids[0].Status)
	assert.Equal(t, "Build a React Dashboard", bobBids[0].GigTitle)

	rec = do(t, e, http.MethodGet, "/api/gigs/my?username=sarah", "")
	require.Equal(t, http.StatusOK, rec.Code)
	myGigs := decode[[]entity.OwnerGigOutputModel](t, rec)
	require.Len(t, myGigs, 1)
	assert.Equal(t, 2, myGigs[0].BidsCount)

	rec = do(t, e, http.MethodGet, "/api/dashboard?username=alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	dash := decode[entity.DashboardOutputModel](t, rec)
	assert.Equal(t, entity.DashboardStats{TotalBids: 1, Hired: 1}, dash.Stats)
}

func TestErrorMapping(t *testing.T) {
	e := newTestServer(t, config.RateLimitConfig{})
	gig := postGig(t, e, "sarah", "Logo")

	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   int
	}{
		{"unknown gig", http.MethodGet, "/api/gigs/6f1c2a1e-1d2b-4c3d-9e8f-0a1b2c3d4e5f", "", http.StatusNotFound},
		{"malformed gig id", http.MethodGet, "/api/gigs/42", "", http.StatusNotFound},
		{"bids of unknown gig", http.MethodGet, "/api/gigs/42/bids", "", http.StatusNotFound},
		{"empty message", http.MethodPost, "/api/gigs/" + gig.Id + "/bids?username=alice", `{"message":"   ","price":10}`, http.StatusBadRequest},
		{"missing message", http.MethodPost, "/api/gigs/" + gig.Id + "/bids?username=alice", `{"price":10}`, http.StatusBadRequest},
		{"negative price", http.MethodPost, "/api/gigs/" + gig.Id + "/bids?username=alice", `{"message":"hi","price":-5}`, http.StatusBadRequest},
		{"malformed body", http.MethodPost, "/api/gigs/" + gig.Id + "/bids?username=alice", `{"message":`, http.StatusBadRequest},
		{"owner bids on own gig", http.MethodPost, "/api/gigs/" + gig.Id + "/bids?username=sarah", `{"message":"hi","price":10}`, http.StatusForbidden},
		{"bid without username", http.MethodPost, "/api/gigs/" + gig.Id + "/bids", `{"message":"hi","price":10}`, http.StatusUnauthorized},
		{"hire unknown bid", http.MethodPut, "/api/gigs/" + gig.Id + "/bids/42/hire?username=sarah", "", http.StatusNotFound},
		{"hire without username", http.MethodPut, "/api/gigs/" + gig.Id + "/bids/42/hire", "", http.StatusUnauthorized},
		{"gig budget too low", http.MethodPost, "/api/gigs/new?username=sarah", `{"title":"t","description":"d","budget":5}`, http.StatusBadRequest},
		{"blank gig title", http.MethodPost, "/api/gigs/new?username=sarah", `{"title":"  ","description":"d","budget":50}`, http.StatusBadRequest},
		{"limit too large", http.MethodGet, "/api/gigs?limit=500", "", http.StatusBadRequest},
		{"dashboard without username", http.MethodGet, "/api/dashboard", "", http.StatusUnauthorized},
		{"my bids without username", http.MethodGet, "/api/bids/my", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestRateLimit(t *testing.T) {
	e := newTestServer(t, config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2})

	postGig(t, e, "sarah", "One")
	postGig(t, e, "sarah", "Two")

	rec := do(t, e, http.MethodPost, "/api/gigs/new?username=sarah", `{"title":"Three","description":"d","budget":50}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// other users and reads are not affected
	postGig(t, e, "mike", "Four")
	rec = do(t, e, http.MethodGet, "/api/gigs/my?username=sarah", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserRateLimiter_EvictsIdleKeys(t *testing.T) {
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	l := newUserRateLimiter(0.001, 1)
	l.now = func() time.Time { return now }

	for i := 0; i < 500; i++ {
		assert.True(t, l.allow(fmt.Sprintf("user-%d", i)))
	}
	assert.Len(t, l.visitors, 500)

	now = now.Add(limiterIdleTTL)
	assert.True(t, l.allow("sarah"))
	assert.Len(t, l.visitors, 1)
	assert.False(t, l.allow("sarah"))
}

func TestUserRateLimiter_CapsKeys(t *testing.T) {
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	l := newUserRateLimiter(0.001, 1)
	l.now = func() time.Time { return now }
	l.maxKeys = 3

	for i := 0; i < 3; i++ {
		assert.True(t, l.allow(fmt.Sprintf("user-%d", i)))
	}

	// fresh names beyond the cap share one bucket
	assert.True(t, l.allow("fresh-1"))
	assert.False(t, l.allow("fresh-2"))
	assert.False(t, l.allow("fresh-3"))
	assert.Len(t, l.visitors, 3)

	assert.False(t, l.allow("user-0"))
}

func TestMetricsEndpoint(t *testing.T) {
	e := newTestServer(t, config.RateLimitConfig{})
	postGig(t, e, "sarah", "Logo")

	rec := do(t, e, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gigflow_gigs_created_total 1")
	assert.Contains(t, rec.Body.String(), `route="/api/gigs/new"`)
}
