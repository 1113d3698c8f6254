package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	tokens := &Tokens{Key: []byte("secret")}
	raw, err := tokens.Issue("analyst", time.Hour)
	require.NoError(t, err)

	subject, err := tokens.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "analyst", subject)

	other := &Tokens{Key: []byte("other")}
	_, err = other.Parse(raw)
	assert.Error(t, err)
}

func TestIssueErrors(t *testing.T) {
	_, err := (&Tokens{}).Issue("analyst", time.Hour)
	assert.ErrorIs(t, err, ErrNoKey)

	_, err = (&Tokens{Key: []byte("secret")}).Issue("", time.Hour)
	assert.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	tokens := &Tokens{Key: []byte("secret")}
	raw, err := tokens.Issue("analyst", -time.Minute)
	require.NoError(t, err)
	_, err = tokens.Parse(raw)
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	tokens := &Tokens{Key: []byte("secret")}
	var seen string
	h := tokens.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = Subject(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	raw, err := tokens.Issue("analyst", time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "analyst", seen)
}

func TestLimitMiddleware(t *testing.T) {
	limiter := NewIPRateLimiter(0.001, 2)
	h := limiter.LimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// a different port on the same host shares the budget
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:6000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	req.RemoteAddr = "10.0.0.2:5000"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLimiterEvictsIdleClients(t *testing.T) {
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewIPRateLimiter(0.001, 1)
	limiter.now = func() time.Time { return clock }

	assert.True(t, limiter.allow("10.0.0.1"))
	assert.False(t, limiter.allow("10.0.0.1"))
	clock = clock.Add(time.Minute)
	assert.True(t, limiter.allow("10.0.0.2"))
	assert.Equal(t, 2, limiter.Len())

	// 10.0.0.1 has been quiet for a full TTL, 10.0.0.2 has not
	clock = clock.Add(IdleTTL - time.Minute)
	assert.True(t, limiter.allow("10.0.0.3"))
	assert.Equal(t, 2, limiter.Len())

	// within the TTL a second sweep is skipped
	clock = clock.Add(IdleTTL / 2)
	limiter.allow("10.0.0.3")
	assert.Equal(t, 2, limiter.Len())
}
