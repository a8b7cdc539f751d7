package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	api "lifeline/internal/api/http"
	"lifeline/internal/domain"
	"lifeline/internal/metrics"
	"lifeline/internal/security"
	"lifeline/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const cookieName = "lifeline_session"

type harness struct {
	identity *MockIdentityService
	donors   *MockDonorService
	workflow *MockWorkflow
	matching *MockMatching
	store    *session.RedisStore
	tokens   security.TokenManager
	mr       *miniredis.Miniredis
	dbErr    error
	router   http.Handler
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })

	h := &harness{
		identity: new(MockIdentityService),
		donors:   new(MockDonorService),
		workflow: new(MockWorkflow),
		matching: new(MockMatching),
		store:    session.NewRedisStore(client, session.NewCircuitBreaker("http-test", time.Minute), time.Hour),
		tokens:   security.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour),
		mr:       mr,
	}
	h.router = api.NewRouter(api.Dependencies{
		Identity:    h.identity,
		Donors:      h.donors,
		Workflow:    h.workflow,
		Matching:    h.matching,
		Sessions:    h.store,
		Tokens:      h.tokens,
		Cookie:      api.CookieConfig{Name: cookieName, TTL: time.Hour},
		Metrics:     metrics.New(),
		MetricsPath: "/metrics",
		Database:    pingerFunc(func(context.Context) error { return h.dbErr }),
	})
	return h
}

// cookieFor stores sess and returns the cookie a browser would hold for it.
func (h *harness) cookieFor(t *testing.T, sess domain.Session) *http.Cookie {
	t.Helper()
	require.NoError(t, h.store.Save(context.Background(), &sess))
	token, err := h.tokens.GenerateSessionToken(sess.ID)
	require.NoError(t, err)
	return &http.Cookie{Name: cookieName, Value: token}
}

func (h *harness) requester(t *testing.T) *http.Cookie {
	return h.cookieFor(t, domain.Session{UserLoggedIn: true, UserNumber: "1234567890"})
}

func (h *harness) hospital(t *testing.T) *http.Cookie {
	return h.cookieFor(t, domain.Session{HospitalLoggedIn: true, HospitalID: 42})
}

func (h *harness) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	return nil
}
