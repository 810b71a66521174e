package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	"ktap/pkg/session"
)

func nopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func TestAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sm := session.NewMockSessionManager(ctrl)
	sess := &session.Session{User: &session.User{ID: 7, Name: "ann"}, SessionID: "s1"}

	type Case struct {
		Method     string
		Path       string
		Session    *session.Session
		CheckErr   error
		Status     int
		SeenUserID int64
	}

	cases := []Case{
		{http.MethodGet, "/api/reviews", nil, session.ErrNoToken, http.StatusOK, 0},
		{http.MethodGet, "/api/reviews", sess, nil, http.StatusOK, 7},
		{http.MethodGet, "/api/user", nil, session.ErrNoToken, http.StatusUnauthorized, 0},
		{http.MethodGet, "/api/user", sess, nil, http.StatusOK, 7},
		{http.MethodPost, "/api/login", nil, session.ErrNoToken, http.StatusOK, 0},
		{http.MethodPost, "/api/register", nil, errors.New("expired"), http.StatusOK, 0},
		{http.MethodPost, "/api/reviews/1/thumb/up", nil, session.ErrNoToken, http.StatusUnauthorized, 0},
		{http.MethodPost, "/api/reviews/1/thumb/up", nil, errors.New("bad signature"), http.StatusUnauthorized, 0},
		{http.MethodDelete, "/api/reviews/1/comments/2", sess, nil, http.StatusOK, 7},
	}

	for i, c := range cases {
		var seen int64
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s, err := session.SessionFromContext(r.Context()); err == nil {
				seen = s.User.ID
			}
		})

		sm.EXPECT().Check(gomock.Any(), gomock.Any()).Return(c.Session, c.CheckErr)

		r := httptest.NewRequest(c.Method, c.Path, nil)
		w := httptest.NewRecorder()
		Auth(nopLogger(), sm, next).ServeHTTP(w, r)

		if w.Code != c.Status {
			t.Fatalf("test case %d %s %s failed: expected status %d, got %d", i, c.Method, c.Path, c.Status, w.Code)
		}
		if seen != c.SeenUserID {
			t.Fatalf("test case %d %s %s failed: expected user %d in context, got %d", i, c.Method, c.Path, c.SeenUserID, seen)
		}
		if c.Status == http.StatusUnauthorized && !strings.Contains(w.Body.String(), `"message":"unauthorized"`) {
			t.Fatalf("test case %d failed: unexpected body %s", i, w.Body.String())
		}
	}
}

func TestRecover(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	Recover(nopLogger(), next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"message"`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestLogKeepsStatus(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	Log(nopLogger(), next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusTeapot {
		t.Fatalf("expected %d, got %d", http.StatusTeapot, w.Code)
	}
}

func TestRateLimit(t *testing.T) {
	l := NewLimiter(1, 2)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	h := RateLimit(nopLogger(), l, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	send := func(method, addr string, sess *session.Session) int {
		r := httptest.NewRequest(method, "/api/reviews/1/report", nil)
		r.RemoteAddr = addr
		if sess != nil {
			r = r.WithContext(session.ContextWithSession(r.Context(), sess))
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w.Code
	}

	for i := 0; i < 2; i++ {
		if code := send(http.MethodPost, "10.0.0.1:1234", nil); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, code)
		}
	}
	if code := send(http.MethodPost, "10.0.0.1:5678", nil); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", code)
	}

	// reads are never limited
	if code := send(http.MethodGet, "10.0.0.1:1234", nil); code != http.StatusOK {
		t.Fatalf("expected GET to pass, got %d", code)
	}

	// a signed-in user has its own bucket
	sess := &session.Session{User: &session.User{ID: 3}}
	if code := send(http.MethodPost, "10.0.0.1:1234", sess); code != http.StatusOK {
		t.Fatalf("expected user bucket to be fresh, got %d", code)
	}

	now = now.Add(time.Second)
	if code := send(http.MethodPost, "10.0.0.1:1234", nil); code != http.StatusOK {
		t.Fatalf("expected refill after a second, got %d", code)
	}
}

func TestRateLimitIgnoresForwardedFor(t *testing.T) {
	l := NewLimiter(1, 1)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	h := RateLimit(nopLogger(), l, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := make([]int, 0, 3)
	for _, fwd := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
		r := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		r.RemoteAddr = "10.0.0.9:4000"
		r.Header.Set("X-Forwarded-For", fwd)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("rotating X-Forwarded-For must not reset the bucket, got %v", codes)
	}
}

func TestLimiterSweepsIdleClients(t *testing.T) {
	l := NewLimiter(1, 1)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.Allow("ip:a")
	now = now.Add(limiterIdle + time.Minute)
	l.Allow("ip:b")

	if _, ok := l.visitors["ip:a"]; ok {
		t.Fatalf("idle client was not swept")
	}
	if _, ok := l.visitors["ip:b"]; !ok {
		t.Fatalf("active client was swept")
	}
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"http://localhost:3000"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	r := httptest.NewRequest(http.MethodOptions, "/api/reviews", nil)
	r.Header.Set("Origin", "http://localhost:3000")
	r.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("unexpected allow origin %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Fatalf("expected credentials to be allowed, got %q", got)
	}

	r = httptest.NewRequest(http.MethodGet, "/api/reviews", nil)
	r.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("foreign origin allowed: %q", got)
	}
}
