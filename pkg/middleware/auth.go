package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"ktap/pkg/session"
)

var publicWrites = map[string]bool{
	"/api/login":    true,
	"/api/register": true,
	"/api/logout":   true,
}

var privateReads = map[string]bool{
	"/api/user": true,
}

func requiresSession(r *http.Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return privateReads[r.URL.Path]
	}
	return !publicWrites[r.URL.Path]
}

// Auth attaches the session when the request carries a valid one and
// rejects requests to protected routes that do not.
func Auth(logger *zap.SugaredLogger, sm session.SessionManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := sm.Check(r.Context(), r)
		if err == nil {
			r = r.WithContext(session.ContextWithSession(r.Context(), sess))
			next.ServeHTTP(w, r)
			return
		}

		if !requiresSession(r) {
			next.ServeHTTP(w, r)
			return
		}

		if err != session.ErrNoToken {
			logger.Infow("session rejected", "path", r.URL.Path, "error", err)
		}
		writeMessage(w, "unauthorized", http.StatusUnauthorized)
	})
}
