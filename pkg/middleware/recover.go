package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

func writeMessage(w http.ResponseWriter, msg string, status int) {
	resp, _ := json.Marshal(map[string]string{"message": msg})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(resp)
}

func Recover(logger *zap.SugaredLogger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Errorw("panic recovered", "method", r.Method, "path", r.URL.Path, "panic", err)
				writeMessage(w, "Internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
