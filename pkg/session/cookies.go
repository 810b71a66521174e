package session

import (
	"net/http"
	"strconv"
	"time"
)

const (
	TokenCookie  = "token"
	MarkerCookie = "user_id"
)

// SetCookies stores the token out of reach of scripts and a readable
// marker telling the frontend a session exists.
func SetCookies(w http.ResponseWriter, token string, userID int64, expiresAt time.Time, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     MarkerCookie,
		Value:    strconv.FormatInt(userID, 10),
		Path:     "/",
		Expires:  expiresAt,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearCookies(w http.ResponseWriter, secure bool) {
	for _, name := range []string{TokenCookie, MarkerCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: name == TokenCookie,
			Secure:   secure,
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(TokenCookie); err == nil && c.Value != "" {
		return c.Value
	}
	authHeader := r.Header.Get("authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	return ""
}
