package auth

import (
	"net/http"
	"time"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// CookieManager builds session cookies with the deployment's security flags.
type CookieManager struct {
	secure   bool
	sameSite http.SameSite
}

// NewCookieManager creates a cookie manager. Secure should be set when the
// app is served over HTTPS.
func NewCookieManager(secure bool, sameSite http.SameSite) *CookieManager {
	return &CookieManager{secure: secure, sameSite: sameSite}
}

// SessionCookie wraps a session token in an HTTP-only cookie scoped to the
// site root with the session lifetime.
func (m *CookieManager) SessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
	}
}

// ClearSessionCookie returns an expired cookie instructing the client to drop
// the session.
func (m *CookieManager) ClearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
	}
}

// ParseSameSite maps a config string to the http.SameSite mode, defaulting to
// Lax for unrecognised values.
func ParseSameSite(v string) http.SameSite {
	switch v {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
