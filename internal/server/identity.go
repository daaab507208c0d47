package server

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"strings"
)

const (
	userIDCookie = "userId"
	userIDHeader = "X-User-Id"

	stampByteLen = 6
	cookieMaxAge = 31536000 // one year
)

// ParseCookies splits a raw Cookie header into a map. The first '=' separates
// key from value; later pairs overwrite earlier ones.
func ParseCookies(header string) map[string]string {
	out := map[string]string{}
	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, _ := strings.Cut(part, "=")
		out[k] = v
	}
	return out
}

// NewStampID mints an identity stamp: 6 random bytes rendered as URL-safe
// base64 without padding, 8 characters.
func NewStampID() string {
	b := make([]byte, stampByteLen)
	if _, err := rand.Read(b); err != nil {
		panic(err) // crypto/rand does not fail on supported platforms
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// RequireIdentity resolves the caller's identity stamp before the wrapped
// handler runs. A browser without the cookie gets one minted and set; an
// existing value is trusted verbatim. The resolved id is handed to the
// handler via the X-User-Id request header.
func (a *API) RequireIdentity(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := ParseCookies(r.Header.Get("Cookie"))[userIDCookie]
		if uid == "" {
			uid = NewStampID()
			http.SetCookie(w, &http.Cookie{
				Name:     userIDCookie,
				Value:    uid,
				Path:     "/",
				MaxAge:   cookieMaxAge,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		r.Header.Set(userIDHeader, uid)
		next(w, r)
	}
}
