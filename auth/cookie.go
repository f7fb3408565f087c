package auth

import (
	"net/url"
	"strings"
	"time"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "musaada_session"

// SessionTTL is how long a session stays valid after login.
const SessionTTL = 30 * 24 * time.Hour

// ParseCookies parses a raw Cookie header into a name→value map.
// Malformed pairs are skipped; values are URL-decoded when possible.
func ParseCookies(header string) map[string]string {
	cookies := make(map[string]string)
	if header == "" {
		return cookies
	}

	for _, pair := range strings.Split(header, ";") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			continue
		}
		value := parts[1]
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		cookies[parts[0]] = value
	}
	return cookies
}

// SessionTokenFromHeader extracts the session token from a raw Cookie
// header, or "" when no session cookie is present.
func SessionTokenFromHeader(header string) string {
	return ParseCookies(header)[SessionCookie]
}
