package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCookies(t *testing.T) {
	cookies := ParseCookies("musaada_session=abc123; theme=dark; lang=ar")

	assert.Equal(t, "abc123", cookies["musaada_session"])
	assert.Equal(t, "dark", cookies["theme"])
	assert.Equal(t, "ar", cookies["lang"])
}

func TestParseCookiesEmpty(t *testing.T) {
	assert.Empty(t, ParseCookies(""))
}

func TestParseCookiesURLDecoded(t *testing.T) {
	cookies := ParseCookies("city=%D8%A7%D9%84%D8%B1%D9%8A%D8%A7%D8%B6")
	assert.Equal(t, "الرياض", cookies["city"])
}

func TestParseCookiesMalformedPairs(t *testing.T) {
	cookies := ParseCookies("valid=1; novalue; =anonymous; ; trailing=2")

	assert.Equal(t, "1", cookies["valid"])
	assert.Equal(t, "2", cookies["trailing"])
	assert.NotContains(t, cookies, "novalue")
	assert.NotContains(t, cookies, "")
}

func TestParseCookiesValueWithEquals(t *testing.T) {
	// Only the first '=' separates name from value
	cookies := ParseCookies("token=abc=def")
	assert.Equal(t, "abc=def", cookies["token"])
}

func TestSessionTokenFromHeader(t *testing.T) {
	assert.Equal(t, "tok123", SessionTokenFromHeader("other=1; musaada_session=tok123"))
	assert.Equal(t, "", SessionTokenFromHeader("other=1"))
	assert.Equal(t, "", SessionTokenFromHeader(""))
}
