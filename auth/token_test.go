package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerificationToken(t *testing.T) {
	token := VerificationToken()

	assert.Len(t, token, 6)
	for _, r := range token {
		assert.Contains(t, verificationAlphabet, string(r))
	}
	assert.Equal(t, strings.ToUpper(token), token)
}

func TestSessionToken(t *testing.T) {
	token := SessionToken()

	assert.Len(t, token, 64)
	for _, r := range token {
		assert.Contains(t, sessionAlphabet, string(r))
	}
}

// Every alphabet character must be reachable: the generator rejects
// out-of-range bytes instead of folding them onto the early characters.
func TestVerificationTokensCoverAlphabet(t *testing.T) {
	seen := make(map[rune]bool)
	for i := 0; i < 2000; i++ {
		for _, r := range VerificationToken() {
			seen[r] = true
		}
	}
	for _, r := range verificationAlphabet {
		assert.True(t, seen[r], "character %q never generated", r)
	}
}

func TestSessionTokensAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token := SessionToken()
		assert.False(t, seen[token], "session token collision")
		seen[token] = true
	}
}
