package auth

import (
	"crypto/rand"
)

const (
	verificationTokenLength = 6
	sessionTokenLength      = 64

	verificationAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	sessionAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// VerificationToken returns a 6-character uppercase alphanumeric code.
// It expires within 24 hours and is single-use, so it only needs to
// resist brute force inside that window.
func VerificationToken() string {
	return randomString(verificationTokenLength, verificationAlphabet)
}

// SessionToken returns a 64-character bearer credential. It is
// equivalent to a password and must be unguessable.
func SessionToken() string {
	return randomString(sessionTokenLength, sessionAlphabet)
}

func randomString(length int, alphabet string) string {
	// Bytes in the tail of the 0-255 range are rejected so every
	// character is equally likely.
	limit := 256 - 256%len(alphabet)
	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			// crypto/rand never fails on supported platforms
			panic(err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out)
}
