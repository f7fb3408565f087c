package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/musaada/musaada/email"
	"github.com/musaada/musaada/models"
)

const (
	// VerificationTTL is how long an email verification code stays valid.
	VerificationTTL = 24 * time.Hour

	minPasswordLength = 8
	minNameLength     = 2
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service implements registration, login, session resolution, email
// verification and logout over an injected Store and Mailer.
type Service struct {
	Store       Store
	Mailer      email.Mailer
	FrontendURL string

	// Limiter throttles login attempts when set. A limiter failure
	// fails open: login proceeds and the error is logged.
	Limiter Limiter

	// Now is the clock; tests override it to exercise expiry paths.
	Now func() time.Time
}

func NewService(store Store, mailer email.Mailer, frontendURL string) *Service {
	return &Service{
		Store:       store,
		Mailer:      mailer,
		FrontendURL: frontendURL,
		Now:         time.Now,
	}
}

// Register validates the input, creates the user with a hashed
// password, issues a 24-hour verification token and sends the
// verification email. Email delivery is outside the consistency
// boundary: a failed send is logged and registration still succeeds.
func (s *Service) Register(ctx context.Context, emailAddr, password, name string) (uint, error) {
	if !emailPattern.MatchString(emailAddr) {
		return 0, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return 0, ErrPasswordTooShort
	}
	if utf8.RuneCountInString(name) < minNameLength {
		return 0, ErrNameTooShort
	}

	// Pre-check for a friendlier error; the unique constraint on the
	// email column is the real backstop against the concurrent case.
	_, err := s.Store.UserByEmail(ctx, emailAddr)
	if err == nil {
		return 0, ErrDuplicateEmail
	}
	if !errors.Is(err, ErrNotFound) {
		log.Printf("[Auth] Failed to check existing user: %v", err)
		return 0, ErrStoreUnavailable
	}

	hash, err := HashPassword(password)
	if err != nil {
		log.Printf("[Auth] Failed to hash password: %v", err)
		return 0, ErrStoreUnavailable
	}

	user := &models.User{
		Email:         emailAddr,
		Password:      &hash,
		Name:          name,
		Role:          models.RoleUser,
		LoginMethod:   "email",
		EmailVerified: false,
	}
	if err := s.Store.CreateUser(ctx, user); err != nil {
		var authErr *Error
		if errors.As(err, &authErr) {
			return 0, authErr
		}
		log.Printf("[Auth] Failed to create user: %v", err)
		return 0, ErrStoreUnavailable
	}

	token := VerificationToken()
	record := &models.EmailVerificationToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: s.Now().Add(VerificationTTL),
	}
	if err := s.Store.CreateVerificationToken(ctx, record); err != nil {
		log.Printf("[Auth] Failed to create verification token: %v", err)
		return 0, ErrStoreUnavailable
	}

	verificationURL := fmt.Sprintf("%s/verify-email?userId=%d&token=%s", s.FrontendURL, user.ID, token)
	subject, html, text := email.VerificationEmail(name, token, verificationURL)
	if err := s.Mailer.Send(emailAddr, subject, html, text); err != nil {
		log.Printf("[Auth] Failed to send verification email: %v", err)
	}

	return user.ID, nil
}

// Login verifies the credentials and opens a 30-day session. An
// unknown email and a wrong password both return ErrInvalidCredentials
// so invalid attempts are indistinguishable; an account without a
// stored password surfaces ErrAccountNotActivated.
func (s *Service) Login(ctx context.Context, emailAddr, password, clientIP string) (*models.User, string, error) {
	if s.Limiter != nil {
		key := fmt.Sprintf("login:%s:%s", emailAddr, clientIP)
		allowed, err := s.Limiter.Allow(ctx, key)
		if err != nil {
			log.Printf("[Auth] Login limiter unavailable, allowing attempt: %v", err)
		} else if !allowed {
			return nil, "", ErrTooManyAttempts
		}
	}

	user, err := s.Store.UserByEmail(ctx, emailAddr)
	if errors.Is(err, ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		log.Printf("[Auth] Failed to look up user: %v", err)
		return nil, "", ErrStoreUnavailable
	}

	if !user.HasPassword() {
		return nil, "", ErrAccountNotActivated
	}
	if !VerifyPassword(password, *user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token := SessionToken()
	session := &models.Session{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: s.Now().Add(SessionTTL),
	}
	if err := s.Store.CreateSession(ctx, session); err != nil {
		log.Printf("[Auth] Failed to create session: %v", err)
		return nil, "", ErrStoreUnavailable
	}

	if err := s.Store.UpdateLastSignedIn(ctx, user.ID, s.Now()); err != nil {
		log.Printf("[Auth] Failed to update last sign-in: %v", err)
	}

	return user, token, nil
}

// UserFromSession resolves a session token to its owning user.
// A missing token, an unknown token, an expired session and a store
// failure all resolve to anonymous (nil); an expired session row is
// deleted on detection.
func (s *Service) UserFromSession(ctx context.Context, token string) *models.User {
	if token == "" {
		return nil
	}

	session, err := s.Store.SessionByToken(ctx, token)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("[Auth] Failed to look up session: %v", err)
		}
		return nil
	}

	if session.Expired(s.Now()) {
		if err := s.Store.DeleteSession(ctx, token); err != nil {
			log.Printf("[Auth] Failed to delete expired session: %v", err)
		}
		return nil
	}

	user, err := s.Store.UserByID(ctx, session.UserID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("[Auth] Failed to load session user: %v", err)
		}
		return nil
	}
	return user
}

// VerifyEmail consumes a verification token. The token must exist,
// must not be expired and must belong to the claimed user; an owner
// mismatch reads as an invalid token so ownership is never leaked.
// Expired tokens are left in place.
func (s *Service) VerifyEmail(ctx context.Context, userID uint, token string) error {
	record, err := s.Store.VerificationTokenByToken(ctx, token)
	if errors.Is(err, ErrNotFound) {
		return ErrInvalidToken
	}
	if err != nil {
		log.Printf("[Auth] Failed to look up verification token: %v", err)
		return ErrStoreUnavailable
	}

	if s.Now().After(record.ExpiresAt) {
		return ErrTokenExpired
	}
	if record.UserID != userID {
		return ErrInvalidToken
	}

	if err := s.Store.SetEmailVerified(ctx, userID); err != nil {
		log.Printf("[Auth] Failed to mark email verified: %v", err)
		return ErrStoreUnavailable
	}
	if err := s.Store.DeleteVerificationToken(ctx, token); err != nil {
		log.Printf("[Auth] Failed to delete consumed token: %v", err)
		return ErrStoreUnavailable
	}
	return nil
}

// Logout deletes the session row, best-effort. The caller clears the
// cookie regardless of the outcome.
func (s *Service) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.Store.DeleteSession(ctx, token); err != nil && !errors.Is(err, ErrNotFound) {
		log.Printf("[Auth] Logout error: %v", err)
	}
}
