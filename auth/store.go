package auth

import (
	"context"
	"time"

	"github.com/musaada/musaada/models"
)

// Store persists users, verification tokens and sessions. Lookups
// return ErrNotFound for missing records; CreateUser returns
// ErrDuplicateEmail when the email unique constraint fires, which is
// the real backstop against concurrent duplicate registrations.
type Store interface {
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id uint) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateLastSignedIn(ctx context.Context, userID uint, at time.Time) error
	SetEmailVerified(ctx context.Context, userID uint) error

	CreateVerificationToken(ctx context.Context, token *models.EmailVerificationToken) error
	VerificationTokenByToken(ctx context.Context, token string) (*models.EmailVerificationToken, error)
	DeleteVerificationToken(ctx context.Context, token string) error

	CreateSession(ctx context.Context, session *models.Session) error
	SessionByToken(ctx context.Context, token string) (*models.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

// Limiter throttles login attempts. Allow reports whether the attempt
// identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
