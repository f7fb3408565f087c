package db

import (
	"context"
	"errors"
	"time"

	"github.com/musaada/musaada/auth"
	"github.com/musaada/musaada/models"
	"gorm.io/gorm"
)

// AuthStore implements auth.Store on top of the GORM handle.
type AuthStore struct {
	DB *gorm.DB
}

func NewAuthStore(gdb *gorm.DB) *AuthStore {
	return &AuthStore{DB: gdb}
}

func (s *AuthStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, auth.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthStore) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, auth.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthStore) CreateUser(ctx context.Context, user *models.User) error {
	err := s.DB.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// The unique constraint caught a concurrent registration.
		return auth.ErrDuplicateEmail
	}
	return err
}

func (s *AuthStore) UpdateLastSignedIn(ctx context.Context, userID uint, at time.Time) error {
	return s.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("last_signed_in", at).Error
}

func (s *AuthStore) SetEmailVerified(ctx context.Context, userID uint) error {
	return s.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("email_verified", true).Error
}

func (s *AuthStore) CreateVerificationToken(ctx context.Context, token *models.EmailVerificationToken) error {
	return s.DB.WithContext(ctx).Create(token).Error
}

func (s *AuthStore) VerificationTokenByToken(ctx context.Context, token string) (*models.EmailVerificationToken, error) {
	var record models.EmailVerificationToken
	err := s.DB.WithContext(ctx).Where("token = ?", token).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, auth.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *AuthStore) DeleteVerificationToken(ctx context.Context, token string) error {
	return s.DB.WithContext(ctx).Where("token = ?", token).Delete(&models.EmailVerificationToken{}).Error
}

func (s *AuthStore) CreateSession(ctx context.Context, session *models.Session) error {
	return s.DB.WithContext(ctx).Create(session).Error
}

func (s *AuthStore) SessionByToken(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	err := s.DB.WithContext(ctx).Where("token = ?", token).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, auth.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *AuthStore) DeleteSession(ctx context.Context, token string) error {
	return s.DB.WithContext(ctx).Where("token = ?", token).Delete(&models.Session{}).Error
}
