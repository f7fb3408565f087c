// Package authtest provides in-memory doubles for the auth store and
// mailer, used by service and handler tests.
package authtest

import (
	"context"
	"sync"
	"time"

	"github.com/musaada/musaada/auth"
	"github.com/musaada/musaada/models"
)

// MemStore is an in-memory auth.Store. Setting Fail makes every call
// return that error, simulating an unavailable backing store.
type MemStore struct {
	mu       sync.Mutex
	users    map[uint]*models.User
	byEmail  map[string]uint
	tokens   map[string]*models.EmailVerificationToken
	sessions map[string]*models.Session
	nextID   uint

	Fail error
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:    make(map[uint]*models.User),
		byEmail:  make(map[string]uint),
		tokens:   make(map[string]*models.EmailVerificationToken),
		sessions: make(map[string]*models.Session),
	}
}

func (s *MemStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return nil, s.Fail
	}
	id, ok := s.byEmail[email]
	if !ok {
		return nil, auth.ErrNotFound
	}
	user := *s.users[id]
	return &user, nil
}

func (s *MemStore) UserByID(_ context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return nil, s.Fail
	}
	stored, ok := s.users[id]
	if !ok {
		return nil, auth.ErrNotFound
	}
	user := *stored
	return &user, nil
}

func (s *MemStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return s.Fail
	}
	if _, exists := s.byEmail[user.Email]; exists {
		return auth.ErrDuplicateEmail
	}
	s.nextID++
	user.ID = s.nextID
	stored := *user
	s.users[user.ID] = &stored
	s.byEmail[user.Email] = user.ID
	return nil
}

func (s *MemStore) UpdateLastSignedIn(_ context.Context, userID uint, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return s.Fail
	}
	if user, ok := s.users[userID]; ok {
		user.LastSignedIn = at
	}
	return nil
}

func (s *MemStore) SetEmailVerified(_ context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return s.Fail
	}
	if user, ok := s.users[userID]; ok {
		user.EmailVerified = true
	}
	return nil
}

func (s *MemStore) CreateVerificationToken(_ context.Context, token *models.EmailVerificationToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return s.Fail
	}
	stored := *token
	s.tokens[token.Token] = &stored
	return nil
}

func (s *MemStore) VerificationTokenByToken(_ context.Context, token string) (*models.EmailVerificationToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return nil, s.Fail
	}
	stored, ok := s.tokens[token]
	if !ok {
		return nil, auth.ErrNotFound
	}
	record := *stored
	return &record, nil
}

func (s *MemStore) DeleteVerificationToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return s.Fail
	}
	delete(s.tokens, token)
	return nil
}

func (s *MemStore) CreateSession(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return s.Fail
	}
	stored := *session
	s.sessions[session.Token] = &stored
	return nil
}

func (s *MemStore) SessionByToken(_ context.Context, token string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return nil, s.Fail
	}
	stored, ok := s.sessions[token]
	if !ok {
		return nil, auth.ErrNotFound
	}
	session := *stored
	return &session, nil
}

func (s *MemStore) DeleteSession(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return s.Fail
	}
	delete(s.sessions, token)
	return nil
}

// User returns the stored user record, for assertions.
func (s *MemStore) User(id uint) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.users[id]; ok {
		copied := *user
		return &copied
	}
	return nil
}

// VerificationTokenFor returns the pending token issued to a user, for
// driving the verification flow in tests.
func (s *MemStore) VerificationTokenFor(userID uint) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, record := range s.tokens {
		if record.UserID == userID {
			return record.Token
		}
	}
	return ""
}

// SessionCount reports how many session rows exist.
func (s *MemStore) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Message is one captured outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// MemMailer records sends instead of dialing SMTP. Setting Err makes
// every send fail.
type MemMailer struct {
	mu   sync.Mutex
	Sent []Message
	Err  error
}

func (m *MemMailer) Send(to, subject, html, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, Message{To: to, Subject: subject, HTML: html, Text: text})
	return nil
}

// Last returns the most recent captured message, or nil.
func (m *MemMailer) Last() *Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Sent) == 0 {
		return nil
	}
	msg := m.Sent[len(m.Sent)-1]
	return &msg
}
