// Package auth keeps the result of a successful login as a server-side
// session referenced by a cookie.
package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const sessionCookie = "postboard_session"

var (
	ErrNotFound = errors.New("session not found")
	ErrExpired  = errors.New("session expired")
)

type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
}

// Store persists sessions by ID. Implementations must be safe for
// concurrent use.
type Store interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}

type Manager struct {
	store  Store
	maxAge time.Duration
	secure bool
	now    func() time.Time
}

func NewManager(store Store, maxAge time.Duration, secure bool) *Manager {
	return &Manager{store: store, maxAge: maxAge, secure: secure, now: time.Now}
}

// Create stores a new session for userID and sets its cookie on w.
func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, userID int64) (Session, error) {
	s := Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		ExpiresAt: m.now().Add(m.maxAge).Truncate(time.Second),
	}
	if err := m.store.Save(ctx, s); err != nil {
		return Session{}, err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    s.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  s.ExpiresAt,
	})
	return s, nil
}

// Lookup returns the session referenced by the request cookie.
func (m *Manager) Lookup(r *http.Request) (Session, error) {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return Session{}, ErrNotFound
	}
	s, err := m.store.Get(r.Context(), c.Value)
	if err != nil {
		return Session{}, err
	}
	if !m.now().Before(s.ExpiresAt) {
		m.store.Delete(r.Context(), s.ID)
		return Session{}, ErrExpired
	}
	return s, nil
}

// Destroy removes the request's session, if any, and clears the cookie.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) error {
	var err error
	if c, _ := r.Cookie(sessionCookie); c != nil && c.Value != "" {
		err = m.store.Delete(r.Context(), c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
	return err
}
