package auth_session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	api_client "github.com/benhagg/cineniche/internal/infra/api"
	"github.com/benhagg/cineniche/internal/model"
)

var (
	ErrLoginFailed        = errors.New("login failed")
	ErrRegistrationFailed = errors.New("registration failed")
)

// EventKind marks a session state transition.
type EventKind string

const (
	EventLogin    EventKind = "login"
	EventLogout   EventKind = "logout"
	EventProfile  EventKind = "profile"
	EventKidsMode EventKind = "kids_mode"
)

type Event struct {
	Kind EventKind
	User *model.User
}

type Gateway interface {
	Login(ctx context.Context, email, password string) (model.Session, error)
	Register(ctx context.Context, req model.RegisterRequest) (api_client.RegisterResponse, error)
	UserInfo(ctx context.Context) (model.UserInfo, error)
	UpdateProfile(ctx context.Context, info model.UserInfo) (model.UserInfo, error)
	ChangePassword(ctx context.Context, current, next, confirm string) error
}

type Persistence interface {
	Session() *model.Session
	Save(session model.Session) error
	Clear() error
}

// Store is the single source of truth for who the current actor is and
// whether they are privileged. All state transitions are published to
// subscribers; dependents react to actual events, not re-render proxies.
type Store struct {
	gateway     Gateway
	persistence Persistence
	logger      *slog.Logger

	mu          sync.RWMutex
	kidsMode    bool
	subscribers map[string]func(Event)
}

func New(gateway Gateway, persistence Persistence) *Store {
	return &Store{
		gateway:     gateway,
		persistence: persistence,
		logger:      slog.Default().With("component", "session"),
		subscribers: make(map[string]func(Event)),
	}
}

// Login authenticates against the collaborator and adopts the returned
// session. Collaborator failures surface unchanged so the caller can
// display them.
func (s *Store) Login(ctx context.Context, email, password string) (model.User, error) {
	session, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	if err := s.persistence.Save(session); err != nil {
		s.logger.Warn("failed to persist session", "error", err)
	}
	s.enrich(ctx)
	s.publish(Event{Kind: EventLogin, User: s.CurrentUser()})

	user := s.CurrentUser()
	if user == nil {
		return session.User, nil
	}
	return *user, nil
}

// Register posts the full registration payload. When the collaborator
// auto-logs-in (returns token+user) the session is adopted exactly as in
// Login; otherwise the session stays unauthenticated and the caller routes
// the user to a manual login step.
func (s *Store) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	resp, err := s.gateway.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	if resp.Token == "" || resp.User == nil {
		return resp.User, nil
	}

	session := model.Session{Token: resp.Token, User: *resp.User}
	if err := s.persistence.Save(session); err != nil {
		s.logger.Warn("failed to persist session", "error", err)
	}
	s.enrich(ctx)
	s.publish(Event{Kind: EventLogin, User: s.CurrentUser()})
	return s.CurrentUser(), nil
}

// Logout clears the session. Idempotent.
func (s *Store) Logout() {
	if err := s.persistence.Clear(); err != nil {
		s.logger.Warn("failed to clear session", "error", err)
	}
	s.publish(Event{Kind: EventLogout})
}

// IsAuthenticated decodes the token's embedded expiry claim and compares it
// to the current time. Fails open to "not authenticated": a malformed or
// corrupt token never propagates an error.
func (s *Store) IsAuthenticated() bool {
	session := s.persistence.Session()
	if session == nil || session.Token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(session.Token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.After(time.Now())
}

// IsAdmin is false, not an error, when no user is present.
func (s *Store) IsAdmin() bool {
	user := s.CurrentUser()
	return user != nil && user.HasRole(model.AdminRole)
}

func (s *Store) CurrentUser() *model.User {
	session := s.persistence.Session()
	if session == nil {
		return nil
	}
	user := session.User
	return &user
}

func (s *Store) Token() string {
	session := s.persistence.Session()
	if session == nil {
		return ""
	}
	return session.Token
}

// UpdateProfile propagates failures unchanged; profile edits are
// user-initiated and must not fail silently.
func (s *Store) UpdateProfile(ctx context.Context, info model.UserInfo) (model.UserInfo, error) {
	updated, err := s.gateway.UpdateProfile(ctx, info)
	if err != nil {
		return model.UserInfo{}, err
	}
	s.publish(Event{Kind: EventProfile, User: s.CurrentUser()})
	return updated, nil
}

func (s *Store) ChangePassword(ctx context.Context, current, next, confirm string) error {
	return s.gateway.ChangePassword(ctx, current, next, confirm)
}

// KidsMode is pinned on when the enriched profile enforces it.
func (s *Store) KidsMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.kidsMode {
		return true
	}
	user := s.persistence.Session()
	return user != nil && user.User.EnforceKidsMode
}

func (s *Store) SetKidsMode(on bool) {
	s.mu.Lock()
	changed := s.kidsMode != on
	s.kidsMode = on
	s.mu.Unlock()
	if changed {
		s.publish(Event{Kind: EventKidsMode, User: s.CurrentUser()})
	}
}

// Subscribe registers a state-transition listener and returns its handle.
func (s *Store) Subscribe(fn func(Event)) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.subscribers[id] = fn
	s.mu.Unlock()
	return id
}

func (s *Store) Unsubscribe(id string) {
	s.mu.Lock()
	delete(s.subscribers, id)
	s.mu.Unlock()
}

// enrich merges extended profile fields into the session. Best effort:
// enrichment failures are logged and swallowed, never blocking
// authentication.
func (s *Store) enrich(ctx context.Context) {
	session := s.persistence.Session()
	if session == nil {
		return
	}

	info, err := s.gateway.UserInfo(ctx)
	if err != nil {
		s.logger.Warn("profile enrichment failed", "error", err)
		return
	}

	if info.Name != "" {
		session.User.Name = info.Name
	} else if info.FirstName != "" {
		session.User.Name = info.FirstName
	}
	if info.Age != "" {
		session.User.Age = info.Age
	}
	session.User.EnforceKidsMode = info.EnforceKidsMode

	if err := s.persistence.Save(*session); err != nil {
		s.logger.Warn("failed to persist enriched session", "error", err)
	}
}

func (s *Store) publish(e Event) {
	s.mu.RLock()
	subs := make([]func(Event), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(e)
	}
}
