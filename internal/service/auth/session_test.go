//go:build !integration
// +build !integration

package auth_session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	api_client "github.com/benhagg/cineniche/internal/infra/api"
	"github.com/benhagg/cineniche/internal/model"
	"github.com/benhagg/cineniche/internal/service/auth/mocks"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type SessionStoreSuite struct {
	suite.Suite
}

type resources struct {
	store       *Store
	gateway     *mocks.Gateway
	persistence *mocks.Persistence
	ctx         context.Context
}

func initResources(t provider.T) *resources {
	gateway := mocks.NewGateway(t)
	persistence := mocks.NewPersistence(t)

	return &resources{
		store:       New(gateway, persistence),
		gateway:     gateway,
		persistence: persistence,
		ctx:         context.Background(),
	}
}

func signedToken(t provider.T, expiresIn time.Duration) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "7",
		"exp": time.Now().Add(expiresIn).Unix(),
	})
	raw, err := token.SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return raw
}

func tokenWithoutExpiry(t provider.T) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "7"})
	raw, err := token.SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return raw
}

func viewerSession(token string) model.Session {
	return model.Session{
		Token: token,
		User:  model.User{ID: "7", Email: "viewer@cineniche.dev", Roles: []string{"User"}},
	}
}

func (suite *SessionStoreSuite) TestLogin(t provider.T) {
	t.Parallel()

	t.Run("Should adopt the returned session", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		session := viewerSession("tok")

		r.gateway.On("Login", r.ctx, "viewer@cineniche.dev", "viewer123").Return(session, nil).Once()
		r.persistence.On("Save", session).Return(nil).Once()
		r.persistence.On("Session").Return(&session)
		r.gateway.On("UserInfo", r.ctx).Return(model.UserInfo{}, errors.New("profile unavailable")).Once()

		user, err := r.store.Login(r.ctx, "viewer@cineniche.dev", "viewer123")
		assert.NoError(t, err)
		assert.Equal(t, "viewer@cineniche.dev", user.Email)
	})

	t.Run("Should merge the enriched profile", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		session := viewerSession("tok")

		r.gateway.On("Login", r.ctx, "viewer@cineniche.dev", "viewer123").Return(session, nil).Once()
		r.persistence.On("Save", mock.AnythingOfType("model.Session")).Return(nil).Twice()
		r.persistence.On("Session").Return(&session)
		r.gateway.On("UserInfo", r.ctx).Return(model.UserInfo{Name: "Vera Viewer", Age: "34"}, nil).Once()

		user, err := r.store.Login(r.ctx, "viewer@cineniche.dev", "viewer123")
		assert.NoError(t, err)
		assert.Equal(t, "Vera Viewer", user.Name)
		assert.Equal(t, "34", user.Age)
	})

	t.Run("Should surface collaborator failures", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.gateway.On("Login", r.ctx, "viewer@cineniche.dev", "wrong").Return(model.Session{}, errors.New("invalid credentials")).Once()

		_, err := r.store.Login(r.ctx, "viewer@cineniche.dev", "wrong")
		assert.ErrorIs(t, err, ErrLoginFailed)
		assert.Contains(t, err.Error(), "invalid credentials")
	})
}

func (suite *SessionStoreSuite) TestRegister(t provider.T) {
	t.Parallel()

	t.Run("Should adopt the session when the collaborator auto-logs-in", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		user := model.User{ID: "9", Email: "new@cineniche.dev", Roles: []string{"User"}}
		session := model.Session{Token: "fresh-tok", User: user}
		req := model.RegisterRequest{Email: "new@cineniche.dev", Password: "pw", ConfirmPassword: "pw"}

		r.gateway.On("Register", r.ctx, req).Return(api_client.RegisterResponse{Token: "fresh-tok", User: &user}, nil).Once()
		r.persistence.On("Save", session).Return(nil).Once()
		r.persistence.On("Session").Return(&session)
		r.gateway.On("UserInfo", r.ctx).Return(model.UserInfo{}, errors.New("profile unavailable")).Once()

		got, err := r.store.Register(r.ctx, req)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, "new@cineniche.dev", got.Email)
	})

	t.Run("Should leave the session unauthenticated without a token", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		req := model.RegisterRequest{Email: "new@cineniche.dev", Password: "pw", ConfirmPassword: "pw"}

		r.gateway.On("Register", r.ctx, req).Return(api_client.RegisterResponse{}, nil).Once()

		got, err := r.store.Register(r.ctx, req)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Should surface collaborator failures", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		req := model.RegisterRequest{Email: "taken@cineniche.dev", Password: "pw", ConfirmPassword: "pw"}

		r.gateway.On("Register", r.ctx, req).Return(api_client.RegisterResponse{}, errors.New("email already registered")).Once()

		_, err := r.store.Register(r.ctx, req)
		assert.ErrorIs(t, err, ErrRegistrationFailed)
	})
}

func (suite *SessionStoreSuite) TestLogoutIsIdempotent(t provider.T) {
	t.Parallel()
	r := initResources(t)

	r.persistence.On("Clear").Return(nil).Twice()

	r.store.Logout()
	r.store.Logout()
}

func (suite *SessionStoreSuite) TestIsAuthenticated(t provider.T) {
	t.Parallel()

	t.Run("Should accept a token expiring in the future", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		session := viewerSession(signedToken(t, time.Hour))
		r.persistence.On("Session").Return(&session)

		assert.True(t, r.store.IsAuthenticated())
	})

	t.Run("Should reject an expired token", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		session := viewerSession(signedToken(t, -time.Second))
		r.persistence.On("Session").Return(&session)

		assert.False(t, r.store.IsAuthenticated())
	})

	t.Run("Should reject a token without an expiry claim", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		session := viewerSession(tokenWithoutExpiry(t))
		r.persistence.On("Session").Return(&session)

		assert.False(t, r.store.IsAuthenticated())
	})

	t.Run("Should reject a malformed token without panicking", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		session := viewerSession("not-a-jwt")
		r.persistence.On("Session").Return(&session)

		assert.False(t, r.store.IsAuthenticated())
	})

	t.Run("Should reject an absent session", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.persistence.On("Session").Return(nil)

		assert.False(t, r.store.IsAuthenticated())
	})
}

func (suite *SessionStoreSuite) TestIsAdmin(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		session  *model.Session
		expected bool
	}{
		{
			name:     "Should recognize the admin role",
			session:  &model.Session{Token: "tok", User: model.User{Roles: []string{"User", model.AdminRole}}},
			expected: true,
		},
		{
			name:     "Should reject a plain user",
			session:  &model.Session{Token: "tok", User: model.User{Roles: []string{"User"}}},
			expected: false,
		},
		{
			name:     "Should reject an absent session",
			session:  nil,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			if tc.session == nil {
				r.persistence.On("Session").Return(nil)
			} else {
				r.persistence.On("Session").Return(tc.session)
			}

			assert.Equal(t, tc.expected, r.store.IsAdmin())
		})
	}
}

func (suite *SessionStoreSuite) TestKidsMode(t provider.T) {
	t.Parallel()

	t.Run("Should toggle and publish the transition", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		session := viewerSession("tok")
		r.persistence.On("Session").Return(&session)

		var events []Event
		r.store.Subscribe(func(e Event) { events = append(events, e) })

		assert.False(t, r.store.KidsMode())

		r.store.SetKidsMode(true)
		assert.True(t, r.store.KidsMode())

		r.store.SetKidsMode(true)
		assert.Len(t, events, 1)
		assert.Equal(t, EventKidsMode, events[0].Kind)
	})

	t.Run("Should stay pinned on when the profile enforces it", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		session := viewerSession("tok")
		session.User.EnforceKidsMode = true
		r.persistence.On("Session").Return(&session)

		assert.True(t, r.store.KidsMode())
	})
}

func (suite *SessionStoreSuite) TestSubscription(t provider.T) {
	t.Parallel()
	r := initResources(t)

	r.persistence.On("Clear").Return(nil)

	var events []Event
	id := r.store.Subscribe(func(e Event) { events = append(events, e) })

	r.store.Logout()
	assert.Len(t, events, 1)
	assert.Equal(t, EventLogout, events[0].Kind)

	r.store.Unsubscribe(id)
	r.store.Logout()
	assert.Len(t, events, 1)
}

func (suite *SessionStoreSuite) TestUpdateProfile(t provider.T) {
	t.Parallel()

	t.Run("Should publish a profile event on success", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		session := viewerSession("tok")
		r.persistence.On("Session").Return(&session)

		info := model.UserInfo{Name: "Vera Viewer", City: "Provo"}
		r.gateway.On("UpdateProfile", r.ctx, info).Return(info, nil).Once()

		var events []Event
		r.store.Subscribe(func(e Event) { events = append(events, e) })

		updated, err := r.store.UpdateProfile(r.ctx, info)
		assert.NoError(t, err)
		assert.Equal(t, "Provo", updated.City)
		assert.Len(t, events, 1)
		assert.Equal(t, EventProfile, events[0].Kind)
	})

	t.Run("Should propagate failures unchanged", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		wantErr := errors.New("validation failed")
		r.gateway.On("UpdateProfile", r.ctx, mock.AnythingOfType("model.UserInfo")).Return(model.UserInfo{}, wantErr).Once()

		_, err := r.store.UpdateProfile(r.ctx, model.UserInfo{})
		assert.ErrorIs(t, err, wantErr)
	})
}

func (suite *SessionStoreSuite) TestChangePassword(t provider.T) {
	t.Parallel()
	r := initResources(t)

	r.gateway.On("ChangePassword", r.ctx, "old", "new", "new").Return(nil).Once()
	assert.NoError(t, r.store.ChangePassword(r.ctx, "old", "new", "new"))

	wantErr := errors.New("current password incorrect")
	r.gateway.On("ChangePassword", r.ctx, "bad", "new", "new").Return(wantErr).Once()
	assert.ErrorIs(t, r.store.ChangePassword(r.ctx, "bad", "new", "new"), wantErr)
}

func TestSessionStoreSuite(t *testing.T) {
	suite.RunSuite(t, new(SessionStoreSuite))
}
