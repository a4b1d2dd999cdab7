//go:build !integration
// +build !integration

package token_store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/benhagg/cineniche/internal/model"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type TokenStoreSuite struct {
	suite.Suite
}

func tempTokenPath(t provider.T) string {
	dir, err := os.MkdirTemp("", "tokenstore")
	assert.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	return filepath.Join(dir, "session", "token.json")
}

func (suite *TokenStoreSuite) TestEmptyStore(t provider.T) {
	t.Parallel()

	store := New(tempTokenPath(t))
	assert.Empty(t, store.Token())
	assert.Nil(t, store.Session())
}

func (suite *TokenStoreSuite) TestSaveAndReload(t provider.T) {
	t.Parallel()

	path := tempTokenPath(t)
	session := model.Session{
		Token: "header.payload.signature",
		User:  model.User{ID: "7", Email: "viewer@cineniche.dev", Roles: []string{"User"}},
	}

	store := New(path)
	assert.NoError(t, store.Save(session))
	assert.Equal(t, session.Token, store.Token())

	reloaded := New(path)
	got := reloaded.Session()
	assert.NotNil(t, got)
	assert.Equal(t, session, *got)
}

func (suite *TokenStoreSuite) TestSessionReturnsCopy(t provider.T) {
	t.Parallel()

	store := New(tempTokenPath(t))
	assert.NoError(t, store.Save(model.Session{Token: "tok", User: model.User{Email: "a@b.c"}}))

	first := store.Session()
	first.Token = "mutated"

	assert.Equal(t, "tok", store.Token())
}

func (suite *TokenStoreSuite) TestClear(t provider.T) {
	t.Parallel()

	path := tempTokenPath(t)
	store := New(path)
	assert.NoError(t, store.Save(model.Session{Token: "tok"}))

	assert.NoError(t, store.Clear())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.Session())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func (suite *TokenStoreSuite) TestClearIsIdempotent(t provider.T) {
	t.Parallel()

	store := New(tempTokenPath(t))
	assert.NoError(t, store.Clear())
	assert.NoError(t, store.Clear())
}

func (suite *TokenStoreSuite) TestCorruptFileIsIgnored(t provider.T) {
	t.Parallel()

	path := tempTokenPath(t)
	assert.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := New(path)
	assert.Empty(t, store.Token())
	assert.Nil(t, store.Session())
}

func TestTokenStoreSuite(t *testing.T) {
	suite.RunSuite(t, new(TokenStoreSuite))
}
