package sessions_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"estoque/internal/sessions"
)

func TestStore_IssueAndParse(t *testing.T) {
	store := sessions.NewStore("test_secret", time.Hour)

	token, err := store.Issue(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := store.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestStore_ParseRejectsWrongSecret(t *testing.T) {
	store := sessions.NewStore("test_secret", time.Hour)
	other := sessions.NewStore("another_secret", time.Hour)

	token, err := store.Issue(42)
	assert.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestStore_ParseRejectsGarbage(t *testing.T) {
	store := sessions.NewStore("test_secret", time.Hour)

	_, err := store.Parse("invalid.token.string")
	assert.Error(t, err)

	_, err = store.Parse("")
	assert.Error(t, err)
}

func TestStore_ParseRejectsExpired(t *testing.T) {
	// A negative TTL issues an already-expired token.
	store := sessions.NewStore("test_secret", -time.Hour)

	token, err := store.Issue(42)
	assert.NoError(t, err)

	_, err = store.Parse(token)
	assert.Error(t, err)
}

func TestStore_TokensAreUniquePerSession(t *testing.T) {
	store := sessions.NewStore("test_secret", time.Hour)

	a, err := store.Issue(42)
	assert.NoError(t, err)
	b, err := store.Issue(42)
	assert.NoError(t, err)

	// Each session carries its own jti.
	assert.NotEqual(t, a, b)
}
