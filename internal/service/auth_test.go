package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewAuthService(string(hash))

	t.Run("correct password", func(t *testing.T) {
		assert.NoError(t, svc.Login("secret1"))
	})

	t.Run("wrong password", func(t *testing.T) {
		assert.ErrorIs(t, svc.Login("secret2"), ErrWrongPassword)
	})

	t.Run("empty password", func(t *testing.T) {
		assert.ErrorIs(t, svc.Login(""), ErrWrongPassword)
	})

	t.Run("malformed hash never matches", func(t *testing.T) {
		assert.ErrorIs(t, NewAuthService("not-a-hash").Login("secret1"), ErrWrongPassword)
	})
}
