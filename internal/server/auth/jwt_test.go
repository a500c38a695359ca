package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("account-1", secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	accountID, err := GetAccountIDFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "account-1", accountID)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("account-1", []byte("secret-a"), time.Hour)
	require.NoError(t, err)

	_, err = GetAccountIDFromToken(token, []byte("secret-b"))
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("account-1", []byte("secret"), -time.Minute)
	require.NoError(t, err)

	_, err = GetAccountIDFromToken(token, []byte("secret"))
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := GetAccountIDFromToken("not-a-token", []byte("secret"))
	assert.Error(t, err)
}
