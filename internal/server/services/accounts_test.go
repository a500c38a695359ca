package services

import (
	"context"
	"testing"
	"time"

	"github.com/haeli05/mintvault/internal/common"
	"github.com/haeli05/mintvault/internal/server/auth"
	"github.com/haeli05/mintvault/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeAccounts struct {
	byUserName map[string]models.Account
}

func (r *fakeAccounts) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	if _, ok := r.byUserName[account.UserName]; ok {
		return nil, common.ErrorUserAlreadyExists
	}
	account.CreatedAt = time.Now()
	r.byUserName[account.UserName] = *account
	return account, nil
}

func (r *fakeAccounts) GetByUserName(ctx context.Context, userName string) (*models.Account, error) {
	account, ok := r.byUserName[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &account, nil
}

func newTestAccountService(t *testing.T) (*AccountService, *fakeManager) {
	t.Helper()
	m := newFakeManager()
	s := &AccountService{
		repomanager:           m,
		secretKey:             []byte("test-secret"),
		tokenValidityDuration: time.Minute,
	}
	return s, m
}

func TestRegister(t *testing.T) {
	s, _ := newTestAccountService(t)

	account, err := s.Register(context.Background(), "alice", "pa$$word")
	require.NoError(t, err)
	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "alice", account.UserName)

	// the stored hash verifies against the original password
	assert.NoError(t, bcrypt.CompareHashAndPassword(account.PasswordHash, []byte("pa$$word")))
}

func TestRegister_EmptyCredentials(t *testing.T) {
	s, _ := newTestAccountService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "", "password")
	assert.ErrorIs(t, err, common.ErrorInvalidArgument)

	_, err = s.Register(ctx, "alice", "")
	assert.ErrorIs(t, err, common.ErrorInvalidArgument)
}

func TestRegister_DuplicateUserName(t *testing.T) {
	s, _ := newTestAccountService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", "password")
	require.NoError(t, err)

	_, err = s.Register(ctx, "alice", "other")
	assert.ErrorIs(t, err, common.ErrorUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	s, _ := newTestAccountService(t)
	ctx := context.Background()

	account, err := s.Register(ctx, "alice", "password")
	require.NoError(t, err)

	token, err := s.Login(ctx, "alice", "password")
	require.NoError(t, err)

	accountID, err := auth.GetAccountIDFromToken(token, s.secretKey)
	require.NoError(t, err)
	assert.Equal(t, account.ID, accountID)
}

func TestLogin_WrongPassword(t *testing.T) {
	s, _ := newTestAccountService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", "password")
	require.NoError(t, err)

	_, err = s.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_UnknownUser(t *testing.T) {
	s, _ := newTestAccountService(t)

	_, err := s.Login(context.Background(), "nobody", "password")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}
