package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/haeli05/mintvault/internal/common"
	"github.com/haeli05/mintvault/internal/server/auth"
	"github.com/haeli05/mintvault/internal/server/config"
	"github.com/haeli05/mintvault/internal/server/models"
	"github.com/haeli05/mintvault/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// AccountService registers accounts and exchanges credentials for access
// tokens. The account ID doubles as the caller's ledger owner key.
type AccountService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	secretKey             []byte
	tokenValidityDuration time.Duration
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AccountService {
	return &AccountService{
		db:                    db,
		repomanager:           m,
		secretKey:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

func (s *AccountService) Register(ctx context.Context, userName, password string) (*models.Account, error) {
	if userName == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrorInvalidArgument)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account := &models.Account{
		ID:           uuid.NewString(),
		UserName:     userName,
		PasswordHash: hash,
	}

	return s.repomanager.Accounts(s.db).Create(ctx, account)
}

// Login verifies the credentials and issues an access token carrying the
// account ID. Unknown users and wrong passwords are indistinguishable to
// the caller.
func (s *AccountService) Login(ctx context.Context, userName, password string) (string, error) {
	account, err := s.repomanager.Accounts(s.db).GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)); err != nil {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(account.ID, s.secretKey, s.tokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}

	return token, nil
}
