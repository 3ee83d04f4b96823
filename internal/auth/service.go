package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

// defaultGroup is the group every self-registered account lands in. Broader
// groups are granted by an operator, never chosen by the caller.
const defaultGroup = "pi_user"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

type Service interface {
	// Register creates an account in the default group only.
	Register(ctx context.Context, username, password string) (*Account, error)
	Login(ctx context.Context, username, password string) (*Session, error)
	Logout(ctx context.Context, token uuid.UUID) error
	// Authenticate resolves a session token into an identity with its
	// permission set loaded. Expired or unknown tokens fail with
	// ErrNotAuthenticated.
	Authenticate(ctx context.Context, token uuid.UUID) (*Identity, error)
	// CleanupExpiredSessions removes sessions past their expiry and reports
	// how many were deleted. Authenticate also drops expired sessions lazily;
	// this sweeps the ones that are never presented again.
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, username, password string) (*Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("service: username cannot be empty")
	}
	if password == "" {
		return nil, fmt.Errorf("service: password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to hash password")
		return nil, fmt.Errorf("service: failed to hash password: %w", err)
	}

	account := &Account{Username: username, PasswordHash: string(hash)}
	id, err := s.repo.CreateAccount(ctx, account)
	if err != nil {
		if errors.Is(err, ErrUsernameExists) {
			return nil, ErrUsernameExists
		}
		return nil, fmt.Errorf("service: failed to create account: %w", err)
	}
	account.ID = id

	if err := s.repo.AddAccountToGroup(ctx, id, defaultGroup); err != nil {
		return nil, fmt.Errorf("service: failed to assign group %q: %w", defaultGroup, err)
	}

	log.Info().Int64("account_id", id).Str("username", username).Msg("service: account registered")
	return account, nil
}

func (s *service) Login(ctx context.Context, username, password string) (*Session, error) {
	account, err := s.repo.GetAccountByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("service: failed to fetch account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		log.Warn().Str("username", username).Msg("service: login failed, wrong password")
		return nil, ErrInvalidCredentials
	}

	token, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("service: failed to generate session token: %w", err)
	}

	session := &Session{
		Token:     token,
		AccountID: account.ID,
		ExpiresAt: time.Now().UTC().Add(sessionTTL),
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("service: failed to create session: %w", err)
	}

	log.Info().Int64("account_id", account.ID).Msg("service: login succeeded")
	return session, nil
}

func (s *service) Logout(ctx context.Context, token uuid.UUID) error {
	err := s.repo.DeleteSession(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return ErrNotAuthenticated
		}
		return fmt.Errorf("service: failed to delete session: %w", err)
	}
	return nil
}

func (s *service) Authenticate(ctx context.Context, token uuid.UUID) (*Identity, error) {
	session, err := s.repo.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("service: failed to fetch session: %w", err)
	}

	if time.Now().UTC().After(session.ExpiresAt) {
		// Expired sessions are removed lazily on first use.
		if delErr := s.repo.DeleteSession(ctx, session.Token); delErr != nil && !errors.Is(delErr, ErrSessionNotFound) {
			log.Warn().Err(delErr).Msg("service: failed to remove expired session")
		}
		return nil, ErrNotAuthenticated
	}

	account, err := s.repo.GetAccountByID(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("service: failed to fetch account for session: %w", err)
	}

	permissions, err := s.repo.ListPermissions(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load permissions: %w", err)
	}

	return NewIdentity(*account, permissions), nil
}

func (s *service) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := s.repo.DeleteExpiredSessions(ctx)
	if err != nil {
		return 0, fmt.Errorf("service: failed to delete expired sessions: %w", err)
	}
	if removed > 0 {
		log.Info().Int64("removed", removed).Msg("service: expired sessions cleaned up")
	}
	return removed, nil
}
