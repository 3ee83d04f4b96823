package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrUsernameExists  = errors.New("username already exists")
	ErrGroupNotFound   = errors.New("group not found")
)

type Repository interface {
	CreateAccount(ctx context.Context, a *Account) (int64, error)
	GetAccountByUsername(ctx context.Context, username string) (*Account, error)
	GetAccountByID(ctx context.Context, id int64) (*Account, error)
	AddAccountToGroup(ctx context.Context, accountID int64, groupName string) error
	ListPermissions(ctx context.Context, accountID int64) ([]string, error)
	CreateSession(ctx context.Context, s *Session) error
	GetSession(ctx context.Context, token uuid.UUID) (*Session, error)
	DeleteSession(ctx context.Context, token uuid.UUID) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type repository struct {
	db DB
}

func NewRepository(db DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateAccount(ctx context.Context, a *Account) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO catalog_service.accounts (username, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`, a.Username, a.PasswordHash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, ErrUsernameExists
		}
		return 0, fmt.Errorf("repository: failed to insert account: %w", err)
	}
	return id, nil
}

func (r *repository) GetAccountByUsername(ctx context.Context, username string) (*Account, error) {
	var a Account
	err := r.db.QueryRow(ctx, `
		SELECT id, username, password_hash, created_at
		FROM catalog_service.accounts
		WHERE username = $1
	`, username).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("repository: failed to select account by username: %w", err)
	}
	return &a, nil
}

func (r *repository) GetAccountByID(ctx context.Context, id int64) (*Account, error) {
	var a Account
	err := r.db.QueryRow(ctx, `
		SELECT id, username, password_hash, created_at
		FROM catalog_service.accounts
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("repository: failed to select account by id %d: %w", id, err)
	}
	return &a, nil
}

func (r *repository) AddAccountToGroup(ctx context.Context, accountID int64, groupName string) error {
	cmdTag, err := r.db.Exec(ctx, `
		INSERT INTO catalog_service.account_groups (account_id, group_id)
		SELECT $1, id FROM catalog_service.groups WHERE name = $2
		ON CONFLICT DO NOTHING
	`, accountID, groupName)
	if err != nil {
		return fmt.Errorf("repository: failed to add account %d to group %s: %w", accountID, groupName, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the group does not exist or the membership was already there.
		// Distinguish so callers can report a bad group name.
		var exists bool
		if checkErr := r.db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM catalog_service.groups WHERE name = $1)`,
			groupName).Scan(&exists); checkErr != nil {
			return fmt.Errorf("repository: failed to check group %s: %w", groupName, checkErr)
		}
		if !exists {
			return ErrGroupNotFound
		}
	}
	return nil
}

func (r *repository) ListPermissions(ctx context.Context, accountID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT gp.codename
		FROM catalog_service.account_groups ag
		JOIN catalog_service.group_permissions gp ON gp.group_id = ag.group_id
		WHERE ag.account_id = $1
		ORDER BY gp.codename
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query permissions for account %d: %w", accountID, err)
	}
	defer rows.Close()

	permissions := make([]string, 0)
	for rows.Next() {
		var codename string
		if err := rows.Scan(&codename); err != nil {
			return nil, fmt.Errorf("repository: failed to scan permission: %w", err)
		}
		permissions = append(permissions, codename)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating permissions: %w", err)
	}
	return permissions, nil
}

func (r *repository) CreateSession(ctx context.Context, s *Session) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO catalog_service.sessions (token, account_id, expires_at)
		VALUES ($1, $2, $3)
	`, s.Token, s.AccountID, s.ExpiresAt)
	if err != nil {
		return fmt.Errorf("repository: failed to insert session: %w", err)
	}
	return nil
}

func (r *repository) GetSession(ctx context.Context, token uuid.UUID) (*Session, error) {
	var s Session
	err := r.db.QueryRow(ctx, `
		SELECT token, account_id, created_at, expires_at
		FROM catalog_service.sessions
		WHERE token = $1
	`, token).Scan(&s.Token, &s.AccountID, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("repository: failed to select session: %w", err)
	}
	return &s, nil
}

func (r *repository) DeleteSession(ctx context.Context, token uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `
		DELETE FROM catalog_service.sessions WHERE token = $1
	`, token)
	if err != nil {
		return fmt.Errorf("repository: failed to delete session: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *repository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		DELETE FROM catalog_service.sessions WHERE expires_at <= now()
	`)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to delete expired sessions: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
