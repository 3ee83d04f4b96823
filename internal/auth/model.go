package auth

import (
	"time"

	"github.com/gofrs/uuid"
)

type Account struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type Session struct {
	Token     uuid.UUID `json:"token" db:"token"`
	AccountID int64     `json:"account_id" db:"account_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
}

// Identity is an authenticated caller together with the permission codenames
// granted through its groups.
type Identity struct {
	Account     Account
	permissions map[string]struct{}
}

func NewIdentity(account Account, permissions []string) *Identity {
	set := make(map[string]struct{}, len(permissions))
	for _, p := range permissions {
		set[p] = struct{}{}
	}
	return &Identity{Account: account, permissions: set}
}

// Can reports whether the identity holds the given permission codename,
// e.g. "view_product" or "delete_customer".
func (i *Identity) Can(codename string) bool {
	_, ok := i.permissions[codename]
	return ok
}
