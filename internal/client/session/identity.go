package session

import (
	"context"
	"time"

	"github.com/dmitrijs2005/formsclient/internal/client/models"
	"github.com/dmitrijs2005/formsclient/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the session identity triple.
type Identity struct {
	UserID models.ID
	Token  string
	Role   string
}

func (i Identity) IsZero() bool {
	return i.UserID == "" && i.Token == "" && i.Role == ""
}

func (i Identity) IsAdmin() bool {
	return i.Role == common.RoleAdmin
}

// AuthorizationHeader is the value sent in the Authorization header. An
// empty token still produces the "Bearer " prefix.
func (i Identity) AuthorizationHeader() string {
	return common.BearerScheme + i.Token
}

// ExpiresAt reads the exp claim of a JWT bearer token without verifying the
// signature; the client has no key and only uses it to drop dead sessions.
// ok is false for opaque tokens or tokens without exp.
func (i Identity) ExpiresAt() (exp time.Time, ok bool) {
	if i.Token == "" {
		return time.Time{}, false
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(i.Token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Expired reports whether the token carries an exp claim at or before now.
func (i Identity) Expired(now time.Time) bool {
	exp, ok := i.ExpiresAt()
	return ok && !now.Before(exp)
}

// Store persists one identity triple.
type Store interface {
	// Load returns the zero Identity and a nil error when nothing is stored.
	Load(ctx context.Context) (Identity, error)
	Save(ctx context.Context, id Identity) error
	Clear(ctx context.Context) error
}

// Require loads the identity and fails with common.ErrNoSession when the
// store is empty or with common.ErrTokenExpired (after clearing the store)
// when the token has expired.
func Require(ctx context.Context, s Store, now time.Time) (Identity, error) {
	id, err := s.Load(ctx)
	if err != nil {
		return Identity{}, err
	}
	if id.IsZero() {
		return Identity{}, common.ErrNoSession
	}
	if id.Expired(now) {
		if err := s.Clear(ctx); err != nil {
			return Identity{}, err
		}
		return Identity{}, common.ErrTokenExpired
	}
	return id, nil
}
