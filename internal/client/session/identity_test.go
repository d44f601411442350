package session

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/formsclient/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return s
}

func TestIdentity_AuthorizationHeader(t *testing.T) {
	assert.Equal(t, "Bearer t1", Identity{Token: "t1"}.AuthorizationHeader())
	assert.Equal(t, "Bearer ", Identity{}.AuthorizationHeader())
}

func TestIdentity_IsAdmin(t *testing.T) {
	assert.True(t, Identity{Role: "Admin"}.IsAdmin())
	assert.False(t, Identity{Role: "User"}.IsAdmin())
	assert.False(t, Identity{Role: "admin"}.IsAdmin())
}

func TestIdentity_ExpiresAt(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)

	got, ok := Identity{Token: signedToken(t, exp)}.ExpiresAt()
	require.True(t, ok)
	assert.True(t, exp.Equal(got))

	_, ok = Identity{Token: "opaque-token"}.ExpiresAt()
	assert.False(t, ok)

	_, ok = Identity{}.ExpiresAt()
	assert.False(t, ok)
}

func TestIdentity_Expired(t *testing.T) {
	now := time.Now()

	assert.True(t, Identity{Token: signedToken(t, now.Add(-time.Minute))}.Expired(now))
	assert.False(t, Identity{Token: signedToken(t, now.Add(time.Minute))}.Expired(now))
	assert.False(t, Identity{Token: "opaque"}.Expired(now))
}

func TestRequire(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("empty store", func(t *testing.T) {
		_, err := Require(ctx, NewMemoryStore(), now)
		require.ErrorIs(t, err, common.ErrNoSession)
	})

	t.Run("live session", func(t *testing.T) {
		s := NewMemoryStore()
		want := Identity{UserID: "u1", Token: signedToken(t, now.Add(time.Hour)), Role: "User"}
		require.NoError(t, s.Save(ctx, want))

		got, err := Require(ctx, s, now)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("expired session is cleared", func(t *testing.T) {
		s := NewMemoryStore()
		require.NoError(t, s.Save(ctx, Identity{UserID: "u1", Token: signedToken(t, now.Add(-time.Hour)), Role: "User"}))

		_, err := Require(ctx, s, now)
		require.ErrorIs(t, err, common.ErrTokenExpired)

		left, err := s.Load(ctx)
		require.NoError(t, err)
		assert.True(t, left.IsZero())
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	id, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, id.IsZero())

	want := Identity{UserID: "u1", Token: "t1", Role: "Admin"}
	require.NoError(t, s.Save(ctx, want))
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, s.Clear(ctx))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}
