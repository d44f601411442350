package web

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/boltdb/bolt"
	"github.com/dmitrijs2005/formsclient/internal/client/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSessions(t *testing.T, path, passphrase string) *BoltSessions {
	t.Helper()
	s, err := OpenBoltSessions(path, passphrase)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestBoltSessions_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	s := openSessions(t, filepath.Join(t.TempDir(), "s.db"), "")

	a := s.For("a")
	b := s.For("b")

	got, err := a.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	want := session.Identity{UserID: "1", Token: "tok", Role: "Admin"}
	require.NoError(t, a.Save(ctx, want))

	got, err = a.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// sessions are isolated per cookie
	got, err = b.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	require.NoError(t, a.Clear(ctx))
	got, err = a.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	// clearing an absent session is fine
	require.NoError(t, b.Clear(ctx))
}

func TestBoltSessions_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "s.db")

	s, err := OpenBoltSessions(path, "pass")
	require.NoError(t, err)
	require.NoError(t, s.For("x").Save(ctx, session.Identity{UserID: "7", Token: "secret-token", Role: "User"}))
	require.NoError(t, s.Close())

	s = openSessions(t, path, "pass")
	got, err := s.For("x").Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "secret-token", got.Token)
}

func TestBoltSessions_SealsTokens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "s.db")

	s, err := OpenBoltSessions(path, "pass")
	require.NoError(t, err)
	require.NoError(t, s.For("x").Save(ctx, session.Identity{UserID: "7", Token: "secret-token", Role: "User"}))
	require.NoError(t, s.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-token")

	// a different passphrase cannot open the token
	s = openSessions(t, path, "other")
	_, err = s.For("x").Load(ctx)
	require.Error(t, err)
}

func TestBoltSessions_Purge(t *testing.T) {
	ctx := context.Background()
	s := openSessions(t, filepath.Join(t.TempDir(), "s.db"), "")
	now := time.Now()

	require.NoError(t, s.For("live").Save(ctx, session.Identity{UserID: "1", Token: signedToken(t, now.Add(time.Hour))}))
	require.NoError(t, s.For("dead").Save(ctx, session.Identity{UserID: "2", Token: signedToken(t, now.Add(-time.Hour))}))
	require.NoError(t, s.For("opaque").Save(ctx, session.Identity{UserID: "3", Token: "not-a-jwt"}))

	// a record that no longer parses is dropped as well
	require.NoError(t, s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionsBucket).Put([]byte("junk"), []byte("{"))
	}))

	n, err := s.Purge(now)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for key, alive := range map[string]bool{"live": true, "dead": false, "opaque": true} {
		got, err := s.For(key).Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, alive, !got.IsZero(), key)
	}
}

func TestOpenBoltSessions_BadPath(t *testing.T) {
	_, err := OpenBoltSessions(filepath.Join(t.TempDir(), "missing", "s.db"), "")
	require.Error(t, err)
}
