package web

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/boltdb/bolt"
	"github.com/dmitrijs2005/formsclient/internal/client/models"
	"github.com/dmitrijs2005/formsclient/internal/client/session"
	"github.com/dmitrijs2005/formsclient/internal/common"
)

var (
	sessionsBucket = []byte("Sessions")
	metaBucket     = []byte("Meta")
	saltKey        = []byte("sealSalt")
)

// record is how one browser session is kept in the Sessions bucket.
type record struct {
	UserID    models.ID `json:"userId"`
	Token     []byte    `json:"token"`
	Role      string    `json:"role"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BoltSessions keeps one identity triple per browser session cookie.
type BoltSessions struct {
	db     *bolt.DB
	sealer *session.Sealer
	now    func() time.Time
}

// OpenBoltSessions opens (or creates) the session file at path. A non-empty
// passphrase seals tokens at rest.
func OpenBoltSessions(path, passphrase string) (*BoltSessions, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	var salt []byte
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(sessionsBucket); err != nil {
			return err
		}
		meta, err := tx.CreateBucketIfNotExists(metaBucket)
		if err != nil {
			return err
		}
		if v := meta.Get(saltKey); v != nil {
			salt = append([]byte(nil), v...)
			return nil
		}
		salt = common.GenerateRandByteArray(16)
		return meta.Put(saltKey, salt)
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init session db: %w", err)
	}

	return &BoltSessions{db: db, sealer: session.NewSealer(passphrase, salt), now: time.Now}, nil
}

func (b *BoltSessions) Close() error {
	return b.db.Close()
}

// For returns the store bound to one session id.
func (b *BoltSessions) For(id string) session.Store {
	return &boltStore{parent: b, key: []byte(id)}
}

// Purge deletes every session whose token has expired and returns how many
// were removed.
func (b *BoltSessions) Purge(now time.Time) (int, error) {
	var removed int
	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(sessionsBucket)

		var dead [][]byte
		err := bucket.ForEach(func(k, v []byte) error {
			id, err := b.decode(v)
			if err != nil || id.Expired(now) {
				dead = append(dead, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, k := range dead {
			if err := bucket.Delete(k); err != nil {
				return err
			}
		}
		removed = len(dead)
		return nil
	})
	return removed, err
}

func (b *BoltSessions) decode(raw []byte) (session.Identity, error) {
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return session.Identity{}, fmt.Errorf("parse session: %w", err)
	}
	token, err := b.sealer.OpenToken(rec.Token)
	if err != nil {
		return session.Identity{}, err
	}
	return session.Identity{UserID: rec.UserID, Token: token, Role: rec.Role}, nil
}

type boltStore struct {
	parent *BoltSessions
	key    []byte
}

func (s *boltStore) Load(_ context.Context) (session.Identity, error) {
	var raw []byte
	err := s.parent.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(sessionsBucket).Get(s.key); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil || raw == nil {
		return session.Identity{}, err
	}
	return s.parent.decode(raw)
}

func (s *boltStore) Save(_ context.Context, id session.Identity) error {
	token, err := s.parent.sealer.SealToken(id.Token)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(record{UserID: id.UserID, Token: token, Role: id.Role, UpdatedAt: s.parent.now()})
	if err != nil {
		return err
	}
	return s.parent.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionsBucket).Put(s.key, raw)
	})
}

func (s *boltStore) Clear(_ context.Context) error {
	return s.parent.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionsBucket).Delete(s.key)
	})
}
