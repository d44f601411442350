package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/formsclient/internal/client/models"
	"github.com/dmitrijs2005/formsclient/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/formsclient/internal/common"
	"github.com/dmitrijs2005/formsclient/internal/dbx"
)

const saltKey = "sealSalt"

// MetadataStore keeps the identity triple in the SQLite metadata table under
// the keys userId, token and role.
type MetadataStore struct {
	db     *sql.DB
	sealer *Sealer
}

// NewMetadataStore binds a store to db. A non-empty passphrase enables
// sealing; its salt is created on first use and kept in the same table.
func NewMetadataStore(ctx context.Context, db *sql.DB, passphrase string) (*MetadataStore, error) {
	s := &MetadataStore{db: db}
	if passphrase == "" {
		return s, nil
	}

	repo := metadata.NewSQLiteRepository(db)
	salt, err := repo.Get(ctx, saltKey)
	if err != nil {
		return nil, err
	}
	if salt == nil {
		salt = common.GenerateRandByteArray(16)
		if err := repo.Set(ctx, saltKey, salt); err != nil {
			return nil, err
		}
	}
	s.sealer = NewSealer(passphrase, salt)
	return s, nil
}

func (s *MetadataStore) Load(ctx context.Context) (Identity, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	values, err := repo.GetMany(ctx, common.SessionKeyUserID, common.SessionKeyToken, common.SessionKeyRole)
	if err != nil {
		return Identity{}, err
	}

	id := Identity{
		UserID: models.ID(values[common.SessionKeyUserID]),
		Role:   string(values[common.SessionKeyRole]),
	}
	if raw, ok := values[common.SessionKeyToken]; ok {
		token, err := s.sealer.OpenToken(raw)
		if err != nil {
			return Identity{}, err
		}
		id.Token = token
	}
	return id, nil
}

func (s *MetadataStore) Save(ctx context.Context, id Identity) error {
	sealed, err := s.sealer.SealToken(id.Token)
	if err != nil {
		return fmt.Errorf("seal token: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.SessionKeyUserID, []byte(id.UserID)); err != nil {
			return err
		}
		if err := repo.Set(ctx, common.SessionKeyToken, sealed); err != nil {
			return err
		}
		return repo.Set(ctx, common.SessionKeyRole, []byte(id.Role))
	})
}

func (s *MetadataStore) Clear(ctx context.Context) error {
	repo := metadata.NewSQLiteRepository(s.db)
	return repo.Delete(ctx, common.SessionKeyUserID, common.SessionKeyToken, common.SessionKeyRole)
}
