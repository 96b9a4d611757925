package credentials

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/its-steo/GrandV-sub001/internal/client/models"
	"github.com/its-steo/GrandV-sub001/internal/dbx"
)

// Storage keys. Two separate entries, always written and cleared together
// inside one transaction so a crash cannot leave half a credential behind.
const (
	KeyToken = "auth_token"
	KeyUser  = "user"
)

// Store holds the persisted credential record: an opaque bearer token and
// the serialized user profile snapshot.
//
// A Store constructed with a nil DB degrades gracefully: Save and Clear are
// silent no-ops and Read reports no session. Storage errors are never
// surfaced past this type; a broken local database reads as "not signed in".
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Save writes both entries as a single unit.
func (s *Store) Save(ctx context.Context, token string, user models.User) error {
	if s == nil || s.db == nil {
		return nil
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, KeyUser, raw)
	})
}

// Read returns the persisted pair. ok is false when either entry is missing,
// the cached profile fails to parse, or the database is unavailable.
func (s *Store) Read(ctx context.Context) (token string, user *models.User, ok bool) {
	if s == nil || s.db == nil {
		return "", nil, false
	}

	repo := NewSQLiteRepository(s.db)

	tok, err := repo.Get(ctx, KeyToken)
	if err != nil || len(tok) == 0 {
		return "", nil, false
	}

	raw, err := repo.Get(ctx, KeyUser)
	if err != nil || len(raw) == 0 {
		return "", nil, false
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return "", nil, false
	}

	return string(tok), &u, true
}

// Clear removes both entries unconditionally, as a single unit.
func (s *Store) Clear(ctx context.Context) error {
	if s == nil || s.db == nil {
		return nil
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, KeyToken); err != nil {
			return err
		}
		return repo.Delete(ctx, KeyUser)
	})
}
