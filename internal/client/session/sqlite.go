package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/founderhub/internal/client/migrations"
	"github.com/dmitrijs2005/founderhub/internal/client/repositories/kv"
	"github.com/dmitrijs2005/founderhub/internal/common"
	"github.com/dmitrijs2005/founderhub/internal/dbx"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the pair in the "session" table of a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

var _ ClosableStore = (*SQLiteStore)(nil)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// OpenSQLite opens (creating if needed) the database at dsn and migrates it.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// writers are serialized in-process rather than by SQLITE_BUSY retries
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewSQLiteStore(db), nil
}

// NewSQLiteStore wraps an already migrated database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get reads the whole session table in one query, so both halves of the pair
// come from the same snapshot.
func (s *SQLiteStore) Get(ctx context.Context) (*Credential, error) {
	values, err := kv.NewSQLiteRepository(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("credential store: %w", err)
	}
	return fromValues(values[common.AccessTokenKey], values[common.RefreshTokenKey]), nil
}

func (s *SQLiteStore) Set(ctx context.Context, c Credential) error {
	if c.Access == "" {
		return s.Clear(ctx)
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)

		if err := repo.Set(ctx, common.AccessTokenKey, []byte(c.Access)); err != nil {
			return err
		}
		if c.Refresh == "" {
			return repo.Delete(ctx, common.RefreshTokenKey)
		}
		return repo.Set(ctx, common.RefreshTokenKey, []byte(c.Refresh))
	})
	if err != nil {
		return fmt.Errorf("credential store: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if err := kv.NewSQLiteRepository(s.db).Clear(ctx); err != nil {
		return fmt.Errorf("credential store: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
