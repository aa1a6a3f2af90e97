package sqlitedb

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/Perlera89/campus/core"
	"github.com/Perlera89/campus/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS partitions (
	name TEXT PRIMARY KEY,
	blob BLOB NOT NULL
);`

// Storage persists partitions in a local sqlite file so the client session and
// selections survive restarts.
type Storage struct {
	db *sqlx.DB
}

var _ storage.Storage = (*Storage)(nil)

func Open(conf *core.Config) (*Storage, error) {
	db, err := sqlx.Open("sqlite3", conf.Storage.Path)
	if err != nil {
		return nil, errors.Wrap(err, "opening storage")
	}
	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "pinging storage")
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, errors.Wrap(err, "creating partition table")
	}
	return &Storage{db: db}, nil
}

func (s *Storage) Get(ctx context.Context, partition string) ([]byte, error) {
	var blob []byte
	err := s.db.GetContext(ctx, &blob, "SELECT blob FROM partitions WHERE name = ?", partition)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading partition %s", partition)
	}
	return blob, nil
}

func (s *Storage) Put(ctx context.Context, partition string, blob []byte) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO partitions (name, blob) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET blob = excluded.blob",
		partition, blob)
	return errors.Wrapf(err, "writing partition %s", partition)
}

func (s *Storage) Delete(ctx context.Context, partition string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM partitions WHERE name = ?", partition)
	return errors.Wrapf(err, "deleting partition %s", partition)
}

func (s *Storage) Close() error {
	return s.db.Close()
}
