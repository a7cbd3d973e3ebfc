package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SPAuto-BookingService/pkg/sqlbuilder"
)

const (
	tableName   = "kv_store"
	columnKey   = "store_key"
	columnValue = "store_value"
	columnTime  = "updated_at"
)

// DBExecutor is the subset of *sql.DB the SQL store needs.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// SQLStore keeps values in a single kv_store table of a SQLite or Postgres database.
type SQLStore struct {
	db      DBExecutor
	builder sqlbuilder.Builder
	now     func() time.Time
}

// NewSQLStore creates the kv_store table when missing.
func NewSQLStore(ctx context.Context, db DBExecutor, builder sqlbuilder.Builder) (*SQLStore, error) {
	s := &SQLStore{
		db:      db,
		builder: builder,
		now:     time.Now,
	}

	if err := s.createTable(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *SQLStore) createTable(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		%s TEXT PRIMARY KEY,
		%s TEXT NOT NULL,
		%s TIMESTAMP NOT NULL
	)`, tableName, columnKey, columnValue, columnTime)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%w: createTable: %v", ErrExecQuery, err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := s.builder.Select(columnValue).
		From(tableName).
		Where(squirrel.Eq{columnKey: key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan value for key=%s: %v", ErrExecQuery, key, err)
	}

	return []byte(value), nil
}

// Set upserts the value. Both SQLite (3.24+) and Postgres support ON CONFLICT ... DO UPDATE.
func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := s.builder.Insert(tableName).
		Columns(columnKey, columnValue, columnTime).
		Values(key, string(value), s.now().UTC()).
		Suffix(fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = EXCLUDED.%s",
			columnKey, columnValue, columnValue, columnTime, columnTime)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert for key=%s: %v", ErrExecQuery, key, err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	query, args, err := s.builder.Delete(tableName).
		Where(squirrel.Eq{columnKey: key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete for key=%s: %v", ErrExecQuery, key, err)
	}
	return nil
}
