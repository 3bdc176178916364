package mystore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// postgresStore keeps each kind in its own key-value table with a jsonb payload.
type postgresStore[T any] struct {
	db    *sqlx.DB
	table string
}

type pgRow struct {
	UID   string `db:"uid"`
	Value []byte `db:"value"`
}

func newPostgresStore[T any](c context.Context) (*postgresStore[T], func(), error) {
	db, err := sqlx.ConnectContext(c, "postgres", os.Getenv("POSTGRES_DSN"))
	if err != nil {
		return nil, nil, fmt.Errorf("error connecting to postgres: %s", err)
	}

	val := new(T)
	kind := fmt.Sprintf("%T", *val)
	if strings.Contains(kind, ".") {
		kind = strings.Split(kind, ".")[1]
	}
	table := "kv_" + strings.ToLower(kind)

	_, err = db.ExecContext(c, fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (uid TEXT PRIMARY KEY, value JSONB NOT NULL)`, table))
	if err != nil {
		return nil, nil, fmt.Errorf("error creating table %s: %s", table, err)
	}

	return &postgresStore[T]{
			db:    db,
			table: table,
		}, func() {
			db.Close()
		}, nil
}

func (s *postgresStore[T]) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	tx, err := s.db.BeginTxx(c, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %s", err)
	}

	// Shadow original context with new transactional context
	ctx := context.WithValue(c, ctxTransactionKey{}, tx)

	err = f(ctx)
	if err != nil {
		rollbackError := tx.Rollback()
		if rollbackError != nil {
			return fmt.Errorf("error rolling back transaction: %s (original error: %s)", rollbackError, err)
		}

		return err
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("error committing transaction: %s", err)
	}

	return nil
}

// execer allows the same statements to run inside and outside a transaction
type execer interface {
	ExecContext(c context.Context, query string, args ...any) (sql.Result, error)
	QueryxContext(c context.Context, query string, args ...any) (*sqlx.Rows, error)
	GetContext(c context.Context, dest any, query string, args ...any) error
}

func (s *postgresStore[T]) execer(c context.Context) execer {
	if tx, ok := c.Value(ctxTransactionKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return s.db
}

func (s *postgresStore[T]) Put(c context.Context, uid string, value T) error {
	jsonBytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error serializing entity %s with uid %s: %s", s.table, uid, err)
	}

	_, err = s.execer(c).ExecContext(c, fmt.Sprintf(
		`INSERT INTO %s (uid, value) VALUES ($1, $2)
		 ON CONFLICT (uid) DO UPDATE SET value = EXCLUDED.value`, s.table), uid, jsonBytes)
	if err != nil {
		return fmt.Errorf("error storing entity %s with uid %s: %s", s.table, uid, err)
	}

	return nil
}

func (s *postgresStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	value := new(T)

	row := pgRow{}
	err := s.execer(c).GetContext(c, &row, fmt.Sprintf(
		`SELECT uid, value FROM %s WHERE uid = $1`, s.table), uid)
	if err != nil {
		if err == sql.ErrNoRows {
			return *value, false, nil
		}
		return *value, false, fmt.Errorf("error fetching entity %s with uid %s: %s", s.table, uid, err)
	}

	err = json.Unmarshal(row.Value, value)
	if err != nil {
		return *value, false, fmt.Errorf("error deserializing entity %s with uid %s: %s", s.table, uid, err)
	}

	return *value, true, nil
}

func (s *postgresStore[T]) Remove(c context.Context, uid string) error {
	_, err := s.execer(c).ExecContext(c, fmt.Sprintf(
		`DELETE FROM %s WHERE uid = $1`, s.table), uid)
	if err != nil {
		return fmt.Errorf("error removing entity %s with uid %s: %s", s.table, uid, err)
	}

	return nil
}

func (s *postgresStore[T]) List(c context.Context) ([]T, error) {
	return s.selectRows(c, fmt.Sprintf(`SELECT uid, value FROM %s`, s.table))
}

func (s *postgresStore[T]) Query(c context.Context, filters []Filter, orderByField string) ([]T, error) {
	query := fmt.Sprintf(`SELECT uid, value FROM %s`, s.table)

	args := []any{}
	clauses := []string{}
	for _, f := range filters {
		args = append(args, fmt.Sprintf("%v", f.Value))
		clauses = append(clauses, fmt.Sprintf("value->>'%s' %s $%d", f.Field, f.Compare, len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	if orderByField != "" {
		query += fmt.Sprintf(" ORDER BY value->>'%s'", orderByField)
	}

	return s.selectRows(c, query, args...)
}

func (s *postgresStore[T]) selectRows(c context.Context, query string, args ...any) ([]T, error) {
	rows, err := s.execer(c).QueryxContext(c, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error fetching entities %s: %s", s.table, err)
	}
	defer rows.Close()

	results := []T{}
	for rows.Next() {
		row := pgRow{}
		err = rows.StructScan(&row)
		if err != nil {
			return nil, fmt.Errorf("error scanning entity %s: %s", s.table, err)
		}

		value := new(T)
		err = json.Unmarshal(row.Value, value)
		if err != nil {
			return nil, fmt.Errorf("error deserializing entity %s: %s", s.table, err)
		}
		results = append(results, *value)
	}

	return results, rows.Err()
}
