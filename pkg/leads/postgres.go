package leads

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/plinyoo/starfield/pkg/cache"
	"github.com/plinyoo/starfield/pkg/errors"
)

// uniqueViolation is the Postgres SQLSTATE for duplicate keys.
const uniqueViolation = "23505"

const schema = `
CREATE TABLE IF NOT EXISTS leads (
	id               UUID PRIMARY KEY,
	name             TEXT NOT NULL,
	email            TEXT NOT NULL,
	message          TEXT NOT NULL DEFAULT '',
	form_type        TEXT NOT NULL,
	role             TEXT NOT NULL DEFAULT '',
	availability     TEXT NOT NULL DEFAULT '',
	linkedin         TEXT NOT NULL DEFAULT '',
	github           TEXT NOT NULL DEFAULT '',
	investment_range TEXT NOT NULL DEFAULT '',
	created_at       TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS leads_created_at_idx ON leads (created_at DESC);`

// PostgresStore keeps leads in a Postgres table.
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres connects with dsn, pings the server and creates the schema.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "open database")
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "ping database")
	}

	s := NewPostgresStore(db)
	if err := s.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// NewPostgresStore wraps an open database handle.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the leads table and index if missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "create schema")
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, l *Lead) error {
	const q = `
	INSERT INTO leads (id, name, email, message, form_type, role, availability,
		linkedin, github, investment_range, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := s.db.ExecContext(ctx, q,
		l.ID.String(), l.Name, l.Email, l.Message, string(l.FormType), l.Role, l.Availability,
		l.LinkedIn, l.GitHub, l.InvestmentRange, l.CreatedAt)
	return classifyPQ(err, l)
}

func (s *PostgresStore) List(ctx context.Context, opts ListOptions) ([]Lead, error) {
	q := `
	SELECT id, name, email, message, form_type, role, availability,
		linkedin, github, investment_range, created_at
	FROM leads`
	args := []any{}
	if opts.FormType != "" {
		q += ` WHERE form_type = $1`
		args = append(args, string(opts.FormType))
	}
	q += fmt.Sprintf(` ORDER BY created_at DESC, id LIMIT $%d`, len(args)+1)
	args = append(args, opts.limit())

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "list leads")
	}
	defer rows.Close()

	var out []Lead
	for rows.Next() {
		var (
			l        Lead
			id, form string
		)
		if err := rows.Scan(&id, &l.Name, &l.Email, &l.Message, &form, &l.Role, &l.Availability,
			&l.LinkedIn, &l.GitHub, &l.InvestmentRange, &l.CreatedAt); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStorage, err, "scan lead")
		}
		if err := l.ID.UnmarshalText([]byte(id)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStorage, err, "parse lead id %q", id)
		}
		l.FormType = FormType(form)
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "list leads")
	}
	return out, nil
}

func (s *PostgresStore) Close() error { return s.db.Close() }

// classifyPQ maps driver errors onto error codes. Connection-level failures
// are marked retryable.
func classifyPQ(err error, l *Lead) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		if pqErr.Code == uniqueViolation {
			return errors.Wrap(errors.ErrCodeConflict, err, "lead %s already exists", l.ID)
		}
		if pqErr.Code.Class() == "08" {
			return cache.Retryable(errors.Wrap(errors.ErrCodeStorage, err, "save lead %s", l.ID))
		}
		return errors.Wrap(errors.ErrCodeStorage, err, "save lead %s", l.ID)
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return cache.Retryable(errors.Wrap(errors.ErrCodeStorage, err, "save lead %s", l.ID))
}

var _ Store = (*PostgresStore)(nil)
