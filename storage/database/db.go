// Package database provides the postgres backends: the jsonb record store
// served by the devstore app and the user account repository.
package database

import (
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/Lemoonautt/Unigestion-PJ/core"
)

func Open(conf *core.Config) (*sqlx.DB, error) {
	sslMode := "require"
	if conf.Database.DisableTLS {
		sslMode = "disable"
	}
	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   conf.Database.Engine,
		User:     url.UserPassword(conf.Database.User, conf.Database.Password),
		Host:     conf.Database.Address(),
		Path:     conf.Database.Name,
		RawQuery: q.Encode(),
	}

	db, err := sqlx.Open(conf.Database.Engine, u.String())
	if err != nil {
		return nil, errors.Wrap(err, "opening DB")
	}
	if err := ping(db); err != nil {
		return nil, err
	}
	return db, nil
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(db *sqlx.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}
	return errors.Wrap(err, "DB ping timeout")
}

const schema = `
CREATE TABLE IF NOT EXISTS records (
    seq      BIGSERIAL PRIMARY KEY,
    resource TEXT  NOT NULL,
    id       TEXT  NOT NULL,
    doc      JSONB NOT NULL,
    UNIQUE (resource, id)
);
CREATE INDEX IF NOT EXISTS records_resource_idx ON records (resource);

CREATE TABLE IF NOT EXISTS users (
    id            TEXT        PRIMARY KEY,
    name          TEXT        NOT NULL,
    username      TEXT        NOT NULL UNIQUE,
    email         TEXT        NOT NULL UNIQUE,
    is_active     BOOLEAN     NOT NULL DEFAULT TRUE,
    roles         TEXT[]      NOT NULL DEFAULT '{}',
    student_id    TEXT        NOT NULL DEFAULT '',
    password_hash BYTEA       NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL,
    updated_at    TIMESTAMPTZ NOT NULL,
    last_login    TIMESTAMPTZ
);
`

// EnsureSchema creates the tables if they do not exist.
func EnsureSchema(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return errors.Wrap(err, "ensuring schema")
}
