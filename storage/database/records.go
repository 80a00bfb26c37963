package database

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Lemoonautt/Unigestion-PJ/core/academic"
)

// Store persists records as jsonb documents, one row per record. Insertion
// order is preserved through the seq column.
type Store struct {
	db *sqlx.DB
}

var _ academic.Store = (*Store)(nil)

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) List(ctx context.Context, resource string, out interface{}) error {
	var docs [][]byte
	err := s.db.SelectContext(ctx, &docs,
		`SELECT doc FROM records WHERE resource = $1 ORDER BY seq`, resource)
	if err != nil {
		return errors.Wrapf(err, "listing %s", resource)
	}

	// assemble the rows into one JSON array
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, doc := range docs {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(doc)
	}
	buf.WriteByte(']')
	return errors.Wrapf(json.Unmarshal(buf.Bytes(), out), "decoding %s", resource)
}

func (s *Store) Get(ctx context.Context, resource, id string, out interface{}) error {
	var doc []byte
	err := s.db.GetContext(ctx, &doc,
		`SELECT doc FROM records WHERE resource = $1 AND id = $2`, resource, id)
	if err == sql.ErrNoRows {
		return errors.Wrapf(academic.ErrNotFound, "%s/%s", resource, id)
	}
	if err != nil {
		return errors.Wrapf(err, "getting %s/%s", resource, id)
	}
	return errors.Wrapf(json.Unmarshal(doc, out), "decoding %s/%s", resource, id)
}

func (s *Store) Create(ctx context.Context, resource string, in, out interface{}) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "encoding record")
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return errors.Wrap(err, "decoding record")
	}
	if id, _ := doc["id"].(string); id == "" {
		doc["id"] = uuid.New().String()
	}
	raw, err = json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "encoding record")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (resource, id, doc) VALUES ($1, $2, $3)`,
		resource, doc["id"], raw)
	if err != nil {
		return errors.Wrapf(err, "creating %s", resource)
	}

	if out == nil {
		return nil
	}
	return errors.Wrap(json.Unmarshal(raw, out), "decoding record")
}

// Patch merges the set fields of in into the stored document via the jsonb
// concatenation operator; the id field cannot be rewritten.
func (s *Store) Patch(ctx context.Context, resource, id string, in, out interface{}) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "encoding patch")
	}

	var doc []byte
	err = s.db.GetContext(ctx, &doc,
		`UPDATE records SET doc = (doc || $3::jsonb) - 'id' || jsonb_build_object('id', id)
		 WHERE resource = $1 AND id = $2 RETURNING doc`,
		resource, id, raw)
	if err == sql.ErrNoRows {
		return errors.Wrapf(academic.ErrNotFound, "%s/%s", resource, id)
	}
	if err != nil {
		return errors.Wrapf(err, "patching %s/%s", resource, id)
	}

	if out == nil {
		return nil
	}
	return errors.Wrapf(json.Unmarshal(doc, out), "decoding %s/%s", resource, id)
}

func (s *Store) Delete(ctx context.Context, resource, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM records WHERE resource = $1 AND id = $2`, resource, id)
	if err != nil {
		return errors.Wrapf(err, "deleting %s/%s", resource, id)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.Wrapf(academic.ErrNotFound, "%s/%s", resource, id)
	}
	return nil
}
