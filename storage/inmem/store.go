// Package inmem provides map-backed implementations of the record store and
// the user repository, for development and tests.
package inmem

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Lemoonautt/Unigestion-PJ/core/academic"
)

// Store keeps every collection as ordered JSON documents, the same shape the
// remote record store serves. Records keep insertion order.
type Store struct {
	mu   sync.RWMutex
	data map[string][]map[string]interface{}
}

var _ academic.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{data: make(map[string][]map[string]interface{})}
}

// NewStoreFromFile seeds the store from a JSON file mapping resource names to
// record arrays.
func NewStoreFromFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading seed file")
	}
	var data map[string][]map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrap(err, "parsing seed file")
	}
	s := NewStore()
	for resource, docs := range data {
		s.data[resource] = docs
	}
	return s, nil
}

func (s *Store) List(_ context.Context, resource string, out interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := s.data[resource]
	if docs == nil {
		docs = []map[string]interface{}{}
	}
	return decode(docs, out)
}

func (s *Store) Get(_ context.Context, resource, id string, out interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, doc := range s.data[resource] {
		if doc["id"] == id {
			return decode(doc, out)
		}
	}
	return errors.Wrapf(academic.ErrNotFound, "%s/%s", resource, id)
}

func (s *Store) Create(_ context.Context, resource string, in, out interface{}) error {
	doc, err := toDoc(in)
	if err != nil {
		return err
	}
	if id, _ := doc["id"].(string); id == "" {
		doc["id"] = uuid.New().String()
	}

	s.mu.Lock()
	s.data[resource] = append(s.data[resource], doc)
	s.mu.Unlock()

	if out == nil {
		return nil
	}
	return decode(doc, out)
}

// Patch merges the set fields of in into the stored document, jsonb style:
// absent fields keep their stored values.
func (s *Store) Patch(_ context.Context, resource, id string, in, out interface{}) error {
	patch, err := toDoc(in)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.data[resource] {
		if doc["id"] != id {
			continue
		}
		for k, v := range patch {
			if k == "id" {
				continue
			}
			doc[k] = v
		}
		if out == nil {
			return nil
		}
		return decode(doc, out)
	}
	return errors.Wrapf(academic.ErrNotFound, "%s/%s", resource, id)
}

func (s *Store) Delete(_ context.Context, resource, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.data[resource]
	for i, doc := range docs {
		if doc["id"] == id {
			s.data[resource] = append(docs[:i], docs[i+1:]...)
			return nil
		}
	}
	return errors.Wrapf(academic.ErrNotFound, "%s/%s", resource, id)
}

func toDoc(in interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, errors.Wrap(err, "encoding record")
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding record")
	}
	return doc, nil
}

func decode(in, out interface{}) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "encoding record")
	}
	return errors.Wrap(json.Unmarshal(raw, out), "decoding record")
}
