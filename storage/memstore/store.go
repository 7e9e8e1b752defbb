// Package memstore is an in-memory record store for tests and local DEV
// runs. Collections spring into existence on first touch; documents keep
// insertion order so repeated full reads of an unchanged store are
// identical.
package memstore

import (
	"context"
	"reflect"
	"sync"

	"github.com/google/uuid"

	"github.com/digitalforgex/institute/core"
)

type (
	Store struct {
		mu          sync.RWMutex
		collections map[string]*table
	}

	table struct {
		docs  map[string]map[string]interface{}
		order []string // ids, insertion order
	}
)

var _ core.Store = (*Store)(nil) // interface compliance check

func Open() *Store {
	return &Store{collections: make(map[string]*table)}
}

// collection creates the table on first touch; callers must hold the
// write lock. Readers go through the map directly so an absent collection
// just reads as empty.
func (s *Store) collection(name string) *table {
	tbl, ok := s.collections[name]
	if !ok {
		tbl = &table{docs: make(map[string]map[string]interface{})}
		s.collections[name] = tbl
	}
	return tbl
}

func (s *Store) GetAll(_ context.Context, collection string) ([]core.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tbl, ok := s.collections[collection]
	if !ok {
		return []core.Document{}, nil
	}
	docs := make([]core.Document, 0, len(tbl.order))
	for _, id := range tbl.order {
		docs = append(docs, core.Document{ID: id, Fields: copyFields(tbl.docs[id])})
	}
	return docs, nil
}

func (s *Store) GetByEquality(_ context.Context, collection, field string, value interface{}) ([]core.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tbl, ok := s.collections[collection]
	if !ok {
		return nil, nil
	}
	var docs []core.Document
	for _, id := range tbl.order {
		if reflect.DeepEqual(tbl.docs[id][field], value) {
			docs = append(docs, core.Document{ID: id, Fields: copyFields(tbl.docs[id])})
		}
	}
	return docs, nil
}

func (s *Store) GetByID(_ context.Context, collection, id string) (core.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tbl, ok := s.collections[collection]
	if !ok {
		return core.Document{}, core.ErrDocumentNotFound
	}
	fields, ok := tbl.docs[id]
	if !ok {
		return core.Document{}, core.ErrDocumentNotFound
	}
	return core.Document{ID: id, Fields: copyFields(fields)}, nil
}

func (s *Store) Add(_ context.Context, collection string, fields map[string]interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	tbl := s.collection(collection)
	tbl.docs[id] = copyFields(fields)
	tbl.order = append(tbl.order, id)
	return id, nil
}

func (s *Store) Set(_ context.Context, collection, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tbl := s.collection(collection)
	if _, ok := tbl.docs[id]; !ok {
		tbl.order = append(tbl.order, id)
	}
	tbl.docs[id] = copyFields(fields)
	return nil
}

func (s *Store) Update(_ context.Context, collection, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.collection(collection).docs[id]
	if !ok {
		return core.ErrDocumentNotFound
	}
	for k, v := range fields {
		doc[k] = copyValue(v)
	}
	return nil
}

func (s *Store) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tbl := s.collection(collection)
	if _, ok := tbl.docs[id]; !ok {
		return core.ErrDocumentNotFound
	}
	delete(tbl.docs, id)
	for i, oid := range tbl.order {
		if oid == id {
			tbl.order = append(tbl.order[:i], tbl.order[i+1:]...)
			break
		}
	}
	return nil
}

// copyFields keeps handed-out documents detached from the tables; a caller
// mutating a returned map must not corrupt the store.
func copyFields(fields map[string]interface{}) map[string]interface{} {
	cp := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		cp[k] = copyValue(v)
	}
	return cp
}

func copyValue(v interface{}) interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		return copyFields(m)
	}
	return v
}
