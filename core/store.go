package core

import (
	"context"
	"errors"
)

// ErrDocumentNotFound is returned by Store.GetByID for an absent document.
var ErrDocumentNotFound = errors.New("document not found")

// Document is a record as the store hands it out: a store-assigned
// identifier plus an untyped field map. Field values are whatever the
// store decoded (string, float64, int64, bool, nested maps); typing them
// is the domain normalizer's job, not the store's.
type Document struct {
	ID     string
	Fields map[string]interface{}
}

// Store is the record store boundary. Collections are schemaless: no
// referential integrity, no field validation, no cross-write transactions.
// Implementations live in storage/.
type Store interface {
	GetAll(ctx context.Context, collection string) ([]Document, error)
	GetByEquality(ctx context.Context, collection, field string, value interface{}) ([]Document, error)
	GetByID(ctx context.Context, collection, id string) (Document, error)

	// Add creates a document with a store-assigned id and returns the id.
	Add(ctx context.Context, collection string, fields map[string]interface{}) (string, error)
	// Set creates or fully overwrites the document with the given id.
	Set(ctx context.Context, collection, id string, fields map[string]interface{}) error
	// Update merges the given fields into an existing document.
	Update(ctx context.Context, collection, id string, fields map[string]interface{}) error
	// Delete removes the document; an unknown id is ErrDocumentNotFound.
	Delete(ctx context.Context, collection, id string) error
}
