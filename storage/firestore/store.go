// Package firestore adapts Cloud Firestore to the core.Store boundary; it
// is the production record store of the institute.
package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/digitalforgex/institute/core"
)

type Store struct {
	client *firestore.Client
}

var _ core.Store = (*Store)(nil) // interface compliance check

// Open connects using the configured project id; a credentials file is
// optional (application default credentials apply without one).
func Open(ctx context.Context) (*Store, error) {
	projectID := core.Conf.GetString("firestoreProjectID")
	if projectID == "" {
		return nil, errors.New("firestoreProjectID is not configured")
	}

	var opts []option.ClientOption
	if credsFile := core.Conf.GetString("firestoreCredentialsFile"); credsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credsFile))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to firestore")
	}
	return &Store{client: client}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

// wrapStoreErr wraps a failed call, promoting credential failures to a
// shutdown error: once firestore rejects our identity no call can succeed,
// and the API layer stops the process on these.
func wrapStoreErr(err error, format string, args ...interface{}) error {
	switch status.Code(err) {
	case codes.Unauthenticated, codes.PermissionDenied:
		return core.NewShutdownError(err.Error())
	}
	return errors.Wrapf(err, format, args...)
}

func (s *Store) GetAll(ctx context.Context, collection string) ([]core.Document, error) {
	return drain(s.client.Collection(collection).Documents(ctx))
}

func (s *Store) GetByEquality(ctx context.Context, collection, field string, value interface{}) ([]core.Document, error) {
	return drain(s.client.Collection(collection).Where(field, "==", value).Documents(ctx))
}

func (s *Store) GetByID(ctx context.Context, collection, id string) (core.Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return core.Document{}, core.ErrDocumentNotFound
		}
		return core.Document{}, wrapStoreErr(err, "getting %s/%s", collection, id)
	}
	return core.Document{ID: snap.Ref.ID, Fields: snap.Data()}, nil
}

func (s *Store) Add(ctx context.Context, collection string, fields map[string]interface{}) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, fields)
	if err != nil {
		return "", wrapStoreErr(err, "adding to %s", collection)
	}
	return ref.ID, nil
}

func (s *Store) Set(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, fields); err != nil {
		return wrapStoreErr(err, "setting %s/%s", collection, id)
	}
	return nil
}

func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	if _, err := s.client.Collection(collection).Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return core.ErrDocumentNotFound
		}
		return wrapStoreErr(err, "updating %s/%s", collection, id)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	// firestore deletes are idempotent, but the Store contract reports an
	// unknown id, so existence is checked first
	if _, err := s.client.Collection(collection).Doc(id).Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return core.ErrDocumentNotFound
		}
		return wrapStoreErr(err, "deleting %s/%s", collection, id)
	}
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return wrapStoreErr(err, "deleting %s/%s", collection, id)
	}
	return nil
}

func drain(it *firestore.DocumentIterator) ([]core.Document, error) {
	defer it.Stop()

	var docs []core.Document
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStoreErr(err, "iterating documents")
		}
		docs = append(docs, core.Document{ID: snap.Ref.ID, Fields: snap.Data()})
	}
	return docs, nil
}
