package institute

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/digitalforgex/institute/core"
	emailsvc "github.com/digitalforgex/institute/services/email"
	logsvc "github.com/digitalforgex/institute/services/logger"
	"github.com/digitalforgex/institute/storage/memstore"
)

func setup(t *testing.T) (*Service, *memstore.Store) {
	t.Helper()
	core.Conf.Set("testMode", true)
	emailsvc.ClearSentMessages()
	store := memstore.Open()
	logger := logsvc.NewConsoleLogger(log.New(io.Discard, "", 0))
	return NewService(store, logger, emailsvc.NewConsoleService()), store
}

func addDoc(t *testing.T, store *memstore.Store, collection string, fields map[string]interface{}) string {
	t.Helper()
	id, err := store.Add(context.Background(), collection, fields)
	if err != nil {
		t.Fatalf("addDoc(%s): %v", collection, err)
	}
	return id
}

func seedStudent(t *testing.T, store *memstore.Store, name, class, phone string) string {
	t.Helper()
	return addDoc(t, store, ColStudents, map[string]interface{}{
		"name":      name,
		"class":     class,
		"email":     "N/A",
		"phone":     phone,
		"address":   "N/A",
		"joinDate":  "2026-01-05",
		"timestamp": int64(1),
	})
}

func setDoc(t *testing.T, store *memstore.Store, collection, id string, fields map[string]interface{}) {
	t.Helper()
	if err := store.Set(context.Background(), collection, id, fields); err != nil {
		t.Fatalf("setDoc(%s/%s): %v", collection, id, err)
	}
}
