package echoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/digitalforgex/institute/core"
	"github.com/digitalforgex/institute/core/institute"
	emailsvc "github.com/digitalforgex/institute/services/email"
	logsvc "github.com/digitalforgex/institute/services/logger"
	"github.com/digitalforgex/institute/storage/memstore"
)

const (
	testAdminEmail    = "admin@test.com"
	testAdminPassword = "s3cr3t-Pa55"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

func TestMain(m *testing.M) {
	core.Conf.Set("testMode", true)
	core.Conf.Set("adminEmail", testAdminEmail)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	if err != nil {
		log.Fatalf("bcrypt.GenerateFromPassword(): %v", err)
	}
	core.Conf.Set("adminPasswordHash", string(hash))

	os.Exit(m.Run())
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func testCtx() context.Context { return context.Background() }

func newTestApp(t *testing.T) (Server, *memstore.Store, *institute.Service) {
	t.Helper()
	emailsvc.ClearSentMessages()
	store := memstore.Open()
	logger := logsvc.NewConsoleLogger(log.New(io.Discard, "", 0))
	svc := institute.NewService(store, logger, emailsvc.NewConsoleService())
	app := NewServer(&Options{
		DisableReqLogs: true,
		Svc:            svc,
		Logger:         logger,
	})
	return app, store, svc
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := generateToken(adminClaims())
	if err != nil {
		t.Fatalf("adminToken(): %v", err)
	}
	return token
}

func studentToken(t *testing.T, student institute.Student) string {
	t.Helper()
	token, err := generateToken(studentClaims(student))
	if err != nil {
		t.Fatalf("studentToken(): %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
