package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"schoolhub_backend/internal/app"
	"schoolhub_backend/internal/config"
	"schoolhub_backend/internal/database"
	"schoolhub_backend/pkg/contextkeys"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer drives the full router against a real Postgres database.
// Requests are dispatched in-process so each test can run inside its own
// transaction and roll everything back afterwards.
type TestServer struct {
	Router http.Handler
	DB     *gorm.DB
}

// NewTestServer connects to the database named by DATABASE_URL, makes sure
// the schema exists and builds the router. Tests are skipped when no test
// database is configured.
func NewTestServer(t *testing.T) *TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL is not set; skipping integration tests")
	}

	config.LoadConfig()
	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if _, err := database.Initialize(db, cfg); err != nil {
		t.Fatalf("failed to initialize test database schema: %v", err)
	}

	router := app.SetupRouter(cfg, db)

	return &TestServer{
		Router: router,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	sqlDB, err := ts.DB.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// BeginTransaction opens a transaction that SendRequest will route all
// database work through.
func (ts *TestServer) BeginTransaction(t *testing.T) *gorm.DB {
	tx := ts.DB.Begin()
	if tx.Error != nil {
		t.Fatalf("failed to begin test transaction: %v", tx.Error)
	}
	return tx
}

func (ts *TestServer) RollbackTransaction(t *testing.T, tx *gorm.DB) {
	if err := tx.Rollback().Error; err != nil && err != gorm.ErrInvalidTransaction {
		t.Logf("rollback failed: %v", err)
	}
}

// SendRequest dispatches an HTTP request through the router. When tx is not
// nil the handlers see it instead of the connection pool, so writes stay
// invisible to other tests.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, tx *gorm.DB, body interface{}) (*httptest.ResponseRecorder, string) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tx != nil {
		ctx := context.WithValue(req.Context(), contextkeys.DBContextKey, tx)
		req = req.WithContext(ctx)
	}

	rec := httptest.NewRecorder()
	ts.Router.ServeHTTP(rec, req)

	return rec, rec.Body.String()
}
