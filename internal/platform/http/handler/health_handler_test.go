package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// pingerFunc は関数をPingerとして扱うためのアダプターです。
type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

var (
	healthyDB = pingerFunc(func(ctx context.Context) error { return nil })
	downDB    = pingerFunc(func(ctx context.Context) error { return errors.New("dial tcp: connection refused") })
)

func setupRouter(db Pinger) *gin.Engine {
	r := gin.New()
	h := Health(db)
	r.GET("/api/health", h)
	r.HEAD("/api/health", h)
	r.OPTIONS("/api/health", h)
	return r
}

func TestHealth_GET(t *testing.T) {
	t.Parallel()

	router := setupRouter(healthyDB)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", response["status"])
	}
	if response["db"] != "connected" {
		t.Errorf("expected db 'connected', got %q", response["db"])
	}
	if _, ok := response["message"]; ok {
		t.Error("message should be omitted when healthy")
	}

	if w.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("expected Cache-Control 'no-store', got %q", w.Header().Get("Cache-Control"))
	}
}

func TestHealth_GET_DatabaseDown(t *testing.T) {
	t.Parallel()

	router := setupRouter(downDB)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)

	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response["status"] != "error" {
		t.Errorf("expected status 'error', got %q", response["status"])
	}
	if response["message"] != "Database connection failed." {
		t.Errorf("unexpected message %q", response["message"])
	}
	if _, ok := response["db"]; ok {
		t.Error("db should be omitted when unhealthy")
	}
}

func TestHealth_HEAD(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		db             Pinger
		expectedStatus int
	}{
		{name: "healthy", db: healthyDB, expectedStatus: http.StatusOK},
		{name: "database down", db: downDB, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := setupRouter(tt.db)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodHead, "/api/health", nil)

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			// HEAD should have no body
			if w.Body.Len() != 0 {
				t.Errorf("expected empty body for HEAD request, got %d bytes", w.Body.Len())
			}
			if w.Header().Get("Cache-Control") != "no-store" {
				t.Errorf("expected Cache-Control 'no-store', got %q", w.Header().Get("Cache-Control"))
			}
		})
	}
}

func TestHealth_OPTIONS(t *testing.T) {
	t.Parallel()

	pinged := false
	router := setupRouter(pingerFunc(func(ctx context.Context) error {
		pinged = true
		return nil
	}))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/health", nil)

	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, w.Code)
	}
	if pinged {
		t.Error("OPTIONS should not ping the database")
	}
	if w.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("expected Cache-Control 'no-store', got %q", w.Header().Get("Cache-Control"))
	}
}

// TestHealth_SQLPool は実際の*sql.DBに対してPingが発行されることを検証します。
func TestHealth_SQLPool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
	}{
		{name: "ping ok", expectedStatus: http.StatusOK},
		{name: "ping fails", pingErr: errors.New("server closed the connection"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			if err != nil {
				t.Fatalf("failed to create sqlmock: %v", err)
			}
			defer func() { _ = sqlDB.Close() }()

			mock.ExpectPing().WillReturnError(tt.pingErr)

			router := setupRouter(sqlDB)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unfulfilled mock expectations: %v", err)
			}
		})
	}
}
