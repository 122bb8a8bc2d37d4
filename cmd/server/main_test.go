package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rich-catering-be/internal/config"
	"rich-catering-be/internal/handler"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppPort:      "9090",
		StoreDriver:  config.StoreMemory,
		JWTSecret:    "test-secret",
		AdminUserIDs: []uint{1},
		VerifyQuotes: true,
	}
}

func TestBuildHandler_Memory(t *testing.T) {
	cfg := testConfig()
	h := buildHandler(cfg, nil, nil)

	require.NotNil(t, h.Orders)
	require.NotNil(t, h.Bookings)
	require.NotNil(t, h.Notifications)
	require.NotNil(t, h.Reports)

	router := handler.NewRouter(h, handler.RouterConfig{JWTSecret: cfg.JWTSecret})

	t.Run("Health Check", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "OK")
	})

	t.Run("Protected route without token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestBuildHandler_Postgres(t *testing.T) {
	database, _, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	cfg := testConfig()
	cfg.StoreDriver = config.StorePostgres

	h := buildHandler(cfg, database, nil)
	assert.NotNil(t, h.Orders)
	assert.NotNil(t, h.Bookings)
}

func TestNewServer(t *testing.T) {
	cfg := testConfig()
	mux := http.NewServeMux()

	srv := newServer(cfg, mux)

	assert.Equal(t, ":9090", srv.Addr)
	assert.Equal(t, 15*time.Second, srv.WriteTimeout)
	assert.NotZero(t, srv.ReadHeaderTimeout)
}
