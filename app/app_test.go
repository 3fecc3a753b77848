package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfume-shop/config"
	"perfume-shop/database"
	"perfume-shop/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:                "test",
		StoreDriver:           "memory",
		StoreTimeout:          5 * time.Second,
		CatalogCacheTTL:       time.Minute,
		CORSOrigins:           []string{"*"},
		SeedOnStartup:         true,
		CartSerializeSessions: true,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApp(t *testing.T, store database.Store) *App {
	t.Helper()
	a := New(testConfig(), testLogger(), store, nil)
	t.Cleanup(func() { a.Close(context.Background()) })
	return a
}

func do(t *testing.T, a *App, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestApp_CartFlow(t *testing.T) {
	a := newTestApp(t, database.NewMemoryStore())

	w := do(t, a, http.MethodGet, "/api/cart/abc", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"session_id":"abc","items":[],"currency":"USD"}`, w.Body.String())

	w = do(t, a, http.MethodPost, "/api/checkout?session_id=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"Cart is empty"}`, w.Body.String())

	w = do(t, a, http.MethodPost, "/api/cart/abc/items/wrath", `{"quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(t, a, http.MethodPost, "/api/cart/abc/items/wrath", `{"quantity":5}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, a, http.MethodPost, "/api/cart/abc/items/envy", "")
	require.Equal(t, http.StatusOK, w.Code)

	cart := decode[models.Cart](t, do(t, a, http.MethodGet, "/api/cart/abc", ""))
	assert.Equal(t, []models.CartItem{{Slug: "wrath", Quantity: 5}, {Slug: "envy", Quantity: 1}}, cart.Items)

	w = do(t, a, http.MethodPost, "/api/checkout?sessionId=abc", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ready","message":"Proceeding to secure checkout gateway."}`, w.Body.String())

	w = do(t, a, http.MethodDelete, "/api/cart/abc/items/wrath", "")
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, a, http.MethodDelete, "/api/cart/abc/items/envy", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, a, http.MethodPost, "/api/checkout?session_id=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApp_CartValidation(t *testing.T) {
	a := newTestApp(t, database.NewMemoryStore())

	testCases := map[string]struct {
		method         string
		path           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		"should reject fractional quantity": {
			method:         http.MethodPost,
			path:           "/api/cart/abc/items/wrath",
			body:           `{"quantity":2.5}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"detail":"quantity must be an integer"}`,
		},
		"should reject string quantity": {
			method:         http.MethodPost,
			path:           "/api/cart/abc/items/wrath",
			body:           `{"quantity":"two"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"detail":"quantity must be an integer"}`,
		},
		"should accept zero quantity": {
			method:         http.MethodPost,
			path:           "/api/cart/abc/items/wrath",
			body:           `{"quantity":0}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok"}`,
		},
		"should remove from missing cart": {
			method:         http.MethodDelete,
			path:           "/api/cart/ghost/items/wrath",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok"}`,
		},
		"should require session id on checkout": {
			method:         http.MethodPost,
			path:           "/api/checkout",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"detail":"session_id is required"}`,
		},
		"should reject checkout of missing cart": {
			method:         http.MethodPost,
			path:           "/api/checkout?session_id=nobody",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"detail":"Cart is empty"}`,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			w := do(t, a, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestApp_Catalog(t *testing.T) {
	a := newTestApp(t, database.NewMemoryStore())
	a.Seed(context.Background())

	w := do(t, a, http.MethodGet, "/api/fragrances", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]map[string]any](t, w)
	require.Len(t, list, 8)
	assert.Equal(t, "wrath", list[0]["slug"])
	assert.NotContains(t, list[0], "_id")

	w = do(t, a, http.MethodGet, "/api/fragrances/oblivion", "")
	require.Equal(t, http.StatusOK, w.Code)
	oblivion := decode[models.Fragrance](t, w)
	assert.Equal(t, "COL-OB-50", *oblivion.SKU)
	assert.Equal(t, float64(420), oblivion.Price)

	w = do(t, a, http.MethodGet, "/api/fragrances/humility", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Fragrance not found"}`, w.Body.String())
}

func TestApp_Content(t *testing.T) {
	store := database.NewMemoryStore()
	a := newTestApp(t, store)

	w := do(t, a, http.MethodGet, "/api/testimonials", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(t, a, http.MethodPost, "/api/subscribe", `{"email":"fan@example.com","tagged_source":"footer"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	n, err := store.Count(context.Background(), "subscriber", database.Filter{"email": "fan@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	badBodies := map[string]struct {
		body     string
		expected string
	}{
		"should require email":                 {body: `{"tagged_source":"footer"}`, expected: "email is required"},
		"should require email for empty body":  {body: "", expected: "email is required"},
		"should reject malformed json":         {body: `{"email":`, expected: "request body must be a JSON object with a string email and optional string tagged_source"},
		"should reject non-string source":      {body: `{"email":"fan@example.com","tagged_source":7}`, expected: "request body must be a JSON object with a string email and optional string tagged_source"},
		"should reject non-string email value": {body: `{"email":42}`, expected: "request body must be a JSON object with a string email and optional string tagged_source"},
	}
	for name, tc := range badBodies {
		t.Run(name, func(t *testing.T) {
			w := do(t, a, http.MethodPost, "/api/subscribe", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"detail":"`+tc.expected+`"}`, w.Body.String())
		})
	}
}

func TestApp_StoreUnavailable(t *testing.T) {
	a := newTestApp(t, database.NewUnavailable(nil))
	a.Seed(context.Background())

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/api/fragrances", ""},
		{http.MethodGet, "/api/fragrances/wrath", ""},
		{http.MethodPost, "/api/subscribe", `{"email":"fan@example.com"}`},
		{http.MethodGet, "/api/cart/abc", ""},
		{http.MethodPost, "/api/cart/abc/items/wrath", ""},
		{http.MethodDelete, "/api/cart/abc/items/wrath", ""},
		{http.MethodPost, "/api/checkout?session_id=abc", ""},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := do(t, a, tc.method, tc.path, tc.body)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"detail":"Database not configured"}`, w.Body.String())
		})
	}

	w := do(t, a, http.MethodGet, "/api/testimonials", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(t, a, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)
	diag := decode[models.DiagnosticsResponse](t, w)
	assert.Equal(t, "Not Connected", diag.ConnectionStatus)
}

func TestApp_System(t *testing.T) {
	a := newTestApp(t, database.NewMemoryStore())

	w := do(t, a, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Niche Perfume Backend Running"}`, w.Body.String())

	w = do(t, a, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(t, a, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)
	diag := decode[models.DiagnosticsResponse](t, w)
	assert.Equal(t, "memory", diag.Driver)
	assert.Equal(t, "Connected", diag.ConnectionStatus)
}

func TestApp_CORSPreflight(t *testing.T) {
	a := newTestApp(t, database.NewMemoryStore())

	req := httptest.NewRequest(http.MethodOptions, "/api/cart/abc/items/wrath", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type,x-session-id")
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "content-type,x-session-id", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestApp_SQLiteSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "perfume.db")

	store, err := database.OpenSQLite(ctx, path)
	require.NoError(t, err)
	first := New(testConfig(), testLogger(), store, nil)
	first.Seed(ctx)

	w := do(t, first, http.MethodPost, "/api/cart/abc/items/lust", `{"quantity":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	first.Close(ctx)

	reopened, err := database.OpenSQLite(ctx, path)
	require.NoError(t, err)
	second := newTestApp(t, reopened)
	second.Seed(ctx)

	list := decode[[]models.Fragrance](t, do(t, second, http.MethodGet, "/api/fragrances", ""))
	assert.Len(t, list, 8)

	w = do(t, second, http.MethodPost, "/api/checkout?session_id=abc", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBuild_UnknownDriverDegrades(t *testing.T) {
	cfg := testConfig()
	cfg.StoreDriver = "cassandra"

	a := Build(context.Background(), cfg, testLogger())
	t.Cleanup(func() { a.Close(context.Background()) })

	assert.False(t, database.Available(a.Store))
	assert.Nil(t, a.Redis)

	w := do(t, a, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
