package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/models"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresConfig(t *testing.T) {
	cfg := testConfig()
	cfg.App.DefaultUserID = 7
	svc := newTestServices(nil, nil)

	h := NewHandler(svc, cfg, logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, int64(7), h.defaultUserID)
	assert.Equal(t, []string{"*"}, h.corsOrigins)
}

// ─── Init ───────────────────────────────────────────────────────────────────

type routeCase struct {
	method string
	path   string
	status int
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodGet, "/", http.StatusOK},
	{http.MethodGet, "/people", http.StatusOK},
	{http.MethodGet, "/people/1", http.StatusOK},
	{http.MethodGet, "/planets", http.StatusOK},
	{http.MethodGet, "/planets/1", http.StatusOK},
	{http.MethodGet, "/vehicles", http.StatusOK},
	{http.MethodGet, "/vehicles/1", http.StatusOK},
	{http.MethodGet, "/users", http.StatusOK},
	{http.MethodGet, "/users/1", http.StatusOK},
	{http.MethodGet, "/users/1/favorites", http.StatusOK},
	{http.MethodPost, "/favorite/planet/1", http.StatusCreated},
	{http.MethodDelete, "/favorite/planet/1", http.StatusOK},
	{http.MethodPost, "/favorite/people/1", http.StatusCreated},
	{http.MethodDelete, "/favorite/people/1", http.StatusOK},
	{http.MethodPost, "/favorite/vehicle/1", http.StatusCreated},
	{http.MethodDelete, "/favorite/vehicle/1", http.StatusOK},
	{http.MethodGet, "/version", http.StatusOK},
	{http.MethodGet, "/metrics", http.StatusOK},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestRouter(nil, nil)

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturnsJSON404(t *testing.T) {
	router := newTestRouter(nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/starships", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}

func TestInit_NonNumericIDNeverReachesHandler(t *testing.T) {
	router := newTestRouter(&mockCatalogService{
		getPersonFn: func(context.Context, int64) (models.Person, error) {
			t.Fatal("handler must not be reached")
			return models.Person{}, nil
		},
	}, nil)

	for _, path := range []string{"/people/abc", "/planets/-1", "/vehicles/1.5", "/users/x/favorites"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
		})
	}
}

func TestInit_WrongMethodReturns405(t *testing.T) {
	router := newTestRouter(nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/favorite/planet/1", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "POST, DELETE", rec.Header().Get("Allow"))
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
}

func TestInit_TrailingSlashIsIgnored(t *testing.T) {
	router := newTestRouter(nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/people/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}

func TestInit_SetsTraceAndCORSHeaders(t *testing.T) {
	router := newTestRouter(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/people", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestInit_PanicIsRecovered(t *testing.T) {
	router := newTestRouter(&mockCatalogService{
		listPlanetsFn: func(context.Context) ([]models.Planet, error) {
			panic("boom")
		},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/planets", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestInit_MetricsExposeRequestCounter(t *testing.T) {
	router := newTestRouter(nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/people", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.True(t, strings.Contains(rec.Body.String(), `starwars_http_requests_total{method="GET",route="/people",status="200"}`))
}
