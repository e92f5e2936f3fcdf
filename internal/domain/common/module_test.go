package common

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"threadboard/pkg/database"
	"threadboard/pkg/metrics"
	"threadboard/pkg/response"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, rdb *redis.Client) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	monitor := database.NewPoolMonitor(sqlDB, metrics.NewMetricsCollector(prometheus.NewRegistry()), 0)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	setupRoutes(r, &healthChecker{db: monitor, redis: rdb})
	return r, mock
}

func TestHealthUp(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	r, mock := setup(t, rdb)
	mock.ExpectPing()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, map[string]interface{}{"database": "up", "redis": "up"}, resp.Data)
}

func TestHealthDatabaseDown(t *testing.T) {
	r, mock := setup(t, nil)
	mock.ExpectPing().WillReturnError(assert.AnError)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, map[string]interface{}{"database": "down", "redis": "disabled"}, resp.Data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := setup(t, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
