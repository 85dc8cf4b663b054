package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/memotag-sales-api/internal/config"
	"github.com/vfg2006/memotag-sales-api/internal/domain"
	"github.com/vfg2006/memotag-sales-api/internal/usecases/advising"
	"github.com/vfg2006/memotag-sales-api/internal/usecases/analyzing"
	"github.com/vfg2006/memotag-sales-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/memotag-sales-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.Server{Host: "127.0.0.1", Port: "0", MaxBodyBytes: 1 << 10},
		Cors:    config.Cors{AllowedOrigins: []string{"*"}},
		Metrics: config.Metrics{Enabled: true, Path: "/metrics"},
	}
}

func newTestHandler(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	log.SetupTestLogger()

	h, err := NewHandler(cfg, advising.NewService(analyzing.NewService()), prometheus.NewRegistry())
	require.NoError(t, err)
	return h
}

func TestNewHandler(t *testing.T) {
	h := newTestHandler(t, testConfig())

	t.Run("Recomendações com cabeçalhos de rastreio", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/sales-recommendations",
			strings.NewReader(`{"monthly_sales": [100, 110, 121], "product_features": ["GPS"]}`))
		req.Header.Set("Origin", "https://app.memotag.io")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))
		assert.Equal(t, "https://app.memotag.io", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Body.String(), "recommendations")
	})

	t.Run("Corpo acima do limite", func(t *testing.T) {
		body := `{"monthly_sales": [` + strings.Repeat("1,", 1024) + `1], "product_features": ["GPS"]}`
		w := httptest.NewRecorder()

		h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sales-recommendations", strings.NewReader(body)))

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"VAL_004"`)
	})

	t.Run("Home e healthcheck", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Welcome to MemoTag API")

		w = httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Métricas expostas", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `http_requests_total{method="POST",route="/sales-recommendations",status="200"} 1`)
		assert.Contains(t, w.Body.String(), "go_goroutines")
	})
}

func TestNewHandler_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false
	h := newTestHandler(t, cfg)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNew(t *testing.T) {
	cfg := testConfig()
	srv, err := New(cfg, advising.NewService(analyzing.NewService()))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:0", srv.httpServer.Addr)
}

func TestNewHandler_PanicIsCounted(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
	mockAnalyzer.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ []float64, _ domain.Segments) domain.TrendSummary {
			panic("falha no analisador")
		})

	h, err := NewHandler(testConfig(), advising.NewService(mockAnalyzer), prometheus.NewRegistry())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sales-strategies",
		strings.NewReader(`{"monthly_sales": [1, 2, 3]}`)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))
	assert.Contains(t, w.Body.String(), `"code":"SRV_001"`)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), `http_requests_total{method="POST",route="/sales-strategies",status="500"} 1`)
}
