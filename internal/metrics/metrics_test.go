package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/global"
)

func TestMiddlewareExportsCounts(t *testing.T) {
	exporter, err := NewExporter()
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(NewHTTP(global.Meter("ncnews_test")).Middleware)
	r.Get("/api/topics", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/topics", nil))
	}

	rec := httptest.NewRecorder()
	exporter.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Contains(t, body, "http_server_completed_count")
	assert.Contains(t, body, `route="/api/topics"`)
	assert.Contains(t, body, `status="200"`)
}
