package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festive-rides/booking-service/pkg/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	const serviceName = "booking-service-test"

	m := metrics.New(serviceName)

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m, serviceName))
	r.HandleFunc("/api/v1/availability", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/bookings/{reference}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	// Обычный запрос обязан пройти через middleware без паники и
	// попасть в счетчик и в гистограмму с одинаковым набором labels
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	count := testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues(serviceName, http.MethodGet, "/api/v1/availability", "200"))
	assert.Equal(t, float64(1), count)

	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPRequestDuration, "http_request_duration_seconds"))

	// Запрос с параметром пути учитывается под шаблоном маршрута,
	// а не под конкретным кодом бронирования
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/FR-ABC234", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	count = testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues(serviceName, http.MethodGet, "/api/v1/bookings/{reference}", "404"))
	assert.Equal(t, float64(1), count)

	assert.Equal(t, 2, testutil.CollectAndCount(m.HTTPRequestDuration, "http_request_duration_seconds"))
}
