package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAppointmentMetrics_Counts(t *testing.T) {
	m := NewAppointmentMetrics(prometheus.NewRegistry())

	m.ObserveUpdate(ResultUpdated)
	m.ObserveUpdate(ResultUpdated)
	m.ObserveUpdate(ResultNotFound)
	m.ObserveAutoConsultation()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.updatesTotal.WithLabelValues(ResultUpdated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.updatesTotal.WithLabelValues(ResultNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.autoCreatedTotal))
}

func TestHTTPMetrics_CustomRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)
	m.ObserveRequest("GET", "/api/v1/patients", 200, 0.01)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/api/v1/patients", "200")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var a *AppointmentMetrics
	a.ObserveUpdate(ResultError)
	a.ObserveAutoConsultation()

	var h *HTTPMetrics
	h.ObserveRequest("GET", "/", 500, 0.1)
}
