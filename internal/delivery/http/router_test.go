package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"medical-office-api/config"
	"medical-office-api/internal/delivery/http/handler"
	"medical-office-api/internal/delivery/http/middleware"
	"medical-office-api/internal/domain/entity"
	"medical-office-api/internal/infrastructure/metrics"
	"medical-office-api/internal/service"
	"medical-office-api/pkg/jwt"
	"medical-office-api/pkg/validator"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routerFixture struct {
	handler    http.Handler
	jwtService *jwt.JWTService
	tokenStore *service.TokenStore
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Minute, RefreshExpiry: time.Hour})
	tokenStore := service.NewTokenStore(client, log)
	v := validator.NewValidator()

	// Usecases are not reached by the requests below.
	r := NewRouter(
		Handlers{
			Auth:         handler.NewAuthHandler(nil, v),
			Account:      handler.NewAccountHandler(nil, v),
			Patient:      handler.NewPatientHandler(nil, v),
			Practitioner: handler.NewPractitionerHandler(nil, v),
			Appointment:  handler.NewAppointmentHandler(nil, v),
			Consultation: handler.NewConsultationHandler(nil, v),
			Prescription: handler.NewPrescriptionHandler(nil, v),
			Exam:         handler.NewExamHandler(nil, v),
			Stats:        handler.NewStatsHandler(nil),
			AuditLog:     handler.NewAuditLogHandler(nil),
		},
		middleware.NewAuthMiddleware(jwtService, tokenStore),
		middleware.NewCORSMiddleware("*"),
		middleware.NewLoggingMiddleware(log, metrics.NewHTTPMetrics(prometheus.NewRegistry())),
	)

	return &routerFixture{handler: r.Setup(), jwtService: jwtService, tokenStore: tokenStore}
}

func (f *routerFixture) token(t *testing.T, id int, role string) string {
	t.Helper()
	access, accessID, err := f.jwtService.GenerateAccessToken(id, role, "x@clinic.fr")
	require.NoError(t, err)
	require.NoError(t, f.tokenStore.Store(context.Background(), role, id, accessID, time.Minute, "r", time.Minute))
	return access
}

func (f *routerFixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicRoutes(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Validation fails before any usecase is called.
	rec = f.do(http.MethodPost, "/api/v1/register", "", `{"email":"bad"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_RequiresAuthentication(t *testing.T) {
	f := newRouterFixture(t)

	for _, path := range []string{"/api/v1/patients", "/api/v1/appointments/1", "/api/v1/stats", "/api/v1/users", "/api/v1/consultations/search"} {
		rec := f.do(http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestRouter_AdminRoutesRejectStaff(t *testing.T) {
	f := newRouterFixture(t)
	staff := f.token(t, 3, entity.RoleUser)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/users"},
		{http.MethodPut, "/api/v1/users/3/approve"},
		{http.MethodPost, "/api/v1/admins"},
		{http.MethodPost, "/api/v1/admins/promote"},
		{http.MethodGet, "/api/v1/audit-logs"},
	} {
		rec := f.do(tc.method, tc.path, staff, "{}")
		assert.Equal(t, http.StatusForbidden, rec.Code, tc.path)
	}
}

func TestRouter_AppointmentUpdateRejectsBadInput(t *testing.T) {
	f := newRouterFixture(t)
	staff := f.token(t, 3, entity.RoleUser)

	rec := f.do(http.MethodPut, "/api/v1/appointments/abc", staff, `{"status":"confirme"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPut, "/api/v1/appointments/4", staff, `{"status":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPut, "/api/v1/appointments/4", staff, `{"status":"termine"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Preflight(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodOptions, "/api/v1/appointments/4", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
