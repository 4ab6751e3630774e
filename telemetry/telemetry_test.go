package telemetry

import (
	"go-login-api/model"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordLogin(t *testing.T) {
	successBefore := testutil.ToFloat64(loginAttemptsTotal.WithLabelValues("success"))
	failureBefore := testutil.ToFloat64(loginAttemptsTotal.WithLabelValues("failure"))

	RecordLogin(model.LoginSuccess)
	RecordLogin(model.LoginFailure)
	RecordLogin(model.LoginFailure)

	assert.Equal(t, successBefore+1, testutil.ToFloat64(loginAttemptsTotal.WithLabelValues("success")))
	assert.Equal(t, failureBefore+2, testutil.ToFloat64(loginAttemptsTotal.WithLabelValues("failure")))
}

func TestWrapHandler(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	counter := httpRequestsTotal.WithLabelValues("teapot", http.MethodGet, "418")
	before := testutil.ToFloat64(counter)

	rr := httptest.NewRecorder()
	WrapHandler("teapot", inner).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/tea", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestWrapHandler_DefaultStatus(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	counter := httpRequestsTotal.WithLabelValues("implicit", http.MethodGet, "200")
	before := testutil.ToFloat64(counter)

	WrapHandler("implicit", inner).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestMetricsHandler(t *testing.T) {
	RecordLogin(model.LoginSuccess)

	rr := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), `login_attempts_total{outcome="success"}`))
}
