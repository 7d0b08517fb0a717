package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegister_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}

func TestGinMiddleware_ObservesRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GinMiddleware())
	router.GET("/reports/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/R0001", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(HTTPRequestDurationSeconds), 1)
}

func TestReportTransitionsTotal(t *testing.T) {
	before := testutil.ToFloat64(ReportTransitionsTotal.WithLabelValues("On hold"))
	ReportTransitionsTotal.WithLabelValues("On hold").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(ReportTransitionsTotal.WithLabelValues("On hold")))
}

type fakeQueue struct {
	n   int64
	err error
}

func (f *fakeQueue) QueueLength(context.Context) (int64, error) {
	return f.n, f.err
}

func TestRegisterQueueLength(t *testing.T) {
	q := &fakeQueue{n: 3}
	gauge := RegisterQueueLength(q, time.Second)
	t.Cleanup(func() { prometheus.Unregister(gauge) })

	assert.Equal(t, float64(3), testutil.ToFloat64(gauge))

	q.err = errors.New("redis is down")
	assert.Equal(t, float64(-1), testutil.ToFloat64(gauge))
}
