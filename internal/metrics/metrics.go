package metrics

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// ReportTransitionsTotal считает переходы статуса отчетов по целевому статусу.
	ReportTransitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "helpmet",
		Subsystem: "reports",
		Name:      "transitions_total",
		Help:      "Total number of injury report status transitions, labeled by target status.",
	}, []string{"to"})

	// NotificationsTotal считает обработанные уведомления по типу и результату.
	NotificationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "helpmet",
		Subsystem: "notify",
		Name:      "notifications_total",
		Help:      "Total number of notifications processed by the worker, labeled by kind and result.",
	}, []string{"kind", "result"})

	AlertsDispatchedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "helpmet",
		Subsystem: "alerts",
		Name:      "dispatched_total",
		Help:      "Total number of alerts dispatched to the notification queue.",
	})

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "helpmet",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency, labeled by method, route and status.",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"method", "route", "status"})
)

// Register регистрирует метрики в реестре Prometheus по умолчанию.
// Повторные вызовы безопасны.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			ReportTransitionsTotal,
			NotificationsTotal,
			AlertsDispatchedTotal,
			HTTPRequestDurationSeconds,
		)
	})
}

// GinMiddleware замеряет длительность запросов
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestDurationSeconds.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// QueueLengther - источник длины очереди уведомлений
type QueueLengther interface {
	QueueLength(ctx context.Context) (int64, error)
}

// RegisterQueueLength публикует длину очереди уведомлений как gauge.
// При ошибке Redis gauge показывает -1.
func RegisterQueueLength(q QueueLengther, timeout time.Duration) prometheus.GaugeFunc {
	gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "helpmet",
		Subsystem: "notify",
		Name:      "queue_length",
		Help:      "Number of notifications waiting in the Redis queue.",
	}, func() float64 {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		n, err := q.QueueLength(ctx)
		if err != nil {
			return -1
		}
		return float64(n)
	})
	prometheus.MustRegister(gauge)
	return gauge
}
