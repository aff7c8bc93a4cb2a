package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	PollCycles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "poll_cycles_total",
		Help: "Количество циклов опроса по результатам",
	}, []string{"outcome"})

	NotificationsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notifications_sent_total",
		Help: "Доставленные уведомления",
	})

	BotSendErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bot_send_errors_total",
		Help: "Ошибки отправки сообщений ботом",
	})

	Watermark = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "poll_watermark_timestamp",
		Help: "Метка current_date из последнего успешного ответа API",
	})

	NetworkRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "network_request_duration_seconds",
		Help:    "Длительность сетевых запросов",
		Buckets: prometheus.DefBuckets,
	}, []string{"component", "operation", "target", "status"})

	NetworkRequestTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "network_request_total",
		Help: "Количество сетевых запросов",
	}, []string{"component", "operation", "target", "status"})
)

// MustRegister регистрирует метрики.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		PollCycles,
		NotificationsSent,
		BotSendErrors,
		Watermark,
		NetworkRequestDuration,
		NetworkRequestTotal,
	)
}

// IncPollCycle увеличивает счётчик циклов опроса с данным результатом.
func IncPollCycle(outcome string) {
	PollCycles.WithLabelValues(outcome).Inc()
}

// IncNotificationSent увеличивает счётчик доставленных уведомлений.
func IncNotificationSent() {
	NotificationsSent.Inc()
}

// IncSendError увеличивает счётчик ошибок отправки.
func IncSendError() {
	BotSendErrors.Inc()
}

// SetWatermark публикует метку времени последнего успешного опроса.
func SetWatermark(ts int64) {
	Watermark.Set(float64(ts))
}

// ObserveNetworkRequest записывает длительность и статус сетевого запроса.
func ObserveNetworkRequest(component, operation, target string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	duration := time.Since(start).Seconds()
	NetworkRequestDuration.WithLabelValues(component, operation, target, status).Observe(duration)
	NetworkRequestTotal.WithLabelValues(component, operation, target, status).Inc()
}
