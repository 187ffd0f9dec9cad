package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymdesk_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SubscriptionsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_subscriptions_created_total",
			Help: "Total number of gym subscription periods created",
		},
		[]string{"renewal_type"},
	)

	PlanChangePreviewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdesk_plan_change_previews_total",
			Help: "Total number of proration previews computed",
		},
	)

	PaymentsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_payments_recorded_total",
			Help: "Total number of payments recorded",
		},
		[]string{"track"},
	)

	PaymentsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_payments_rejected_total",
			Help: "Total number of payments rejected by the overpayment guard",
		},
		[]string{"track"},
	)

	RemindersQueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_reminders_queued_total",
			Help: "Total number of expiry reminder emails queued",
		},
		[]string{"subject"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymdesk_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordSubscription(renewalType string) {
	SubscriptionsCreatedTotal.WithLabelValues(renewalType).Inc()
}

func RecordPlanChangePreview() {
	PlanChangePreviewsTotal.Inc()
}

func RecordPayment(track string) {
	PaymentsRecordedTotal.WithLabelValues(track).Inc()
}

func RecordPaymentRejected(track string) {
	PaymentsRejectedTotal.WithLabelValues(track).Inc()
}

func RecordReminderQueued(subject string) {
	RemindersQueuedTotal.WithLabelValues(subject).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
