package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NotificationsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_published_total",
			Help: "Total number of notification events published to Kafka",
		},
		[]string{"kind", "result"},
	)

	NotificationPublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notification_publish_duration_seconds",
			Help:    "Duration of notification publishes including retries",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"kind"},
	)
)
