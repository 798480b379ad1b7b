package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var NotificationJobsEnqueuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "notification_jobs_enqueued_total",
		Help: "Total number of notification jobs pushed to the queue",
	},
	[]string{"job", "outcome"},
)
