package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var OverdueDeliveries = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "overdue_deliveries",
		Help: "Withdrawn deliveries not completed and not canceled for too long",
	},
)
