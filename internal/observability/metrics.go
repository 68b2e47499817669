package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DonationsCreatedTotal   = promauto.NewCounter(prometheus.CounterOpts{Namespace: "foodbridge", Name: "donations_created_total", Help: "Total donations posted by suppliers"})
	DonationsAcceptedTotal  = promauto.NewCounter(prometheus.CounterOpts{Namespace: "foodbridge", Name: "donations_accepted_total", Help: "Total pickups claimed by couriers"})
	DonationsCollectedTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "foodbridge", Name: "donations_collected_total", Help: "Total donations collected from suppliers"})
	DonationsDeliveredTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "foodbridge", Name: "donations_delivered_total", Help: "Total donations dropped off at camps"})
	DonationsConfirmedTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "foodbridge", Name: "donations_confirmed_total", Help: "Total deliveries confirmed by camp operators"})
	PickupsExpiredTotal     = promauto.NewCounter(prometheus.CounterOpts{Namespace: "foodbridge", Name: "pickups_expired_total", Help: "Total stale pickup claims released back to the pool"})

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "foodbridge", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "foodbridge",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
