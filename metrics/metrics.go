package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roomservice",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	ordersCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roomservice",
			Name:      "orders_created_total",
			Help:      "Guest orders created, by hotel.",
		},
		[]string{"hotel_id"},
	)

	serviceRequestsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roomservice",
			Name:      "service_requests_created_total",
			Help:      "Guest service requests created, by hotel.",
		},
		[]string{"hotel_id"},
	)

	chatFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "roomservice",
			Name:      "chat_fallbacks_total",
			Help:      "Chat replies that fell back to the fixed sentence.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, ordersCreated, serviceRequestsCreated, chatFallbacks)
	})
}

func IncHTTP(method, path, status string) {
	httpRequests.WithLabelValues(method, path, status).Inc()
}

func IncOrdersCreated(hotelID string) {
	ordersCreated.WithLabelValues(hotelID).Inc()
}

func IncServiceRequestsCreated(hotelID string) {
	serviceRequestsCreated.WithLabelValues(hotelID).Inc()
}

func IncChatFallback() {
	chatFallbacks.Inc()
}
