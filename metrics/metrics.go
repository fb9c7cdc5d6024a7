package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	tableGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "restofoh",
			Name:      "floor_tables",
			Help:      "Tables on the floor plan by status.",
		},
		[]string{"status"},
	)

	floorOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "restofoh",
			Name:      "floor_operations_total",
			Help:      "Coordinator operations by name.",
		},
		[]string{"op"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "restofoh",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and path.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Register mendaftarkan metric Prometheus. Aman dipanggil berulang.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(tableGauge, floorOps, httpDuration)
	})
}

// ObserveFloor menyalin hitungan meja per status ke gauge.
func ObserveFloor(stats map[string]int) {
	for status, n := range stats {
		if status == "total" {
			continue
		}
		tableGauge.WithLabelValues(status).Set(float64(n))
	}
}

// IncOp menambah counter untuk satu operasi koordinator.
func IncOp(op string) {
	floorOps.WithLabelValues(op).Inc()
}

// ObserveHTTP mencatat durasi satu request.
func ObserveHTTP(method, path string, seconds float64) {
	httpDuration.WithLabelValues(method, path).Observe(seconds)
}

// Handler mengekspos endpoint /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
