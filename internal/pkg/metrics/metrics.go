package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recognition pipeline counters. Results: success, no_match, error,
// timeout. Skip reasons: in_flight, cooldown.
var (
	RecognitionRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "liggey",
		Subsystem: "recognition",
		Name:      "requests_total",
		Help:      "Recognition submissions by result.",
	}, []string{"result"})

	CaptureScansSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "liggey",
		Subsystem: "capture",
		Name:      "scans_skipped_total",
		Help:      "Auto-scan ticks dropped by the single-flight guard.",
	}, []string{"reason"})

	ScansRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "liggey",
		Subsystem: "attendance",
		Name:      "scans_recorded_total",
		Help:      "Attendance scans recorded by action.",
	}, []string{"action"})
)

// Handler exposes the default registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
