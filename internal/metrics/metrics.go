package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal     *prometheus.CounterVec
	ballotsSubmittedTotal prometheus.Counter
	webhookFailuresTotal  prometheus.Counter
	lookupDegradedTotal   prometheus.Counter
	registerOnce          sync.Once
)

// Register initializes Prometheus metrics on the default registry.
func Register() {
	registerOnce.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voting",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests processed by the voting API.",
		}, []string{"method", "path", "status"})
		ballotsSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "voting",
			Name:      "ballots_submitted_total",
			Help:      "Ballots whose webhook delivery was acknowledged.",
		})
		webhookFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "voting",
			Name:      "webhook_failures_total",
			Help:      "Ballot submissions rejected because the webhook did not acknowledge.",
		})
		lookupDegradedTotal = promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "voting",
			Name:      "ip_lookup_degraded_total",
			Help:      "Submissions recorded with the unknown address sentinel.",
		})
	})
}

// IncRequest increments the http_requests_total counter with the given labels.
func IncRequest(method, path string, status int) {
	if httpRequestsTotal == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

func IncBallotSubmitted() {
	if ballotsSubmittedTotal != nil {
		ballotsSubmittedTotal.Inc()
	}
}

func IncWebhookFailure() {
	if webhookFailuresTotal != nil {
		webhookFailuresTotal.Inc()
	}
}

func IncLookupDegraded() {
	if lookupDegradedTotal != nil {
		lookupDegradedTotal.Inc()
	}
}
