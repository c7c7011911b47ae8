package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var askRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "ask_request_duration_seconds",
	Help:    "Total time spent answering one question, by outcome.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30},
}, []string{"outcome"})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10},
}, []string{"service"})

var documentsInContext = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "documents_in_context",
	Help:    "Number of documents stuffed into the model context per request.",
	Buckets: []float64{0, 1, 2, 5, 10, 15},
})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CaptureAskMetrics(outcome string, timeElapsed time.Duration) {
	askRequestDuration.WithLabelValues(outcome).Observe(timeElapsed.Seconds())
}

func CaptureContextSize(documentCount int) {
	documentsInContext.Observe(float64(documentCount))
}
