package awsclient

import (
	"errors"
	"time"

	"github.com/aws/smithy-go"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects per-operation metrics. A nil *Metrics is valid
// and collects nothing.
type Metrics struct {
	// Calls counts calls by service, operation and outcome.
	Calls *prometheus.CounterVec

	// Duration observes the duration of calls by service and operation.
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors using the given namespace.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		Calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_calls_total",
			Help:      "Number of AWS API operation calls by outcome.",
		}, []string{"service", "operation", "outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of AWS API operation calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "operation"}),
	}
}

// MustRegister registers the collectors with reg.
func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(m.Calls, m.Duration)
}

// Outcomes used for the "outcome" label.
const (
	OutcomeSuccess            = "success"
	OutcomeAPIError           = "api_error"
	OutcomeSerializationError = "serialization_error"
	OutcomeOtherError         = "other_error"
)

// outcome classifies err for the "outcome" label.
func outcome(err error) string {
	var (
		apiErr   smithy.APIError
		serdeErr *smithy.SerializationError
	)
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.As(err, &apiErr):
		return OutcomeAPIError
	case errors.As(err, &serdeErr):
		return OutcomeSerializationError
	default:
		return OutcomeOtherError
	}
}

func (m *Metrics) observe(service, operation string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Calls.WithLabelValues(service, operation, outcome(err)).Inc()
	m.Duration.WithLabelValues(service, operation).Observe(elapsed.Seconds())
}
