package preregistration

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for registrationsTotal.
const (
	resultSuccess = "success"
	resultInvalid = "invalid"
	resultFailed  = "failed"
	resultBusy    = "busy"
)

var (
	registrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fashionking_preregistrations_total",
		Help: "Pre-registration attempts by outcome",
	}, []string{"result"})

	registrationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fashionking_preregistration_duration_seconds",
		Help:    "Time spent delivering a pre-registration to its collaborators",
		Buckets: prometheus.DefBuckets,
	})
)
