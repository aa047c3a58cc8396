package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ModerationDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "petcare_moderation_decisions_total",
		Help: "The total number of moderation decisions by recommendation",
	}, []string{"recommendation"})

	ModerationFeedback = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "petcare_moderation_feedback_total",
		Help: "The total number of moderator feedback entries by verdict",
	}, []string{"verdict"})

	DuplicateChecks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "petcare_duplicate_checks_total",
		Help: "The total number of duplicate checks run",
	})

	DuplicatesDetected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "petcare_duplicates_detected_total",
		Help: "The total number of checks whose best match crossed the duplicate threshold",
	})

	AnalyzeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "petcare_moderation_analyze_duration_seconds",
		Help:    "Duration of content analysis requests",
		Buckets: prometheus.DefBuckets,
	})
)
