package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysisAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nutrobot_analysis_attempts_total",
		Help: "Number of calls issued to the nutrition extraction provider, including retries",
	})

	AnalysisSuccesses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nutrobot_analysis_successes_total",
		Help: "Number of meal analyses that produced a valid estimate",
	})

	AnalysisFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nutrobot_analysis_failures_total",
		Help: "Number of meal analyses that failed after exhausting retries, by reason",
	}, []string{"reason"})

	AnalyzerLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nutrobot_analyzer_call_duration_seconds",
		Help:    "Latency of individual calls to the nutrition extraction provider",
		Buckets: prometheus.DefBuckets,
	})

	MealsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nutrobot_meals_added_total",
		Help: "Number of meals recorded with a successful estimate",
	})

	GoalsSet = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nutrobot_goals_set_total",
		Help: "Number of goal updates",
	})
)
