package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"net/http"
	"strconv"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobscout_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	QueriesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobscout_job_queries_total",
			Help: "Total number of job catalog queries.",
		},
		[]string{"kind"},
	)
	QueryDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jobscout_job_query_duration_seconds",
			Help:    "Duration of job catalog queries in seconds.",
			Buckets: prometheus.DefBuckets,
		},
	)
	LoginAttemptsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobscout_login_attempts_total",
			Help: "Total number of login attempts by outcome.",
		},
		[]string{"outcome"},
	)
	SavedJobsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "jobscout_saved_jobs",
			Help: "Number of jobs currently saved by the active user.",
		},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(QueriesCounter)
	prometheus.MustRegister(QueryDuration)
	prometheus.MustRegister(LoginAttemptsCounter)
	prometheus.MustRegister(SavedJobsGauge)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(":"+strconv.Itoa(port), mux))
	}()
}
