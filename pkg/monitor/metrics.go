package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry 提交指标单独注册，便于导出为 node_exporter textfile
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// 作业提交指标
var (
	SubmissionsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "lsf_job_submissions_total",
		Help: "Total number of LSF job submissions",
	}, []string{"job_type", "mode", "status"})

	SubmissionDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lsf_job_submission_duration_seconds",
		Help:    "Duration of the submission program call",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 30},
	}, []string{"job_type"})

	MemLimitMegabytes = factory.NewGaugeVec(prometheus.GaugeOpts{
		Name: "lsf_job_mem_limit_megabytes",
		Help: "Memory limit requested by the last submitted job",
	}, []string{"job_type"})

	LastSubmissionTimestamp = factory.NewGauge(prometheus.GaugeOpts{
		Name: "lsf_job_last_submission_timestamp_seconds",
		Help: "Unix time of the last submission attempt",
	})
)
