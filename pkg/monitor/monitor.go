package monitor

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	StatusSubmitted = "submitted"
	StatusFailed    = "failed"
	StatusDryRun    = "dry_run"
)

// Submission 一次提交的结果
type Submission struct {
	JobType  string
	Mode     string
	Status   string
	MemLimit int
	Duration time.Duration
}

// RecordSubmission 记录一次提交
func RecordSubmission(s Submission) {
	SubmissionsTotal.WithLabelValues(s.JobType, s.Mode, s.Status).Inc()
	MemLimitMegabytes.WithLabelValues(s.JobType).Set(float64(s.MemLimit))
	LastSubmissionTimestamp.SetToCurrentTime()
	if s.Status != StatusDryRun {
		SubmissionDuration.WithLabelValues(s.JobType).Observe(s.Duration.Seconds())
	}
}

// WriteTextfile 将指标写入 textfile，path 为空时不写
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return errors.Wrapf(err, "write metrics to %s", path)
	}
	logrus.Debugf("metrics written to %s", path)
	return nil
}
