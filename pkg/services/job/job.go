package job

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"submit-lsf-job/pkg/experiment"
	"submit-lsf-job/pkg/monitor"
	"submit-lsf-job/pkg/services/job/internal/builder"
	"submit-lsf-job/pkg/services/job/internal/types"
	"submit-lsf-job/pkg/utils"
)

type (
	Options = types.Options
	Actions = types.Actions
	JobType = types.JobType
	Mode    = types.Mode
)

const (
	JobTypeStandard = types.JobTypeStandard
	JobTypeGpu      = types.JobTypeGpu
	JobTypeParallel = types.JobTypeParallel

	ModeNone        = types.ModeNone
	ModeNewTraining = types.ModeNewTraining
	ModeCheckpoint  = types.ModeCheckpoint
)

var (
	ParseJobType = types.ParseJobType
	ResolveMode  = types.ResolveMode
	JobTypeNames = types.JobTypeNames
)

type ServerJob struct {
	coordinator     *builder.JobBuilderCoordinator
	runner          utils.CommandRunner
	out             io.Writer
	metricsTextfile string
}

// NewServerJob 创建作业提交服务，命令行和提交结果写到 out
func NewServerJob(config utils.Config, fs afero.Fs, loader experiment.CheckpointLoader, runner utils.CommandRunner, out io.Writer) *ServerJob {
	factory := builder.NewRequestAdapterFactory(fs, loader, config.PipelineProgram, config.ExperimentsDirectory)
	bsub := builder.NewBsubCommandBuilder(config.SubmitProgram, config.DomainSuffix, config.GpuProject)
	return &ServerJob{
		coordinator:     builder.NewJobBuilderCoordinator(factory, bsub),
		runner:          runner,
		out:             out,
		metricsTextfile: config.MetricsTextfile,
	}
}

// SubmitJob 构建 bsub 命令，打印后执行一次。提交程序非零退出时返回 *utils.SubmissionError
func (s *ServerJob) SubmitJob(ctx context.Context, opts Options) error {
	logrus.Tracef("[SubmitJob] Received request: %+v", opts)

	cmd, err := s.coordinator.BuildJob(opts)
	if err != nil {
		logrus.Debugf("[SubmitJob] build job err: %v", err)
		return err
	}

	fmt.Fprintf(s.out, "%s\n%s\n", utils.SubmitBanner, cmd.String())

	submission := monitor.Submission{
		JobType:  cmd.JobType.String(),
		Mode:     cmd.Mode.String(),
		MemLimit: cmd.MemLimit,
	}
	defer func() {
		monitor.RecordSubmission(submission)
		if werr := monitor.WriteTextfile(s.metricsTextfile); werr != nil {
			logrus.Warnf("[SubmitJob] %v", werr)
		}
	}()

	if opts.DryRun {
		submission.Status = monitor.StatusDryRun
		logrus.Infof("[SubmitJob] dry run, %s not executed", cmd.Program)
		return nil
	}

	start := time.Now()
	err = s.runner.Run(ctx, cmd.Program, cmd.Args()...)
	submission.Duration = time.Since(start)
	logrus.Debugf("[SubmitJob] %s time consuming=%v", cmd.Program, submission.Duration)

	if err != nil {
		submission.Status = monitor.StatusFailed
		return s.submissionError(ctx, cmd, err)
	}

	submission.Status = monitor.StatusSubmitted
	logrus.Infof("[SubmitJob] submit job sucess: %s", cmd.JobName)
	return nil
}

func (s *ServerJob) submissionError(ctx context.Context, cmd *builder.BsubCommand, err error) error {
	if ctx.Err() != nil {
		return errors.WithStack(utils.ErrInterrupted)
	}

	status, ok := utils.ExitStatus(err)
	if !ok {
		return errors.Wrapf(err, "run %s", cmd.Program)
	}

	logrus.Errorf("[SubmitJob] submit job err: %v", err)
	submissionErr := &utils.SubmissionError{
		Command:    cmd.String(),
		ExitStatus: status,
		Err:        err,
	}
	if sig, ok := utils.TerminatingSignal(err); ok {
		submissionErr.Signal = sig
	}
	return submissionErr
}
