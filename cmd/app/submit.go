package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"submit-lsf-job/pkg/experiment"
	"submit-lsf-job/pkg/services/job"
	"submit-lsf-job/pkg/utils"
)

const longDescription = `Submit an LSF job to train or test a neural network gene symbol classifier.`

type submitFlags struct {
	configFilePath     string
	experimentSettings string
	jobType            string
	computeNode        string
	numTasks           int
	memLimit           int
	checkpoint         string
	train              bool
	test               bool
	evaluate           bool
	complete           bool
	dryRun             bool
}

// options 将命令行参数转换为经过校验的 job.Options
func (f *submitFlags) options() (job.Options, error) {
	jobType, err := job.ParseJobType(f.jobType)
	if err != nil {
		return job.Options{}, err
	}
	opts := job.Options{
		ExperimentSettings: f.experimentSettings,
		Checkpoint:         f.checkpoint,
		JobType:            jobType,
		ComputeNode:        f.computeNode,
		NumTasks:           f.numTasks,
		MemLimit:           f.memLimit,
		Actions: job.Actions{
			Train:    f.train,
			Test:     f.test,
			Evaluate: f.evaluate,
			Complete: f.complete,
		},
		DryRun: f.dryRun,
	}
	return opts, opts.Validate()
}

// dependencies 提交作业依赖的外部资源
type dependencies struct {
	fs     afero.Fs
	loader experiment.CheckpointLoader
	runner utils.CommandRunner
}

func defaultDependencies() dependencies {
	fs := afero.NewOsFs()
	return dependencies{
		fs:     fs,
		loader: experiment.NewMetadataLoader(fs),
		runner: utils.NewExecRunner(),
	}
}

func NewSubmitCommand() *cobra.Command {
	return newSubmitCommand(defaultDependencies())
}

func newSubmitCommand(deps dependencies) *cobra.Command {
	var (
		flags  submitFlags
		config utils.Config
	)
	v := newViper()

	rootCmd := &cobra.Command{
		Use:           utils.AppName,
		Short:         "Submit an LSF job for the gene symbol classifier",
		Long:          longDescription,
		Version:       utils.GetVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if config, err = loadConfig(v, flags.configFilePath); err != nil {
				return err
			}
			utils.InitLogger(utils.ParseLogLevel(config.LogLevel), config.LogFile)
			logrus.Debugf("Using config:\n%+v", config)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if job.ResolveMode(flags.experimentSettings, flags.checkpoint) == job.ModeNone {
				return cmd.Help()
			}

			opts, err := flags.options()
			if err != nil {
				return err
			}

			server := job.NewServerJob(config, deps.fs, deps.loader, deps.runner, cmd.OutOrStdout())
			return server.SubmitJob(cmd.Context(), opts)
		},
	}

	rootCmd.SetVersionTemplate(utils.VersionTemplate())
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return utils.NewError(utils.ErrInvalidArgument, "%v", err)
	})

	// Specify config file path
	rootCmd.PersistentFlags().StringVarP(&flags.configFilePath, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "Log level")
	v.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	fs := rootCmd.Flags()
	fs.StringVar(&flags.experimentSettings, "experiment_settings", "", "path to the experiment settings configuration YAML file (alias -ex)")
	fs.StringVar(&flags.jobType, "job_type", utils.DefaultJobType,
		fmt.Sprintf("submitted job type, one of %s", quoteAll(job.JobTypeNames)))
	fs.StringVar(&flags.computeNode, "compute_node", utils.DefaultComputeNode,
		`name of compute node to submit the job, for GPU one of "gpu-009" or "gpu-011"`)
	fs.IntVar(&flags.numTasks, "num_tasks", utils.DefaultNumTasks, "number of tasks for a parallel job")
	fs.IntVar(&flags.memLimit, "mem_limit", utils.DefaultMemLimit, "memory limit for all the processes that belong to the job")
	fs.StringVar(&flags.checkpoint, "checkpoint", "", "path to the saved experiment checkpoint")
	fs.BoolVar(&flags.train, "train", false, "train a classifier")
	fs.BoolVar(&flags.test, "test", false, "test a classifier")
	fs.BoolVar(&flags.evaluate, "evaluate", false, "evaluate a classifier")
	fs.BoolVar(&flags.complete, "complete", false, "run the evaluation for all genome assemblies in the Ensembl release")
	fs.BoolVar(&flags.dryRun, "dry-run", false, "print the submission command without running it")

	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	return strings.Join(quoted, ", ")
}

// Execute 运行命令并返回进程退出码
func Execute(rootCmd *cobra.Command, args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.SetArgs(PreprocessArgs(args))
	err := rootCmd.ExecuteContext(ctx)
	return HandleError(err, rootCmd.OutOrStdout(), rootCmd.ErrOrStderr())
}

// HandleError 提交程序失败只打印不退出；中断打印提示；其余错误以非零状态退出
func HandleError(err error, out, errOut io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, utils.ErrSubmission):
		color.New(color.FgRed).Fprintln(out, err.Error())
		return 0
	case errors.Is(err, utils.ErrInterrupted), errors.Is(err, context.Canceled):
		fmt.Fprintln(out, utils.InterruptText)
		return utils.InterruptCode
	default:
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
}
