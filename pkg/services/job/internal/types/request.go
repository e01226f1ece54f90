package types

import (
	"strings"

	"submit-lsf-job/pkg/utils"
)

// JobType 定义提交的作业类型
type JobType int

const (
	JobTypeStandard JobType = iota
	JobTypeGpu
	JobTypeParallel
)

// String 实现 Stringer 接口
func (t JobType) String() string {
	switch t {
	case JobTypeStandard:
		return "standard"
	case JobTypeGpu:
		return "gpu"
	case JobTypeParallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// JobTypeNames 命令行可选的作业类型
var JobTypeNames = []string{"standard", "gpu", "parallel"}

// ParseJobType 解析命令行中的作业类型
func ParseJobType(name string) (JobType, error) {
	switch strings.TrimSpace(name) {
	case "standard":
		return JobTypeStandard, nil
	case "gpu":
		return JobTypeGpu, nil
	case "parallel":
		return JobTypeParallel, nil
	default:
		return JobTypeStandard, utils.NewError(utils.ErrInvalidArgument,
			"job type %q is not one of %s", name, strings.Join(JobTypeNames, ", "))
	}
}

// Mode 本次调用的工作模式
type Mode int

const (
	ModeNone Mode = iota
	ModeNewTraining
	ModeCheckpoint
)

func (m Mode) String() string {
	switch m {
	case ModeNewTraining:
		return "new_training"
	case ModeCheckpoint:
		return "checkpoint"
	default:
		return "none"
	}
}

// ResolveMode 实验配置优先于检查点
func ResolveMode(experimentSettings, checkpoint string) Mode {
	switch {
	case experimentSettings != "":
		return ModeNewTraining
	case checkpoint != "":
		return ModeCheckpoint
	default:
		return ModeNone
	}
}

// Actions 检查点模式下追加到流水线命令的动作
type Actions struct {
	Train    bool
	Test     bool
	Evaluate bool
	Complete bool
}

// JobRequest 各模式适配器的统一接口
type JobRequest interface {
	GetMode() Mode
	GetJobName() string
	GetRootDirectory() string
	GetNumSymbols() int
	GetPipelineTokens() []string
}

// Options 命令行参数，在入口处校验一次后不再修改
type Options struct {
	ExperimentSettings string
	Checkpoint         string
	JobType            JobType
	ComputeNode        string
	NumTasks           int
	MemLimit           int
	Actions
	DryRun bool
}

// Mode 返回参数对应的工作模式
func (o Options) Mode() Mode {
	return ResolveMode(o.ExperimentSettings, o.Checkpoint)
}

// Validate 校验与模式无关的参数取值
func (o Options) Validate() error {
	if o.NumTasks <= 0 {
		return utils.NewError(utils.ErrInvalidArgument, "num_tasks must be positive, got %d", o.NumTasks)
	}
	if o.MemLimit <= 0 {
		return utils.NewError(utils.ErrInvalidArgument, "mem_limit must be positive, got %d", o.MemLimit)
	}
	if o.JobType == JobTypeGpu && strings.TrimSpace(o.ComputeNode) == "" {
		return utils.NewError(utils.ErrInvalidArgument, "gpu job requires a compute node")
	}
	return nil
}
