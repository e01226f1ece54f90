package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"submit-lsf-job/pkg/services/job/internal/types"
	"submit-lsf-job/pkg/utils"
)

// valueStyle 决定选项值在命令行中的写法
type valueStyle int

const (
	styleSeparate valueStyle = iota // -M 2048
	styleQuoted                     // -gpu "num=2:j_exclusive=yes"
	styleAttached                   // -R"span[hosts=1]"
)

// Directive 一个 bsub 选项及其取值
type Directive struct {
	Flag  string
	Value string
	style valueStyle
}

func (d Directive) String() string {
	switch d.style {
	case styleAttached:
		return fmt.Sprintf(`%s"%s"`, d.Flag, d.Value)
	case styleQuoted:
		return fmt.Sprintf(`%s "%s"`, d.Flag, d.Value)
	default:
		return d.Flag + " " + d.Value
	}
}

// BsubCommand 组装完成的提交命令
type BsubCommand struct {
	Program       string
	Directives    []Directive
	Pipeline      string
	JobName       string
	RootDirectory string
	JobType       types.JobType
	Mode          types.Mode
	MemLimit      int
}

// Tokens 按顺序返回命令的各个片段，流水线命令作为最后一个片段
func (c *BsubCommand) Tokens() []string {
	tokens := make([]string, 0, len(c.Directives)+2)
	tokens = append(tokens, c.Program)
	for _, d := range c.Directives {
		tokens = append(tokens, d.String())
	}
	return append(tokens, c.Pipeline)
}

// String 打印给用户看的完整命令行
func (c *BsubCommand) String() string {
	return strings.Join(c.Tokens(), " ")
}

// Args 直接传给提交程序的参数列表，不含 shell 引号
func (c *BsubCommand) Args() []string {
	args := make([]string, 0, 2*len(c.Directives)+1)
	for _, d := range c.Directives {
		args = append(args, d.Flag, d.Value)
	}
	return append(args, c.Pipeline)
}

// BsubCommandBuilder bsub 命令构建器
type BsubCommandBuilder struct {
	program      string
	domainSuffix string
	gpuProject   string
}

// NewBsubCommandBuilder 创建构建器
func NewBsubCommandBuilder(program, domainSuffix, gpuProject string) *BsubCommandBuilder {
	return &BsubCommandBuilder{
		program:      program,
		domainSuffix: domainSuffix,
		gpuProject:   gpuProject,
	}
}

// Build 构建 bsub 命令
func (b *BsubCommandBuilder) Build(req types.JobRequest, opts types.Options) (*BsubCommand, error) {
	// 1. 创建基础命令
	cmd := b.createBaseCommand(req, opts)

	// 2. 内存上限
	b.applyMemoryOptions(req, opts, cmd)

	// 3. 日志路径
	b.applyOutputOptions(cmd)

	// 4. 作业类型相关资源
	if err := b.applyJobTypeOptions(opts, cmd); err != nil {
		return nil, err
	}

	// 5. 流水线命令放在最后
	cmd.Pipeline = strings.Join(req.GetPipelineTokens(), " ")

	logrus.Debugf("built %s job %q: mem_limit=%d directives=%d", cmd.JobType, cmd.JobName, cmd.MemLimit, len(cmd.Directives))
	return cmd, nil
}

func (b *BsubCommandBuilder) createBaseCommand(req types.JobRequest, opts types.Options) *BsubCommand {
	return &BsubCommand{
		Program:       b.program,
		JobName:       req.GetJobName(),
		RootDirectory: req.GetRootDirectory(),
		JobType:       opts.JobType,
		Mode:          req.GetMode(),
	}
}

func (b *BsubCommandBuilder) applyMemoryOptions(req types.JobRequest, opts types.Options, cmd *BsubCommand) {
	cmd.MemLimit = MemLimit(req.GetNumSymbols(), opts.Evaluate, opts.MemLimit)
	mem := strconv.Itoa(cmd.MemLimit)
	cmd.Directives = append(cmd.Directives,
		Directive{Flag: "-M", Value: mem},
		Directive{Flag: "-R", Value: fmt.Sprintf("select[mem>%s] rusage[mem=%s]", mem, mem), style: styleAttached},
	)
}

func (b *BsubCommandBuilder) applyOutputOptions(cmd *BsubCommand) {
	cmd.Directives = append(cmd.Directives,
		Directive{Flag: "-o", Value: fmt.Sprintf("%s/%s-stdout.log", cmd.RootDirectory, cmd.JobName)},
		Directive{Flag: "-e", Value: fmt.Sprintf("%s/%s-stderr.log", cmd.RootDirectory, cmd.JobName)},
	)
}

func (b *BsubCommandBuilder) applyJobTypeOptions(opts types.Options, cmd *BsubCommand) error {
	switch opts.JobType {
	case types.JobTypeGpu:
		cmd.Directives = append(cmd.Directives,
			Directive{Flag: "-P", Value: b.gpuProject},
			Directive{Flag: "-gpu", Value: fmt.Sprintf("num=%d:j_exclusive=yes", opts.NumTasks), style: styleQuoted},
			Directive{Flag: "-m", Value: opts.ComputeNode + "." + b.domainSuffix},
		)
	case types.JobTypeParallel:
		if opts.NumTasks == 1 {
			return utils.NewError(utils.ErrInvalidArgument, "parallel job specified but the number of tasks is set to 1")
		}
		cmd.Directives = append(cmd.Directives,
			Directive{Flag: "-n", Value: strconv.Itoa(opts.NumTasks)},
			Directive{Flag: "-R", Value: "span[hosts=1]", style: styleAttached},
		)
	}
	return nil
}
