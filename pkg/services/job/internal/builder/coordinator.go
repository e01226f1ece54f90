package builder

import (
	"github.com/pkg/errors"

	"submit-lsf-job/pkg/services/job/internal/types"
	"submit-lsf-job/pkg/utils"
)

// JobBuilderCoordinator 作业构建协调器
type JobBuilderCoordinator struct {
	factory *RequestAdapterFactory
	builder *BsubCommandBuilder
}

// NewJobBuilderCoordinator 创建协调器
func NewJobBuilderCoordinator(factory *RequestAdapterFactory, builder *BsubCommandBuilder) *JobBuilderCoordinator {
	return &JobBuilderCoordinator{
		factory: factory,
		builder: builder,
	}
}

// BuildJob 统一的构建函数
func (c *JobBuilderCoordinator) BuildJob(opts types.Options) (*BsubCommand, error) {
	// 1. 校验参数
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	// 2. 创建适配器
	adapter, err := c.factory.CreateAdapter(opts)
	if err != nil {
		return nil, err
	}

	// 3. 验证请求
	if err = c.validateRequest(adapter); err != nil {
		return nil, errors.WithMessage(err, "request verification failed")
	}

	// 4. 构建作业
	return c.builder.Build(adapter, opts)
}

// validateRequest 验证请求
func (c *JobBuilderCoordinator) validateRequest(adapter types.JobRequest) error {
	if adapter.GetJobName() == "" {
		return utils.NewError(utils.ErrInvalidArgument, "job name cannot be empty")
	}

	if adapter.GetNumSymbols() <= 0 {
		return utils.NewError(utils.ErrInvalidArgument, "num_symbols must be positive")
	}

	if len(adapter.GetPipelineTokens()) == 0 {
		return utils.NewError(utils.ErrInvalidArgument, "pipeline command cannot be empty")
	}

	return nil
}
