package builder

import (
	"time"

	"github.com/spf13/afero"

	"submit-lsf-job/pkg/experiment"
	adapters "submit-lsf-job/pkg/services/job/internal/adapter"
	"submit-lsf-job/pkg/services/job/internal/types"
	"submit-lsf-job/pkg/utils"
)

// RequestAdapterFactory 请求适配器工厂
type RequestAdapterFactory struct {
	fs                   afero.Fs
	loader               experiment.CheckpointLoader
	now                  func() time.Time
	pipelineProgram      string
	experimentsDirectory string
}

// NewRequestAdapterFactory 创建工厂实例
func NewRequestAdapterFactory(fs afero.Fs, loader experiment.CheckpointLoader, pipelineProgram, experimentsDirectory string) *RequestAdapterFactory {
	return &RequestAdapterFactory{
		fs:                   fs,
		loader:               loader,
		now:                  time.Now,
		pipelineProgram:      pipelineProgram,
		experimentsDirectory: experimentsDirectory,
	}
}

// WithClock 替换生成实验时间戳所用的时钟
func (f *RequestAdapterFactory) WithClock(now func() time.Time) *RequestAdapterFactory {
	f.now = now
	return f
}

// CreateAdapter 根据工作模式创建适配器
func (f *RequestAdapterFactory) CreateAdapter(opts types.Options) (types.JobRequest, error) {
	switch opts.Mode() {
	case types.ModeNewTraining:
		datetime := experiment.Timestamp(f.now())
		adapter, err := adapters.NewTrainingAdapter(f.fs, opts.ExperimentSettings, datetime, f.experimentsDirectory, f.pipelineProgram)
		if err != nil {
			return nil, err
		}
		return adapter, nil
	case types.ModeCheckpoint:
		adapter, err := adapters.NewCheckpointAdapter(f.loader, opts.Checkpoint, opts.Actions, f.pipelineProgram)
		if err != nil {
			return nil, err
		}
		return adapter, nil
	default:
		return nil, utils.ErrUsage
	}
}
