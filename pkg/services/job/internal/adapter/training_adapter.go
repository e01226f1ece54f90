package adapters

import (
	"github.com/spf13/afero"

	"submit-lsf-job/pkg/experiment"
	"submit-lsf-job/pkg/services/job/internal/types"
	"submit-lsf-job/pkg/utils"
)

// TrainingAdapter 由实验配置文件发起的新训练
type TrainingAdapter struct {
	experiment      *experiment.Experiment
	settingsPath    string
	rootDirectory   string
	pipelineProgram string
}

func NewTrainingAdapter(fs afero.Fs, settingsPath, datetime, rootDirectory, pipelineProgram string) (*TrainingAdapter, error) {
	settings, err := experiment.LoadSettings(fs, settingsPath)
	if err != nil {
		return nil, err
	}

	e, err := experiment.NewExperiment(settings, datetime)
	if err != nil {
		return nil, utils.NewError(utils.ErrConfig, "%s: %v", settingsPath, err)
	}

	return &TrainingAdapter{
		experiment:      e,
		settingsPath:    settingsPath,
		rootDirectory:   rootDirectory,
		pipelineProgram: pipelineProgram,
	}, nil
}

func (a *TrainingAdapter) GetMode() types.Mode {
	return types.ModeNewTraining
}

func (a *TrainingAdapter) GetJobName() string {
	return a.experiment.Filename
}

func (a *TrainingAdapter) GetRootDirectory() string {
	return a.rootDirectory
}

func (a *TrainingAdapter) GetNumSymbols() int {
	return a.experiment.NumSymbols
}

// GetPipelineTokens 新训练总是同时训练和测试
func (a *TrainingAdapter) GetPipelineTokens() []string {
	return []string{
		a.pipelineProgram,
		"--datetime " + a.experiment.Datetime,
		"--experiment_settings " + a.settingsPath,
		"--train",
		"--test",
	}
}
