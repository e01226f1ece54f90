package adapters

import (
	"path/filepath"

	"submit-lsf-job/pkg/experiment"
	"submit-lsf-job/pkg/services/job/internal/types"
	"submit-lsf-job/pkg/utils"
)

// CheckpointAdapter 从检查点继续训练、测试或评估
type CheckpointAdapter struct {
	experiment      *experiment.Experiment
	checkpointPath  string
	actions         types.Actions
	pipelineProgram string
}

func NewCheckpointAdapter(loader experiment.CheckpointLoader, checkpointPath string, actions types.Actions, pipelineProgram string) (*CheckpointAdapter, error) {
	e, _, err := loader.Load(checkpointPath)
	if err != nil {
		return nil, err
	}

	return &CheckpointAdapter{
		experiment:      e,
		checkpointPath:  checkpointPath,
		actions:         actions,
		pipelineProgram: pipelineProgram,
	}, nil
}

func (a *CheckpointAdapter) GetMode() types.Mode {
	return types.ModeCheckpoint
}

func (a *CheckpointAdapter) GetJobName() string {
	return utils.FileStem(a.checkpointPath)
}

func (a *CheckpointAdapter) GetRootDirectory() string {
	return filepath.Dir(a.checkpointPath)
}

func (a *CheckpointAdapter) GetNumSymbols() int {
	return a.experiment.NumSymbols
}

func (a *CheckpointAdapter) GetPipelineTokens() []string {
	tokens := []string{
		a.pipelineProgram,
		"--checkpoint " + a.checkpointPath,
	}
	if a.actions.Train {
		tokens = append(tokens, "--train")
	}
	if a.actions.Test {
		tokens = append(tokens, "--test")
	}
	if a.actions.Evaluate {
		tokens = append(tokens, "--evaluate")
	}
	if a.actions.Complete {
		tokens = append(tokens, "--complete")
	}
	return tokens
}
