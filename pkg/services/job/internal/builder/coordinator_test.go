package builder

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"submit-lsf-job/pkg/experiment"
	"submit-lsf-job/pkg/services/job/internal/types"
	"submit-lsf-job/pkg/utils"
)

const checkpointMetadata = `experiment:
  num_symbols: 500
  datetime: "2026-01-01_00:00:00"
network:
  num_layers: 2
`

func newTestCoordinator(t *testing.T) *JobBuilderCoordinator {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/settings/dev.yaml", []byte("num_symbols: 1000\nexperiment_prefix: gsc\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/settings/full.yaml", []byte("num_symbols: 25028\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/settings/broken.yaml", []byte("num_symbols: [1, 2\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/settings/missing.yaml", []byte("experiment_prefix: gsc\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/x/y/run42.pt", []byte(checkpointMetadata), 0644))

	clock := func() time.Time { return time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC) }
	factory := NewRequestAdapterFactory(fs, experiment.NewMetadataLoader(fs),
		utils.DefaultPipelineProgram, utils.DefaultExperimentsDirectory).WithClock(clock)
	return NewJobBuilderCoordinator(factory, newTestBuilder())
}

func baseOptions() types.Options {
	return types.Options{
		JobType:     types.JobTypeStandard,
		ComputeNode: utils.DefaultComputeNode,
		NumTasks:    utils.DefaultNumTasks,
		MemLimit:    utils.DefaultMemLimit,
	}
}

func TestBuildJobNewTrainingForcesTrainAndTest(t *testing.T) {
	c := newTestCoordinator(t)

	for _, actions := range []types.Actions{
		{},
		{Evaluate: true},
		{Complete: true},
		{Train: true, Test: true, Evaluate: true, Complete: true},
	} {
		opts := baseOptions()
		opts.ExperimentSettings = "/settings/dev.yaml"
		opts.Actions = actions

		cmd, err := c.BuildJob(opts)
		require.NoError(t, err)

		assert.Equal(t, "python gene_symbol_classifier.py --datetime 2026-10-16_09:30:00 "+
			"--experiment_settings /settings/dev.yaml --train --test", cmd.Pipeline)
		assert.NotContains(t, cmd.Pipeline, "--evaluate")
		assert.NotContains(t, cmd.Pipeline, "--complete")
		assert.Equal(t, "gsc_1000_2026-10-16_09:30:00", cmd.JobName)
		assert.Equal(t, "experiments", cmd.RootDirectory)
		assert.Equal(t, 2048, cmd.MemLimit)
		assert.Equal(t, types.ModeNewTraining, cmd.Mode)
	}
}

func TestBuildJobNewTrainingUsesRequestedMemLimit(t *testing.T) {
	c := newTestCoordinator(t)

	opts := baseOptions()
	opts.ExperimentSettings = "/settings/full.yaml"
	opts.MemLimit = 16384

	cmd, err := c.BuildJob(opts)
	require.NoError(t, err)
	assert.Equal(t, 16384, cmd.MemLimit)
	assert.Contains(t, cmd.String(), "-o experiments/standard_25028_2026-10-16_09:30:00-stdout.log")
}

func TestBuildJobCheckpoint(t *testing.T) {
	c := newTestCoordinator(t)

	opts := baseOptions()
	opts.Checkpoint = "/x/y/run42.pt"
	opts.Evaluate = true
	opts.Complete = true

	cmd, err := c.BuildJob(opts)
	require.NoError(t, err)

	assert.Equal(t, "python gene_symbol_classifier.py --checkpoint /x/y/run42.pt --evaluate --complete", cmd.Pipeline)
	assert.Equal(t, "run42", cmd.JobName)
	assert.Equal(t, "/x/y", cmd.RootDirectory)
	assert.Equal(t, 2048, cmd.MemLimit)
	assert.Equal(t, types.ModeCheckpoint, cmd.Mode)
}

func TestBuildJobCheckpointActionOrder(t *testing.T) {
	c := newTestCoordinator(t)

	opts := baseOptions()
	opts.Checkpoint = "/x/y/run42.pt"
	opts.Actions = types.Actions{Train: true, Test: true, Evaluate: true, Complete: true}

	cmd, err := c.BuildJob(opts)
	require.NoError(t, err)
	assert.Equal(t, "python gene_symbol_classifier.py --checkpoint /x/y/run42.pt --train --test --evaluate --complete", cmd.Pipeline)
}

func TestBuildJobSettingsTakePrecedence(t *testing.T) {
	c := newTestCoordinator(t)

	opts := baseOptions()
	opts.ExperimentSettings = "/settings/dev.yaml"
	opts.Checkpoint = "/x/y/run42.pt"

	cmd, err := c.BuildJob(opts)
	require.NoError(t, err)
	assert.Equal(t, types.ModeNewTraining, cmd.Mode)
	assert.NotContains(t, cmd.Pipeline, "--checkpoint")
}

func TestBuildJobErrors(t *testing.T) {
	c := newTestCoordinator(t)

	tests := []struct {
		name    string
		modify  func(*types.Options)
		wantErr error
	}{
		{
			name:    "No mode",
			modify:  func(o *types.Options) {},
			wantErr: utils.ErrUsage,
		},
		{
			name:    "Settings file missing",
			modify:  func(o *types.Options) { o.ExperimentSettings = "/settings/nope.yaml" },
			wantErr: utils.ErrConfig,
		},
		{
			name:    "Settings file malformed",
			modify:  func(o *types.Options) { o.ExperimentSettings = "/settings/broken.yaml" },
			wantErr: utils.ErrConfig,
		},
		{
			name:    "Settings without num_symbols",
			modify:  func(o *types.Options) { o.ExperimentSettings = "/settings/missing.yaml" },
			wantErr: utils.ErrConfig,
		},
		{
			name:    "Checkpoint missing",
			modify:  func(o *types.Options) { o.Checkpoint = "/x/y/run43.pt" },
			wantErr: utils.ErrCheckpoint,
		},
		{
			name: "Parallel with one task",
			modify: func(o *types.Options) {
				o.Checkpoint = "/x/y/run42.pt"
				o.JobType = types.JobTypeParallel
			},
			wantErr: utils.ErrInvalidArgument,
		},
		{
			name: "Non-positive mem limit",
			modify: func(o *types.Options) {
				o.Checkpoint = "/x/y/run42.pt"
				o.MemLimit = 0
			},
			wantErr: utils.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := baseOptions()
			tt.modify(&opts)

			cmd, err := c.BuildJob(opts)
			assert.Nil(t, cmd)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}
