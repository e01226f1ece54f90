package experiment

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"submit-lsf-job/pkg/utils"
)

func TestTimestamp(t *testing.T) {
	ts := Timestamp(time.Date(2026, 10, 16, 9, 5, 7, 123456789, time.UTC))
	assert.Equal(t, "2026-10-16_09:05:07", ts)
}

func TestNumSymbols(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		want     int
		wantErr  bool
	}{
		{name: "Int", settings: Settings{"num_symbols": 1000}, want: 1000},
		{name: "Int64", settings: Settings{"num_symbols": int64(3)}, want: 3},
		{name: "Missing", settings: Settings{}, wantErr: true},
		{name: "String", settings: Settings{"num_symbols": "1000"}, wantErr: true},
		{name: "Float", settings: Settings{"num_symbols": 10.5}, wantErr: true},
		{name: "Zero", settings: Settings{"num_symbols": 0}, wantErr: true},
		{name: "Negative", settings: Settings{"num_symbols": -3}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.settings.NumSymbols()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewExperimentFilename(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		datetime string
		want     string
	}{
		{
			name:     "Default prefix",
			settings: Settings{"num_symbols": 100},
			datetime: "2026-10-16_09:30:00",
			want:     "standard_100_2026-10-16_09:30:00",
		},
		{
			name:     "Prefix and name",
			settings: Settings{"num_symbols": 3, "experiment_prefix": "gsc", "experiment_name": "dev"},
			datetime: "2026-10-16_09:30:00",
			want:     "gsc_dev_3_2026-10-16_09:30:00",
		},
		{
			name:     "No datetime",
			settings: Settings{"num_symbols": 3},
			want:     "standard_3",
		},
		{
			name:     "Recorded filename",
			settings: Settings{"num_symbols": 3, "filename": "recorded"},
			datetime: "2026-10-16_09:30:00",
			want:     "recorded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewExperiment(tt.settings, tt.datetime)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Filename)
			assert.Equal(t, tt.datetime, e.Datetime)
		})
	}
}

func TestLoadSettings(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/exp.yaml", []byte("num_symbols: 1000\nlr: 0.001\nexperiment_prefix: gsc\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/empty.yaml", []byte(""), 0644))
	require.NoError(t, afero.WriteFile(fs, "/list.yaml", []byte("- a\n- b\n"), 0644))

	settings, err := LoadSettings(fs, "/exp.yaml")
	require.NoError(t, err)
	n, err := settings.NumSymbols()
	require.NoError(t, err)
	assert.Equal(t, 1000, n)
	assert.Equal(t, "gsc", settings.String("experiment_prefix"))
	assert.Equal(t, "", settings.String("lr"))

	for _, path := range []string{"/missing.yaml", "/empty.yaml", "/list.yaml"} {
		_, err := LoadSettings(fs, path)
		assert.True(t, errors.Is(err, utils.ErrConfig), "%s: %v", path, err)
	}
}

func TestMetadataLoader(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/ckpt/run42.pt", []byte(`experiment:
  num_symbols: 100
  experiment_prefix: gsc
  datetime: "2026-01-02_03:04:05"
network:
  num_layers: 2
`), 0644))
	require.NoError(t, afero.WriteFile(fs, "/ckpt/json.pt", []byte(`{"experiment": {"num_symbols": 3}}`), 0644))
	require.NoError(t, afero.WriteFile(fs, "/ckpt/no-experiment.pt", []byte("network: {}\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/ckpt/no-symbols.pt", []byte("experiment:\n  experiment_prefix: gsc\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/ckpt/binary.pt", []byte("PK\x03\x04\x00\x00\x00"), 0644))

	loader := NewMetadataLoader(fs)

	e, network, err := loader.Load("/ckpt/run42.pt")
	require.NoError(t, err)
	assert.Equal(t, 100, e.NumSymbols)
	assert.Equal(t, "gsc_100_2026-01-02_03:04:05", e.Filename)
	assert.Equal(t, 2, network["num_layers"])

	e, _, err = loader.Load("/ckpt/json.pt")
	require.NoError(t, err)
	assert.Equal(t, 3, e.NumSymbols)

	for _, path := range []string{"/ckpt/missing.pt", "/ckpt/no-experiment.pt", "/ckpt/no-symbols.pt", "/ckpt/binary.pt"} {
		_, _, err := loader.Load(path)
		assert.True(t, errors.Is(err, utils.ErrCheckpoint), "%s: %v", path, err)
	}
}
