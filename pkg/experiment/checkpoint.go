package experiment

import (
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"

	"submit-lsf-job/pkg/utils"
)

// Network 检查点中保存的网络信息，提交作业时不使用
type Network map[string]interface{}

// CheckpointLoader 从检查点恢复实验描述
type CheckpointLoader interface {
	Load(path string) (*Experiment, Network, error)
}

type checkpointDocument struct {
	Experiment Settings `yaml:"experiment"`
	Network    Network  `yaml:"network"`
}

// MetadataLoader 读取 YAML/JSON 格式的检查点元数据
type MetadataLoader struct {
	fs afero.Fs
}

func NewMetadataLoader(fs afero.Fs) *MetadataLoader {
	return &MetadataLoader{fs: fs}
}

func (l *MetadataLoader) Load(path string) (*Experiment, Network, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, nil, utils.NewError(utils.ErrCheckpoint, "read %s: %v", path, err)
	}

	var doc checkpointDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, utils.NewError(utils.ErrCheckpoint, "parse %s: %v", path, err)
	}
	if len(doc.Experiment) == 0 {
		return nil, nil, utils.NewError(utils.ErrCheckpoint, "%s has no experiment", path)
	}

	e, err := NewExperiment(doc.Experiment, doc.Experiment.String("datetime"))
	if err != nil {
		return nil, nil, utils.NewError(utils.ErrCheckpoint, "%s: %v", path, err)
	}
	return e, doc.Network, nil
}
