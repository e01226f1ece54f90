package experiment

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"

	"submit-lsf-job/pkg/utils"
)

// Settings 实验配置文件内容
type Settings map[string]interface{}

// LoadSettings 读取并解析实验配置 YAML 文件
func LoadSettings(fs afero.Fs, path string) (Settings, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, utils.NewError(utils.ErrConfig, "read %s: %v", path, err)
	}

	settings := Settings{}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, utils.NewError(utils.ErrConfig, "parse %s: %v", path, err)
	}
	if len(settings) == 0 {
		return nil, utils.NewError(utils.ErrConfig, "%s contains no settings", path)
	}

	return settings, nil
}

// NumSymbols 返回 num_symbols 字段，必须为正整数
func (s Settings) NumSymbols() (int, error) {
	value, ok := s["num_symbols"]
	if !ok {
		return 0, errors.New("num_symbols is missing")
	}

	var n int
	switch v := value.(type) {
	case int:
		n = v
	case int64:
		n = int(v)
	case uint64:
		n = int(v)
	default:
		return 0, errors.Errorf("num_symbols must be an integer, got %v", value)
	}
	if n <= 0 {
		return 0, errors.Errorf("num_symbols must be positive, got %d", n)
	}
	return n, nil
}

// String 返回字符串字段，不存在或类型不符时返回空串
func (s Settings) String(key string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return ""
}
