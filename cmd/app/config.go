package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"submit-lsf-job/pkg/utils"
)

// newViper 创建带默认值和环境变量覆盖的 viper 实例
func newViper() *viper.Viper {
	v := viper.New()
	defaults := utils.DefaultConfig()
	v.SetDefault("log-level", defaults.LogLevel)
	v.SetDefault("log-file", defaults.LogFile)
	v.SetDefault("submit-program", defaults.SubmitProgram)
	v.SetDefault("domain-suffix", defaults.DomainSuffix)
	v.SetDefault("gpu-project", defaults.GpuProject)
	v.SetDefault("pipeline-program", defaults.PipelineProgram)
	v.SetDefault("experiments-directory", defaults.ExperimentsDirectory)
	v.SetDefault("metrics-textfile", defaults.MetricsTextfile)

	v.SetEnvPrefix(utils.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig 读取配置文件。未指定且默认路径下不存在时只使用默认值
func loadConfig(v *viper.Viper, configFilePath string) (utils.Config, error) {
	var config utils.Config

	if configFilePath == "" {
		configFilePath = findConfigFile(configSearchPaths())
	}

	if configFilePath != "" {
		v.SetConfigFile(configFilePath)
		v.SetConfigType(utils.ConfigType)
		if err := v.ReadInConfig(); err != nil {
			return config, utils.NewError(utils.ErrConfigFile, "read %s: %v", configFilePath, err)
		}
		logrus.Tracef("using config file %s", configFilePath)
	} else {
		logrus.Tracef("no config file found, using defaults")
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, utils.NewError(utils.ErrConfigFile, "parse config: %v", err)
	}
	return config, nil
}

// findConfigFile 按顺序查找 submit-lsf-job.yaml，只接受带扩展名的普通文件
func findConfigFile(dirs []string) string {
	for _, dir := range dirs {
		path := filepath.Join(dir, utils.ConfigFileName)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

func configSearchPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		userConfig := filepath.Join(home, utils.UserConfig)
		if ok, _ := pathExists(userConfig); ok {
			paths = append(paths, userConfig)
		}
	}
	return append(paths, utils.SystemConfig)
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
