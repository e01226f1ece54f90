package utils

type Config struct {
	LogLevel             string `mapstructure:"log-level"`
	LogFile              string `mapstructure:"log-file"`
	SubmitProgram        string `mapstructure:"submit-program"`
	DomainSuffix         string `mapstructure:"domain-suffix"`
	GpuProject           string `mapstructure:"gpu-project"`
	PipelineProgram      string `mapstructure:"pipeline-program"`
	ExperimentsDirectory string `mapstructure:"experiments-directory"`
	MetricsTextfile      string `mapstructure:"metrics-textfile"`
}

// DefaultConfig 返回未读取配置文件时使用的默认配置
func DefaultConfig() Config {
	return Config{
		LogLevel:             "info",
		SubmitProgram:        DefaultSubmitProgram,
		DomainSuffix:         DefaultDomainSuffix,
		GpuProject:           DefaultGpuProject,
		PipelineProgram:      DefaultPipelineProgram,
		ExperimentsDirectory: DefaultExperimentsDirectory,
	}
}
