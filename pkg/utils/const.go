package utils

const (
	AppName        = "submit-lsf-job"
	EnvPrefix      = "SUBMIT_LSF_JOB"
	ConfigFileName = "submit-lsf-job.yaml"
	ConfigType     = "yaml"
	SystemConfig   = "/etc/submit-lsf-job/"
	UserConfig     = ".config/submit-lsf-job"

	DefaultSubmitProgram        = "bsub"
	DefaultDomainSuffix         = "ebi.ac.uk"
	DefaultGpuProject           = "gpu"
	DefaultPipelineProgram      = "python gene_symbol_classifier.py"
	DefaultExperimentsDirectory = "experiments"

	DefaultJobType     = "standard"
	DefaultComputeNode = "gpu-009"
	DefaultNumTasks    = 1
	DefaultMemLimit    = 8192

	// EvaluateMemLimit applies to evaluation jobs outside the dev dataset table
	EvaluateMemLimit = 2048

	// DatetimeLayout is ISO-8601 with second precision and "_" between date and time
	DatetimeLayout = "2006-01-02_15:04:05"

	SubmitBanner   = "running command:"
	InterruptText  = "Interrupted with CTRL-C, exiting..."
	InterruptCode  = 130
	MissingProgram = 127
)
