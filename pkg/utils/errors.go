package utils

import (
	"fmt"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// 错误类型，调用方通过 errors.Is 判断
var (
	ErrUsage           = errors.New("no experiment settings or checkpoint specified")
	ErrConfig          = errors.New("invalid experiment settings")
	ErrConfigFile      = errors.New("invalid configuration file")
	ErrCheckpoint      = errors.New("invalid checkpoint")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrSubmission      = errors.New("job submission failed")
	ErrInterrupted     = errors.New("interrupted")
)

// Error 带错误类型的错误
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NewError 创建指定类型的错误并记录调用栈
func NewError(kind error, format string, args ...interface{}) error {
	return errors.WithStack(&Error{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// SubmissionError 提交程序以非零状态退出或被信号终止
type SubmissionError struct {
	Command    string
	ExitStatus int
	Signal     syscall.Signal
	Err        error
}

func (e *SubmissionError) Error() string {
	if e.Signal != 0 {
		return fmt.Sprintf("Command '%s' died with <Signals.%s: %d>.", e.Command, unix.SignalName(e.Signal), int(e.Signal))
	}
	return fmt.Sprintf("Command '%s' returned non-zero exit status %d.", e.Command, e.ExitStatus)
}

func (e *SubmissionError) Is(target error) bool {
	return target == ErrSubmission
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
