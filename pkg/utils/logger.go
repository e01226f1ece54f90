package utils

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LogFormatter struct{}

func (m *LogFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	timestamp := entry.Time.Format("2006-01-02 15:04:05")
	var newLog string

	// HasCaller()为true才会有调用信息
	if entry.HasCaller() {
		fName := filepath.Base(entry.Caller.File)
		newLog = fmt.Sprintf("[%s] [%s] [%s:%d %s] %s\n",
			timestamp, entry.Level, fName, entry.Caller.Line, entry.Caller.Function, entry.Message)
	} else {
		newLog = fmt.Sprintf("[%s] [%s] %s\n", timestamp, entry.Level, entry.Message)
	}

	b.WriteString(newLog)
	return b.Bytes(), nil
}

func ParseLogLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Invalid log level '%s', defaulting to 'info'", level)
		return logrus.InfoLevel
	}

	return lvl
}

// InitLogger 日志写到标准错误，标准输出留给提交命令。logFile 非空时同时写入滚动日志文件
func InitLogger(level logrus.Level, logFile string) {
	logrus.SetReportCaller(true)
	logrus.SetFormatter(&LogFormatter{})
	logrus.SetLevel(level)
	if logFile == "" {
		logrus.SetOutput(os.Stderr)
		return
	}
	rotating := &lumberjack.Logger{
		Filename:   logFile, // 日志文件路径
		MaxSize:    10,      // 日志文件的最大大小（以MB为单位）
		MaxBackups: 3,       // 保留的旧日志文件数量
		MaxAge:     28,      // 保留的旧日志文件的最大天数
		LocalTime:  true,
		Compress:   true,
	}
	logrus.SetOutput(io.MultiWriter(os.Stderr, rotating))
}
