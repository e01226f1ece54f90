package experiment

import (
	"strconv"
	"strings"
	"time"

	"submit-lsf-job/pkg/utils"
)

const defaultPrefix = "standard"

// Experiment 描述一次分类器训练实验
type Experiment struct {
	Settings   Settings
	Datetime   string
	NumSymbols int
	Prefix     string
	Name       string
	Filename   string
}

// Timestamp 生成实验时间戳，如 2026-10-16_09:30:00
func Timestamp(t time.Time) string {
	return t.Format(utils.DatetimeLayout)
}

// NewExperiment 由实验配置和时间戳构造实验描述
func NewExperiment(settings Settings, datetime string) (*Experiment, error) {
	numSymbols, err := settings.NumSymbols()
	if err != nil {
		return nil, err
	}

	e := &Experiment{
		Settings:   settings,
		Datetime:   datetime,
		NumSymbols: numSymbols,
		Prefix:     settings.String("experiment_prefix"),
		Name:       settings.String("experiment_name"),
	}
	if e.Prefix == "" {
		e.Prefix = defaultPrefix
	}

	if filename := settings.String("filename"); filename != "" {
		e.Filename = filename
	} else {
		e.Filename = e.canonicalFilename()
	}
	return e, nil
}

// canonicalFilename <prefix>[_<name>]_<num_symbols>[_<datetime>]
func (e *Experiment) canonicalFilename() string {
	parts := []string{e.Prefix}
	if e.Name != "" {
		parts = append(parts, e.Name)
	}
	parts = append(parts, strconv.Itoa(e.NumSymbols))
	if e.Datetime != "" {
		parts = append(parts, e.Datetime)
	}
	return strings.Join(parts, "_")
}
