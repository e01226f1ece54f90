package utils

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"sync"
	"time"
)

const (
	Version = "1.2.0"
)

var (
	GitCommit = "UnKnown"
	BuildTime = "Unknown"
)

func GetVersion() string {
	return fmt.Sprintf("%s Version: %s-%s\nBuild Time: %s", AppName, Version, GitCommit, BuildTime)
}

func VersionTemplate() string {
	return `{{.Version}}` + "\n"
}

var lsfVersionOnce sync.Once
var lsfVersion string

// GetLsfVersion 返回集群 LSF 版本，探测结果只计算一次
func GetLsfVersion() string {
	lsfVersionOnce.Do(func() {
		lsfVersion = detectLsfVersion()
	})
	return lsfVersion
}

func detectLsfVersion() string {
	if v := strings.TrimSpace(os.Getenv("LSF_VERSION")); v != "" {
		return v
	}

	candidates := [][]string{
		{"lsid", "-V"},
		{"bsub", "-V"},
	}

	for _, args := range candidates {
		out, err := commandOutputWithTimeout(2*time.Second, args[0], args[1:]...)
		if err != nil {
			continue
		}
		if v := parseLsfVersion(out); v != "" {
			return v
		}
	}

	return "unknown"
}

// parseLsfVersion 从 lsid/bsub -V 的输出中提取版本
func parseLsfVersion(out string) string {
	out = strings.TrimSpace(out)
	if out == "" {
		return ""
	}
	if v := extractLsfVersionLine(out); v != "" {
		return v
	}
	if v := extractSemanticVersion(out); v != "" {
		return v
	}
	return firstNonEmptyLine(out)
}

func commandOutputWithTimeout(timeout time.Duration, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// e.g. "IBM Spectrum LSF Standard 10.1.0.13, Jul 19 2022"
var lsfVersionLineRE = regexp.MustCompile(`(?m)\bLSF(?:\s+[A-Za-z]+)?\s+(\d+(?:\.\d+)+)`)
var semanticVersionRE = regexp.MustCompile(`\bv?\d+\.\d+\.\d+(?:\.\d+)*(?:[-+][0-9A-Za-z.-]+)?\b`)

func extractLsfVersionLine(s string) string {
	m := lsfVersionLineRE.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

func extractSemanticVersion(s string) string {
	return semanticVersionRE.FindString(s)
}

func firstNonEmptyLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if v := strings.TrimSpace(line); v != "" {
			return v
		}
	}
	return ""
}
