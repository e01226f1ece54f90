package app

import "strings"

// 单横线的两字母别名，pflag 不支持，解析前改写为长选项
var shortAliases = map[string]string{
	"-ex": "--experiment_settings",
}

// PreprocessArgs 改写命令行中的 -ex 等别名，"--" 之后的参数保持不变
func PreprocessArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		name, value, hasValue := strings.Cut(arg, "=")
		if long, ok := shortAliases[name]; ok {
			if hasValue {
				arg = long + "=" + value
			} else {
				arg = long
			}
		}
		out = append(out, arg)
	}
	return out
}
