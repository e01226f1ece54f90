package builder

import "submit-lsf-job/pkg/utils"

// 开发数据集所需内存较少，与请求值无关
var devDatasetMemLimits = map[int]int{
	3:    1024,
	100:  2048,
	1000: 2048,
}

// MemLimit 计算作业内存上限（MB）。查表优先于评估作业的默认值
func MemLimit(numSymbols int, evaluate bool, requested int) int {
	if limit, ok := devDatasetMemLimits[numSymbols]; ok {
		return limit
	}
	if evaluate {
		return utils.EvaluateMemLimit
	}
	return requested
}
