package model

import (
	"time"

	"github.com/google/uuid"
)

// BenchmarkRun 每次基准测试执行的元数据（用于报告头与复现）
type BenchmarkRun struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Size     int   `json:"size"`
	Trials   int   `json:"trials"`
	SeedBase int64 `json:"seed_base"`
	MaxValue int   `json:"max_value"`
	// 超过该规模时跳过 O(n²) 算法
	QuadraticThreshold int `json:"quadratic_threshold"`
	// 原生排序库的解析路径（builtin:<name> 或插件路径）
	NativeLibrary string `json:"native_library"`
}

func NewBenchmarkRun(size, trials int, seedBase int64, maxValue, quadraticThreshold int, nativeLibrary string) *BenchmarkRun {
	return &BenchmarkRun{
		ID:                 uuid.New(),
		CreatedAt:          time.Now().UTC(),
		Size:               size,
		Trials:             trials,
		SeedBase:           seedBase,
		MaxValue:           maxValue,
		QuadraticThreshold: quadraticThreshold,
		NativeLibrary:      nativeLibrary,
	}
}
