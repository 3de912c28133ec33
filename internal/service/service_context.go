package service

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"sort-bench/internal/config"
	"sort-bench/internal/native"
	"sort-bench/internal/sorting"
)

type ServiceContext struct {
	Config   *config.Config
	Logger   *zap.Logger
	Registry *prometheus.Registry
	Metrics  *Metrics
	Runner   *BenchmarkRunner
}

// NewServiceContext 解析原生排序库并装配运行器；库无法解析时返回 native.ErrUnresolved
func NewServiceContext(cfg *config.Config, logger *zap.Logger, opts ...RunnerOption) (*ServiceContext, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	lib, err := native.Open(cfg.Native.Library)
	if err != nil {
		return nil, fmt.Errorf("解析原生排序库失败: %w", err)
	}
	logger.Info("native sorter resolved", zap.String("library", cfg.Native.Library))

	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)

	base := []RunnerOption{
		WithLogger(logger),
		WithMetrics(metrics),
		WithNativeLibrary(cfg.Native.Library),
	}
	panel := BuildPanel(cfg.Benchmark, native.NewAdapter(cfg.Native.Name, lib))

	return &ServiceContext{
		Config:   cfg,
		Logger:   logger,
		Registry: registry,
		Metrics:  metrics,
		Runner:   NewBenchmarkRunner(panel, append(base, opts...)...),
	}, nil
}

// DefaultRequest 由启动配置得到的请求
func (s *ServiceContext) DefaultRequest() BenchmarkRequest {
	b := s.Config.Benchmark
	return BenchmarkRequest{
		Size:               b.Size,
		Trials:             b.Trials,
		SeedBase:           b.SeedBase,
		MaxValue:           b.MaxValue,
		QuadraticThreshold: b.QuadraticThreshold,
		// 配置中的 size 已覆盖在默认值之上，0 即显式的空数据集
		AllowEmpty: true,
	}
}

// BuildPanel 参加评测的算法列表：参考排序、原生排序，再接其余算法
func BuildPanel(b config.BenchmarkConfig, nativeSorter sorting.Sorter) []sorting.Sorter {
	// 与 BenchmarkRequest 的零值默认保持一致
	countingMax := b.MaxValue
	if countingMax == 0 {
		countingMax = DefaultMaxValue
	}
	suite := sorting.Suite(sorting.Options{
		BucketWidth:      b.BucketWidth,
		CountingMax:      countingMax,
		InferCountingMax: b.InferCountingMax,
	})
	panel := make([]sorting.Sorter, 0, len(suite)+1)
	panel = append(panel, suite[0], nativeSorter)
	return append(panel, suite[1:]...)
}
