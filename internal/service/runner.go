package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/benbjohnson/clock"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"sort-bench/internal/dataset"
	"sort-bench/internal/model"
	"sort-bench/internal/sorting"
)

const tracerName = "sort-bench/internal/service"

var ErrInvalidRequest = errors.New("invalid benchmark request")

// 请求字段为零值时使用的默认值，与原始基准脚本一致
const (
	DefaultSize               = 100_000
	DefaultTrials             = 25
	DefaultSeedBase           = 420
	DefaultMaxValue           = 1_000_000
	DefaultQuadraticThreshold = 10_000
)

// 单次运行的上限；每个 trial 同时持有数据集、参考输出和全部算法输出
const (
	MaxSize   = 10_000_000
	MaxTrials = 1_000
)

type BenchmarkRequest struct {
	Size     int   `json:"size"`
	Trials   int   `json:"trials"`
	SeedBase int64 `json:"seed_base"`
	// 计数排序的上界在 BuildPanel 时由配置固定；超过该上界的 MaxValue
	// 会让计数排序 panic，并被计为不一致
	MaxValue int `json:"max_value"`
	// 数据规模超过该值时跳过 O(n²) 算法
	QuadraticThreshold int `json:"quadratic_threshold"`
	// Size 为 0 时按空数据集运行，而不是取默认规模
	AllowEmpty bool `json:"allow_empty"`
}

// withDefaults 零值字段填默认值；负值留给 Validate 报错
func (r BenchmarkRequest) withDefaults() BenchmarkRequest {
	if r.Size == 0 && !r.AllowEmpty {
		r.Size = DefaultSize
	}
	if r.Trials == 0 {
		r.Trials = DefaultTrials
	}
	if r.SeedBase == 0 {
		r.SeedBase = DefaultSeedBase
	}
	if r.MaxValue == 0 {
		r.MaxValue = DefaultMaxValue
	}
	if r.QuadraticThreshold == 0 {
		r.QuadraticThreshold = DefaultQuadraticThreshold
	}
	return r
}

func (r BenchmarkRequest) Validate() error {
	switch {
	case r.Size < 0:
		return fmt.Errorf("size must be non-negative, got %d: %w", r.Size, ErrInvalidRequest)
	case r.Size > MaxSize:
		return fmt.Errorf("size must be at most %d, got %d: %w", MaxSize, r.Size, ErrInvalidRequest)
	case r.Trials <= 0:
		return fmt.Errorf("trials must be positive, got %d: %w", r.Trials, ErrInvalidRequest)
	case r.Trials > MaxTrials:
		return fmt.Errorf("trials must be at most %d, got %d: %w", MaxTrials, r.Trials, ErrInvalidRequest)
	case r.MaxValue < 0:
		return fmt.Errorf("max_value must be non-negative, got %d: %w", r.MaxValue, ErrInvalidRequest)
	case r.QuadraticThreshold < 0:
		return fmt.Errorf("quadratic_threshold must be non-negative, got %d: %w", r.QuadraticThreshold, ErrInvalidRequest)
	}
	return nil
}

type BenchmarkRunResult struct {
	Run      *model.BenchmarkRun  `json:"run"`
	Trials   []model.TrialSummary `json:"trials"`
	Summary  model.Ranking        `json:"summary"`
	Failures int                  `json:"failures"`
	Correct  int                  `json:"correct"`
	Errors   []string             `json:"errors"`
}

// TrialObserver 每个 trial 校验完成后回调，用于逐 trial 输出
type TrialObserver func(summary model.TrialSummary, timings []model.AlgorithmTiming)

type RunnerOption func(*BenchmarkRunner)

func WithLogger(logger *zap.Logger) RunnerOption {
	return func(r *BenchmarkRunner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClock 注入计时时钟；默认 clock.New()，其 Now() 带单调时钟读数
func WithClock(c clock.Clock) RunnerOption {
	return func(r *BenchmarkRunner) {
		if c != nil {
			r.clock = c
		}
	}
}

func WithMetrics(m *Metrics) RunnerOption {
	return func(r *BenchmarkRunner) {
		r.metrics = m
	}
}

func WithTrialObserver(fn TrialObserver) RunnerOption {
	return func(r *BenchmarkRunner) {
		r.observer = fn
	}
}

// WithNativeLibrary 记录到报告头中的原生库路径
func WithNativeLibrary(path string) RunnerOption {
	return func(r *BenchmarkRunner) {
		r.nativeLibrary = path
	}
}

// BenchmarkRunner 顺序执行所有 trial：一次一个 trial，trial 内一次一个算法，避免计时互相干扰
type BenchmarkRunner struct {
	sorters       []sorting.Sorter
	verifier      *Verifier
	clock         clock.Clock
	logger        *zap.Logger
	metrics       *Metrics
	observer      TrialObserver
	nativeLibrary string
}

func NewBenchmarkRunner(sorters []sorting.Sorter, opts ...RunnerOption) *BenchmarkRunner {
	r := &BenchmarkRunner{
		sorters:  sorters,
		verifier: NewVerifier(),
		clock:    clock.New(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *BenchmarkRunner) Sorters() []sorting.Sorter {
	return r.sorters
}

// Run 执行一次完整的基准测试。ctx 仅用于链路追踪，运行本身不可取消。
// 算法输出不一致或执行 panic 都不致命：记录后继续下一个 trial。
func (r *BenchmarkRunner) Run(ctx context.Context, req BenchmarkRequest) (*BenchmarkRunResult, error) {
	req = req.withDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "sortbench.Run",
		trace.WithAttributes(
			attribute.Int("benchmark.size", req.Size),
			attribute.Int("benchmark.trials", req.Trials),
			attribute.Int64("benchmark.seed_base", req.SeedBase),
		),
	)
	defer span.End()

	run := model.NewBenchmarkRun(req.Size, req.Trials, req.SeedBase, req.MaxValue, req.QuadraticThreshold, r.nativeLibrary)
	log := r.logger.With(zap.String("run_id", run.ID.String()))
	log.Info("benchmark started",
		zap.Int("size", req.Size),
		zap.Int("trials", req.Trials),
		zap.Int64("seed_base", req.SeedBase),
		zap.Int("max_value", req.MaxValue),
		zap.Int("algorithms", len(r.sorters)),
	)

	agg := NewAggregator(sorting.Names(r.sorters))
	result := &BenchmarkRunResult{
		Run:    run,
		Trials: make([]model.TrialSummary, 0, req.Trials),
	}
	gen := dataset.NewGenerator(req.SeedBase)

	for i := 0; i < req.Trials; i++ {
		record := r.runTrial(ctx, gen, req, i)

		mismatched := r.verifier.Verify(record)
		r.metrics.observeTrial(mismatched)
		if len(mismatched) > 0 {
			log.Warn("mismatch detected", zap.Int("trial", i), zap.Strings("algorithms", mismatched))
		} else {
			log.Debug("trial verified", zap.Int("trial", i))
		}
		for _, name := range record.Order {
			if res := record.Results[name]; res.Err != "" {
				result.Errors = append(result.Errors, fmt.Sprintf("run=%s trial=%d algorithm=%s panicked: %s", run.ID, i, name, res.Err))
			}
		}

		agg.Append(record)
		summary := record.Summary()
		result.Trials = append(result.Trials, summary)
		if r.observer != nil {
			r.observer(summary, record.Timings())
		}
	}

	result.Failures = agg.Failures()
	result.Correct = agg.Trials() - agg.Failures()
	result.Summary = Rank(agg.Summaries())
	r.metrics.observeRun()

	span.SetAttributes(
		attribute.Int("benchmark.result.failures", result.Failures),
		attribute.StringSlice("benchmark.result.fastest", result.Summary.Fastest),
	)
	if result.Failures > 0 {
		span.SetStatus(codes.Error, "mismatches detected")
	} else {
		span.SetStatus(codes.Ok, "benchmark completed")
	}
	log.Info("benchmark finished",
		zap.Int("correct", result.Correct),
		zap.Int("failures", result.Failures),
		zap.Strings("fastest", result.Summary.Fastest),
		zap.Duration("fastest_mean", result.Summary.FastestMean),
	)
	return result, nil
}

// runTrial 重新播种、生成数据集、求参考输出，再让每个算法各自排序一份独立副本
func (r *BenchmarkRunner) runTrial(ctx context.Context, gen *dataset.Generator, req BenchmarkRequest, index int) *model.TrialRecord {
	seed := dataset.SeedFor(req.SeedBase, index)
	_, span := otel.Tracer(tracerName).Start(ctx, "sortbench.Trial",
		trace.WithAttributes(
			attribute.Int("trial.index", index),
			attribute.Int64("trial.seed", seed),
		),
	)
	defer span.End()

	gen.Reseed(seed)
	data := gen.Generate(req.Size, req.MaxValue)
	record := model.NewTrialRecord(index, seed, data, sorting.Reference(data))

	skipQuadratic := req.Size > req.QuadraticThreshold
	for _, s := range r.sorters {
		if skipQuadratic && sorting.IsQuadratic(s) {
			record.Add(model.AlgorithmResult{
				Algorithm: s.Name(),
				Elapsed:   model.NotMeasured,
				Skipped:   true,
			})
			continue
		}
		res := r.invoke(s, data)
		if res.Err == "" {
			r.metrics.observeSort(res.Algorithm, res.Elapsed)
		} else {
			span.AddEvent("sorter panicked", trace.WithAttributes(attribute.String("algorithm", res.Algorithm)))
		}
		record.Add(res)
	}
	return record
}

// invoke 计时一次排序调用；panic 被恢复并记录在结果中
func (r *BenchmarkRunner) invoke(s sorting.Sorter, data []int) (res model.AlgorithmResult) {
	res.Algorithm = s.Name()
	in := slices.Clone(data)

	start := r.clock.Now()
	defer func() {
		res.Elapsed = r.clock.Now().Sub(start)
		if p := recover(); p != nil {
			res.Output = nil
			res.Err = fmt.Sprint(p)
		}
	}()
	res.Output = s.Sort(in)
	return res
}
