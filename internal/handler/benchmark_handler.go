package handler

import (
	"errors"
	"io"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sort-bench/internal/service"
	"sort-bench/internal/sorting"
)

type BenchmarkHandler struct {
	runner   *service.BenchmarkRunner
	defaults service.BenchmarkRequest
	logger   *zap.Logger

	// 同一时间只允许一次运行，避免计时互相干扰
	running sync.Mutex
}

func NewBenchmarkHandler(runner *service.BenchmarkRunner, defaults service.BenchmarkRequest, logger *zap.Logger) *BenchmarkHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BenchmarkHandler{runner: runner, defaults: defaults, logger: logger}
}

// runOverrides 可覆盖的运行参数；max_value 固定取启动配置，计数排序的上界由它决定
type runOverrides struct {
	Size               *int   `json:"size"`
	Trials             *int   `json:"trials"`
	SeedBase           *int64 `json:"seed_base"`
	QuadraticThreshold *int   `json:"quadratic_threshold"`
}

func (o runOverrides) apply(req service.BenchmarkRequest) service.BenchmarkRequest {
	if o.Size != nil {
		req.Size = *o.Size
	}
	if o.Trials != nil {
		req.Trials = *o.Trials
	}
	if o.SeedBase != nil {
		req.SeedBase = *o.SeedBase
	}
	if o.QuadraticThreshold != nil {
		req.QuadraticThreshold = *o.QuadraticThreshold
	}
	return req
}

type algorithmInfo struct {
	Name      string `json:"name"`
	Quadratic bool   `json:"quadratic"`
}

// ListAlgorithms 参评算法（按执行顺序）
func (h *BenchmarkHandler) ListAlgorithms(c *gin.Context) {
	sorters := h.runner.Sorters()
	out := make([]algorithmInfo, 0, len(sorters))
	for _, s := range sorters {
		out = append(out, algorithmInfo{Name: s.Name(), Quadratic: sorting.IsQuadratic(s)})
	}
	c.JSON(http.StatusOK, gin.H{
		"algorithms": out,
		"total":      len(out),
	})
}

// RunBenchmark 以启动配置为默认值执行一次基准测试，请求体可覆盖部分参数
func (h *BenchmarkHandler) RunBenchmark(c *gin.Context) {
	var overrides runOverrides
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&overrides); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	req := overrides.apply(h.defaults)
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.running.TryLock() {
		c.JSON(http.StatusConflict, gin.H{"error": "benchmark already running"})
		return
	}
	defer h.running.Unlock()

	result, err := h.runner.Run(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrInvalidRequest) {
			status = http.StatusBadRequest
		}
		h.logger.Error("benchmark run failed", zap.Error(err))
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run":      result.Run,
		"summary":  result.Summary,
		"trials":   result.Trials,
		"failures": result.Failures,
		"correct":  result.Correct,
		"errors":   result.Errors,
		"report":   service.RenderReport(result),
	})
}
