package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sort-bench/internal/model"
)

func sampleResult() *BenchmarkRunResult {
	run := model.NewBenchmarkRun(100_000, 2, 420, 1_000_000, 10_000, "builtin:maxwell-mean")
	stats := []model.SummaryStat{
		{Algorithm: "Quicksort", Measured: true, Samples: 2, Mean: 1500 * time.Millisecond, StdDev: 100 * time.Millisecond, Min: 1400 * time.Millisecond, Max: 1600 * time.Millisecond},
		{Algorithm: "StdSort (Go)", Measured: true, Samples: 2, Mean: time.Second, Min: time.Second, Max: time.Second},
		{Algorithm: "BubbleSort"},
	}
	return &BenchmarkRunResult{
		Run:      run,
		Summary:  Rank(stats),
		Correct:  1,
		Failures: 1,
		Errors:   []string{"trial=1 algorithm=Quicksort panicked: boom"},
	}
}

func TestRenderReport(t *testing.T) {
	out := RenderReport(sampleResult())
	t.Logf("\n%s", out)

	assert.Contains(t, out, "- size: 100,000")
	assert.Contains(t, out, "- range: [0, 1,000,000]")
	assert.Contains(t, out, "- native: builtin:maxwell-mean")
	assert.Contains(t, out, "Fastest Algorithm(s): StdSort (Go) (1.000000 s)")
	assert.Contains(t, out, "=== SORTING PERFORMANCE SUMMARY ===")
	assert.Contains(t, out, "Correct runs: 1/2")
	assert.Contains(t, out, "panicked: boom")

	lines := strings.Split(out, "\n")
	var quick, bubble, std string
	for _, l := range lines {
		switch {
		case strings.HasPrefix(l, "Quicksort "):
			quick = l
		case strings.HasPrefix(l, "BubbleSort "):
			bubble = l
		case strings.HasPrefix(l, "StdSort (Go) "):
			std = l
		}
	}
	// 1.5s 相对最快 1s：慢 50%，条形 40*2/3 = 26 格
	assert.Contains(t, quick, "50.00")
	assert.True(t, strings.HasSuffix(quick, strings.Repeat("█", 26)), quick)
	assert.True(t, strings.HasSuffix(std, strings.Repeat("█", 40)), std)
	assert.Contains(t, bubble, "n/a")
	assert.NotContains(t, bubble, "█")

	// 排名顺序：最快在前，未测量在最后
	assert.Less(t, strings.Index(out, "StdSort (Go) "), strings.Index(out, "Quicksort "))
	assert.Less(t, strings.Index(out, "Quicksort "), strings.Index(out, "BubbleSort "))
}

func TestRenderReport_TruncatesErrors(t *testing.T) {
	result := sampleResult()
	result.Errors = nil
	for i := 0; i < 25; i++ {
		result.Errors = append(result.Errors, fmt.Sprintf("err-%02d", i))
	}
	out := RenderReport(result)
	assert.Contains(t, out, "err-19")
	assert.NotContains(t, out, "err-20")
	assert.Contains(t, out, "(5 more omitted)")
}

func TestRenderReport_NothingMeasured(t *testing.T) {
	out := RenderReport(&BenchmarkRunResult{Summary: Rank([]model.SummaryStat{{Algorithm: "BubbleSort"}})})
	assert.Contains(t, out, "Fastest Algorithm(s): none measured")
	assert.Contains(t, out, "Correct runs: 0/0")
}

func TestRenderTrial(t *testing.T) {
	summary := model.TrialSummary{Index: 0, Seed: 420, Size: 12_345, Mismatch: true, Mismatched: []string{"Broken", "Panicky"}}
	timings := []model.AlgorithmTiming{
		{Algorithm: "HeapSort", Elapsed: 2 * time.Millisecond, Passed: true},
		{Algorithm: "Broken", Elapsed: time.Millisecond},
		{Algorithm: "Panicky", Err: "boom"},
		{Algorithm: "BubbleSort", Elapsed: model.NotMeasured, Skipped: true},
	}
	out := RenderTrial(summary, timings, DefaultTrialMarks)

	assert.Contains(t, out, "Run 1 (seed 420, n=12,345)")
	assert.Contains(t, out, "0.002000 s  ok")
	assert.Contains(t, out, "0.001000 s  MISMATCH")
	assert.Contains(t, out, "PANIC boom")
	assert.Contains(t, out, "skipped")
	assert.Contains(t, out, "Mismatch detected! (Broken, Panicky)")

	summary.Mismatch = false
	summary.Mismatched = nil
	out = RenderTrial(summary, timings[:1], DefaultTrialMarks)
	assert.Contains(t, out, "Correct: outputs match.")
}

func TestBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("█", 40), Bar(1))
	assert.Equal(t, strings.Repeat("█", 20), Bar(0.5))
	assert.Equal(t, "", Bar(0))
	assert.Equal(t, strings.Repeat("█", 40), Bar(3))
	assert.Equal(t, "", Bar(-1))
}
