package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"sort-bench/internal/model"
)

const (
	barWidth   = 40
	barGlyph   = "█"
	maxErrors  = 20
	nameColumn = 22
)

// TrialMarks 逐 trial 输出中的结果标记；控制台可以传入带颜色的版本
type TrialMarks struct {
	Pass    string
	Fail    string
	Skip    string
	Panic   string
	Correct string
	Failed  string
}

var DefaultTrialMarks = TrialMarks{
	Pass:    "ok",
	Fail:    "MISMATCH",
	Skip:    "skipped",
	Panic:   "PANIC",
	Correct: "Correct: outputs match.",
	Failed:  "Mismatch detected!",
}

// RenderTrial 渲染一个 trial 的逐算法耗时与正确性标记
func RenderTrial(summary model.TrialSummary, timings []model.AlgorithmTiming, marks TrialMarks) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Run %d (seed %d, n=%s)\n", summary.Index+1, summary.Seed, humanize.Comma(int64(summary.Size))))
	for _, t := range timings {
		switch {
		case t.Skipped:
			b.WriteString(fmt.Sprintf("%-*s: %10s    %s\n", nameColumn, t.Algorithm, "-", marks.Skip))
		case t.Err != "":
			b.WriteString(fmt.Sprintf("%-*s: %.6f s  %s %s\n", nameColumn, t.Algorithm, t.Elapsed.Seconds(), marks.Panic, t.Err))
		case t.Passed:
			b.WriteString(fmt.Sprintf("%-*s: %.6f s  %s\n", nameColumn, t.Algorithm, t.Elapsed.Seconds(), marks.Pass))
		default:
			b.WriteString(fmt.Sprintf("%-*s: %.6f s  %s\n", nameColumn, t.Algorithm, t.Elapsed.Seconds(), marks.Fail))
		}
	}
	if summary.Mismatch {
		b.WriteString(fmt.Sprintf("%s (%s)\n", marks.Failed, strings.Join(summary.Mismatched, ", ")))
	} else {
		b.WriteString(marks.Correct + "\n")
	}
	return b.String()
}

// RenderReport 渲染最终报告：运行元数据、最快算法、排名表与正确运行数
func RenderReport(result *BenchmarkRunResult) string {
	var b strings.Builder
	run := result.Run
	ranking := result.Summary

	b.WriteString("=== SORT BENCHMARK ===\n")
	if run != nil {
		b.WriteString(fmt.Sprintf("- run_id: %s\n", run.ID))
		b.WriteString(fmt.Sprintf("- size: %s\n", humanize.Comma(int64(run.Size))))
		b.WriteString(fmt.Sprintf("- trials: %d\n", run.Trials))
		b.WriteString(fmt.Sprintf("- seed_base: %d\n", run.SeedBase))
		b.WriteString(fmt.Sprintf("- range: [0, %s]\n", humanize.Comma(int64(run.MaxValue))))
		b.WriteString(fmt.Sprintf("- quadratic_threshold: %s\n", humanize.Comma(int64(run.QuadraticThreshold))))
		if run.NativeLibrary != "" {
			b.WriteString(fmt.Sprintf("- native: %s\n", run.NativeLibrary))
		}
		b.WriteString(fmt.Sprintf("- created_at: %s\n", run.CreatedAt.Format(time.RFC3339)))
	}
	b.WriteString("\n")

	if len(ranking.Fastest) > 0 {
		b.WriteString(fmt.Sprintf("Fastest Algorithm(s): %s (%.6f s)\n\n", strings.Join(ranking.Fastest, ", "), ranking.FastestMean.Seconds()))
	} else {
		b.WriteString("Fastest Algorithm(s): none measured\n\n")
	}

	b.WriteString("=== SORTING PERFORMANCE SUMMARY ===\n")
	b.WriteString(fmt.Sprintf("%-*s %-15s %-12s %-10s %-10s %-10s  Bar\n", nameColumn, "Algorithm", "Avg Time (s)", "% Slower", "Stdev", "Min", "Max"))
	for _, s := range ranking.Stats {
		if !s.Measured {
			b.WriteString(fmt.Sprintf("%-*s %-15s %-12s %-10s %-10s %-10s\n", nameColumn, s.Algorithm, "n/a", "n/a", "n/a", "n/a", "n/a"))
			continue
		}
		b.WriteString(fmt.Sprintf("%-*s %-15.6f %-12.2f %-10.6f %-10.6f %-10.6f  %s\n",
			nameColumn, s.Algorithm,
			s.Mean.Seconds(), s.PercentSlower, s.StdDev.Seconds(), s.Min.Seconds(), s.Max.Seconds(),
			Bar(s.Relative)))
	}

	if len(result.Errors) > 0 {
		b.WriteString("\nErrors:\n")
		n := min(len(result.Errors), maxErrors)
		for _, e := range result.Errors[:n] {
			b.WriteString(fmt.Sprintf("- %s\n", e))
		}
		if len(result.Errors) > n {
			b.WriteString(fmt.Sprintf("- ...(%d more omitted)\n", len(result.Errors)-n))
		}
	}

	total := result.Correct + result.Failures
	b.WriteString(fmt.Sprintf("\nCorrect runs: %d/%d\n", result.Correct, total))
	return b.String()
}

// Bar 长度为 relative*40 的条形，relative 即 fastest_mean/this_mean
func Bar(relative float64) string {
	n := int(relative * barWidth)
	if n < 0 {
		n = 0
	}
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat(barGlyph, n)
}
