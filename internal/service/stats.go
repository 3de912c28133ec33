package service

import (
	"math"
	"time"

	"sort-bench/internal/model"
)

// Aggregator 按 trial 追加记录，最后折叠出每个算法的耗时统计。
// 每次运行新建一个，只有运行器一个写入者。
type Aggregator struct {
	order    []string
	samples  map[string][]time.Duration
	trials   int
	failures int
}

func NewAggregator(order []string) *Aggregator {
	return &Aggregator{
		order:   append([]string(nil), order...),
		samples: map[string][]time.Duration{},
	}
}

// Append 折叠一个已校验的 trial；哨兵与 panic 的调用不计入耗时样本
func (a *Aggregator) Append(record *model.TrialRecord) {
	a.trials++
	if record.Mismatch {
		a.failures++
	}
	for _, name := range record.Order {
		if _, ok := a.samples[name]; !ok {
			a.samples[name] = nil
			if !containsName(a.order, name) {
				a.order = append(a.order, name)
			}
		}
		res := record.Results[name]
		if !res.Measured() || res.Err != "" {
			continue
		}
		a.samples[name] = append(a.samples[name], res.Elapsed)
	}
}

func (a *Aggregator) Trials() int {
	return a.trials
}

// Failures 出现过不一致的 trial 数
func (a *Aggregator) Failures() int {
	return a.failures
}

// Summaries 按算法顺序返回统计
func (a *Aggregator) Summaries() []model.SummaryStat {
	out := make([]model.SummaryStat, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, calcSummaryStat(name, a.samples[name]))
	}
	return out
}

// calcSummaryStat 均值、样本标准差（n-1，样本不足 2 个时为 0）、最小值、最大值
func calcSummaryStat(name string, samples []time.Duration) model.SummaryStat {
	s := model.SummaryStat{Algorithm: name, Samples: len(samples)}
	if len(samples) == 0 {
		return s
	}
	s.Measured = true
	s.Min, s.Max = samples[0], samples[0]

	var sum float64
	for _, d := range samples {
		sum += float64(d)
		if d < s.Min {
			s.Min = d
		}
		if d > s.Max {
			s.Max = d
		}
	}
	mean := sum / float64(len(samples))
	s.Mean = time.Duration(math.Round(mean))

	if len(samples) > 1 {
		var varsum float64
		for _, d := range samples {
			diff := float64(d) - mean
			varsum += diff * diff
		}
		s.StdDev = time.Duration(math.Round(math.Sqrt(varsum / float64(len(samples)-1))))
	}
	return s
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
