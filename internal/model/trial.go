package model

import "time"

// NotMeasured 跳过的测量使用的哨兵时长，统计时排除
const NotMeasured time.Duration = -1

// AlgorithmResult 单个算法在一次 trial 中的输出与耗时
type AlgorithmResult struct {
	Algorithm string        `json:"algorithm"`
	Output    []int         `json:"-"`
	Elapsed   time.Duration `json:"elapsed"`
	Skipped   bool          `json:"skipped"`
	// 算法执行中 panic 时记录原因；此时 Output 为 nil
	Err string `json:"err,omitempty"`
}

// Measured 是否为有效测量
func (r AlgorithmResult) Measured() bool {
	return !r.Skipped && r.Elapsed != NotMeasured
}

// TrialRecord 一次 trial 的完整记录，校验后折叠进聚合器即丢弃
type TrialRecord struct {
	Index     int
	Seed      int64
	Dataset   []int
	Reference []int
	Results   map[string]AlgorithmResult
	// 算法执行顺序
	Order []string

	Mismatch   bool
	Mismatched []string
}

func NewTrialRecord(index int, seed int64, dataset, reference []int) *TrialRecord {
	return &TrialRecord{
		Index:     index,
		Seed:      seed,
		Dataset:   dataset,
		Reference: reference,
		Results:   map[string]AlgorithmResult{},
	}
}

// Add 追加一个算法结果，保持执行顺序
func (t *TrialRecord) Add(res AlgorithmResult) {
	if _, ok := t.Results[res.Algorithm]; !ok {
		t.Order = append(t.Order, res.Algorithm)
	}
	t.Results[res.Algorithm] = res
}

// Timings 按执行顺序返回不含序列的耗时信息
func (t *TrialRecord) Timings() []AlgorithmTiming {
	out := make([]AlgorithmTiming, 0, len(t.Order))
	failed := map[string]bool{}
	for _, name := range t.Mismatched {
		failed[name] = true
	}
	for _, name := range t.Order {
		r := t.Results[name]
		out = append(out, AlgorithmTiming{
			Algorithm: name,
			Elapsed:   r.Elapsed,
			Skipped:   r.Skipped,
			Passed:    !r.Skipped && !failed[name],
			Err:       r.Err,
		})
	}
	return out
}

// Summary 丢弃数据集与输出序列后的 trial 投影
func (t *TrialRecord) Summary() TrialSummary {
	s := TrialSummary{
		Index:      t.Index,
		Seed:       t.Seed,
		Size:       len(t.Dataset),
		Mismatch:   t.Mismatch,
		Mismatched: append([]string(nil), t.Mismatched...),
		Elapsed:    map[string]time.Duration{},
	}
	for _, name := range t.Order {
		r := t.Results[name]
		if r.Skipped {
			s.Skipped = append(s.Skipped, name)
			continue
		}
		s.Elapsed[name] = r.Elapsed
	}
	return s
}

// AlgorithmTiming 逐 trial 输出行所需的信息
type AlgorithmTiming struct {
	Algorithm string        `json:"algorithm"`
	Elapsed   time.Duration `json:"elapsed"`
	Skipped   bool          `json:"skipped"`
	Passed    bool          `json:"passed"`
	Err       string        `json:"err,omitempty"`
}

// TrialSummary 保存在运行结果中的 trial 摘要
type TrialSummary struct {
	Index      int                      `json:"index"`
	Seed       int64                    `json:"seed"`
	Size       int                      `json:"size"`
	Mismatch   bool                     `json:"mismatch"`
	Mismatched []string                 `json:"mismatched,omitempty"`
	Elapsed    map[string]time.Duration `json:"elapsed"`
	Skipped    []string                 `json:"skipped,omitempty"`
}
