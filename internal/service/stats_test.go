package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sort-bench/internal/model"
)

func trialWith(index int, mismatch bool, results ...model.AlgorithmResult) *model.TrialRecord {
	r := model.NewTrialRecord(index, int64(index), nil, nil)
	for _, res := range results {
		r.Add(res)
	}
	r.Mismatch = mismatch
	return r
}

func measured(name string, d time.Duration) model.AlgorithmResult {
	return model.AlgorithmResult{Algorithm: name, Elapsed: d}
}

func skipped(name string) model.AlgorithmResult {
	return model.AlgorithmResult{Algorithm: name, Elapsed: model.NotMeasured, Skipped: true}
}

func TestAggregator_Summaries(t *testing.T) {
	agg := NewAggregator([]string{"A", "B", "C"})
	agg.Append(trialWith(0, false, measured("A", 1*time.Second), measured("B", 4*time.Second), skipped("C")))
	agg.Append(trialWith(1, true, measured("A", 2*time.Second), measured("B", 4*time.Second), skipped("C")))
	agg.Append(trialWith(2, false, measured("A", 3*time.Second), measured("B", 4*time.Second), skipped("C")))

	assert.Equal(t, 3, agg.Trials())
	assert.Equal(t, 1, agg.Failures())

	stats := agg.Summaries()
	require.Len(t, stats, 3)

	a := stats[0]
	assert.Equal(t, "A", a.Algorithm)
	assert.True(t, a.Measured)
	assert.Equal(t, 3, a.Samples)
	assert.Equal(t, 2*time.Second, a.Mean)
	// 样本标准差：sqrt(((1-2)² + 0 + (3-2)²) / 2) = 1
	assert.Equal(t, 1*time.Second, a.StdDev)
	assert.Equal(t, 1*time.Second, a.Min)
	assert.Equal(t, 3*time.Second, a.Max)

	assert.Equal(t, time.Duration(0), stats[1].StdDev)

	c := stats[2]
	assert.False(t, c.Measured)
	assert.Equal(t, 0, c.Samples)
}

func TestAggregator_SingleSampleHasZeroStdDev(t *testing.T) {
	agg := NewAggregator([]string{"A"})
	agg.Append(trialWith(0, false, measured("A", 7*time.Millisecond)))
	s := agg.Summaries()[0]
	assert.Equal(t, 7*time.Millisecond, s.Mean)
	assert.Equal(t, time.Duration(0), s.StdDev)
}

func TestAggregator_ExcludesPanickedInvocations(t *testing.T) {
	agg := NewAggregator(nil)
	agg.Append(trialWith(0, true, model.AlgorithmResult{Algorithm: "P", Elapsed: time.Second, Err: "boom"}))
	agg.Append(trialWith(1, false, measured("P", 2*time.Second)))

	stats := agg.Summaries()
	require.Len(t, stats, 1)
	assert.Equal(t, "P", stats[0].Algorithm)
	assert.Equal(t, 1, stats[0].Samples)
	assert.Equal(t, 2*time.Second, stats[0].Mean)
}

func TestRank(t *testing.T) {
	stats := []model.SummaryStat{
		{Algorithm: "Skipped", Measured: false},
		{Algorithm: "Half", Measured: true, Mean: 2 * time.Second},
		{Algorithm: "Best", Measured: true, Mean: 1 * time.Second},
		{Algorithm: "TiedBest", Measured: true, Mean: 1 * time.Second},
		{Algorithm: "OneAndHalf", Measured: true, Mean: 1500 * time.Millisecond},
	}
	ranking := Rank(stats)

	assert.Equal(t, []string{"Best", "TiedBest"}, ranking.Fastest)
	assert.Equal(t, time.Second, ranking.FastestMean)

	var order []string
	var ranks []int
	for _, s := range ranking.Stats {
		order = append(order, s.Algorithm)
		ranks = append(ranks, s.Rank)
	}
	assert.Equal(t, []string{"Best", "TiedBest", "OneAndHalf", "Half", "Skipped"}, order)
	assert.Equal(t, []int{1, 1, 3, 4, 5}, ranks)

	assert.Equal(t, 0.0, ranking.Stats[0].PercentSlower)
	assert.Equal(t, 1.0, ranking.Stats[0].Relative)
	assert.InDelta(t, 50.0, ranking.Stats[2].PercentSlower, 1e-9)
	assert.InDelta(t, 100.0, ranking.Stats[3].PercentSlower, 1e-9)
	assert.InDelta(t, 0.5, ranking.Stats[3].Relative, 1e-9)
	assert.Equal(t, 0.0, ranking.Stats[4].Relative)
}

func TestRank_NothingMeasured(t *testing.T) {
	ranking := Rank([]model.SummaryStat{{Algorithm: "X"}, {Algorithm: "Y"}})
	assert.Empty(t, ranking.Fastest)
	assert.Equal(t, time.Duration(0), ranking.FastestMean)
	require.Len(t, ranking.Stats, 2)
	assert.Equal(t, 1, ranking.Stats[0].Rank)
	assert.Equal(t, 1, ranking.Stats[1].Rank)

	assert.Empty(t, Rank(nil).Stats)
}

func TestRank_ZeroMeans(t *testing.T) {
	ranking := Rank([]model.SummaryStat{
		{Algorithm: "A", Measured: true},
		{Algorithm: "B", Measured: true},
	})
	assert.Equal(t, []string{"A", "B"}, ranking.Fastest)
	for _, s := range ranking.Stats {
		assert.Equal(t, 0.0, s.PercentSlower)
		assert.Equal(t, 1.0, s.Relative)
	}
}
