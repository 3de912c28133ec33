package service

import (
	"cmp"
	"slices"
	"time"

	"sort-bench/internal/model"
)

// Rank 按均值升序排名；未测量的排在最后，其余相同均值按原顺序并列同名次。
// 所有均值等于最快均值的算法都记为最快。
func Rank(stats []model.SummaryStat) model.Ranking {
	sorted := slices.Clone(stats)
	slices.SortStableFunc(sorted, func(a, b model.SummaryStat) int {
		if a.Measured != b.Measured {
			if a.Measured {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Mean, b.Mean)
	})

	out := model.Ranking{Stats: make([]model.RankedStat, 0, len(sorted))}
	if len(sorted) > 0 && sorted[0].Measured {
		out.FastestMean = sorted[0].Mean
	}

	rank := 0
	for i, s := range sorted {
		if i == 0 || s.Measured != sorted[i-1].Measured || s.Mean != sorted[i-1].Mean {
			rank = i + 1
		}
		rs := model.RankedStat{SummaryStat: s, Rank: rank}
		if s.Measured {
			if s.Mean == out.FastestMean {
				out.Fastest = append(out.Fastest, s.Algorithm)
			}
			rs.PercentSlower = percentSlower(s.Mean, out.FastestMean)
			rs.Relative = relative(s.Mean, out.FastestMean)
		}
		out.Stats = append(out.Stats, rs)
	}
	return out
}

func percentSlower(mean, best time.Duration) float64 {
	if mean == best || best <= 0 {
		return 0
	}
	return float64(mean-best) / float64(best) * 100
}

// relative fastest_mean / this_mean；均值为 0 时视为与最快一样
func relative(mean, best time.Duration) float64 {
	if mean <= 0 {
		return 1
	}
	return float64(best) / float64(mean)
}
