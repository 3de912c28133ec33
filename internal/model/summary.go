package model

import "time"

// SummaryStat 单个算法跨 trial 的耗时统计（排除哨兵）
type SummaryStat struct {
	Algorithm string        `json:"algorithm"`
	Samples   int           `json:"samples"`
	Mean      time.Duration `json:"mean"`
	StdDev    time.Duration `json:"stddev"`
	Min       time.Duration `json:"min"`
	Max       time.Duration `json:"max"`
	// 所有 trial 都跳过时为 false
	Measured bool `json:"measured"`
}

// RankedStat 排名后的统计行
type RankedStat struct {
	SummaryStat
	Rank int `json:"rank"`
	// 相对最快均值慢了多少（百分比）
	PercentSlower float64 `json:"percent_slower"`
	// fastest_mean / this_mean，用于条形图长度
	Relative float64 `json:"relative"`
}

// Ranking 按均值升序的排名结果
type Ranking struct {
	Stats       []RankedStat  `json:"stats"`
	Fastest     []string      `json:"fastest"`
	FastestMean time.Duration `json:"fastest_mean"`
}
