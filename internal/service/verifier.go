package service

import (
	"slices"

	"sort-bench/internal/model"
)

// Verifier 逐值比较每个算法输出与参考输出（长度、元素、顺序都一致才算正确）
type Verifier struct{}

func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify 标记 record 的 Mismatch/Mismatched 并返回不一致的算法名；跳过的算法不参与比较
func (v *Verifier) Verify(record *model.TrialRecord) []string {
	var mismatched []string
	for _, name := range record.Order {
		res := record.Results[name]
		if res.Skipped {
			continue
		}
		// 执行 panic 的结果一律算不一致（空数据集时 nil 输出也会与参考相等）
		if res.Err != "" || !slices.Equal(res.Output, record.Reference) {
			mismatched = append(mismatched, name)
		}
	}
	record.Mismatched = mismatched
	record.Mismatch = len(mismatched) > 0
	return mismatched
}
