package sorting

import (
	"cmp"
	"slices"
)

const ReferenceName = "StdSort (Go)"

// Reference 可信的稳定排序，作为所有算法输出的对照基准
func Reference(in []int) []int {
	out := clone(in)
	slices.SortStableFunc(out, cmp.Compare[int])
	return out
}
