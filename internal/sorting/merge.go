package sorting

// MergeSort 自顶向下归并，整个排序只分配一块辅助缓冲区；相等元素保持原有顺序
func MergeSort(a []int) {
	if len(a) < 2 {
		return
	}
	buf := make([]int, len(a))
	mergeSort(a, buf, 0, len(a))
}

// mergeSort 排序半开区间 [lo, hi)
func mergeSort(a, buf []int, lo, hi int) {
	if hi-lo < 2 {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(a, buf, lo, mid)
	mergeSort(a, buf, mid, hi)
	merge(a, buf, lo, mid, hi)
}

func merge(a, buf []int, lo, mid, hi int) {
	copy(buf[lo:hi], a[lo:hi])
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if buf[i] <= buf[j] {
			a[k] = buf[i]
			i++
		} else {
			a[k] = buf[j]
			j++
		}
		k++
	}
	k += copy(a[k:hi], buf[i:mid])
	copy(a[k:hi], buf[j:hi])
}
