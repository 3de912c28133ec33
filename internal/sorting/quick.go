package sorting

// QuickSort 原地快速排序：以区间末元素为枢轴，<= 枢轴的元素划到左侧
func QuickSort(a []int) {
	quickSort(a, 0, len(a)-1)
}

func quickSort(a []int, lo, hi int) {
	for lo < hi {
		p := partition(a, lo, hi)
		// 递归较短一侧，较长一侧在循环里处理，栈深保持 O(log n)
		if p-lo < hi-p {
			quickSort(a, lo, p-1)
			lo = p + 1
		} else {
			quickSort(a, p+1, hi)
			hi = p - 1
		}
	}
}

func partition(a []int, lo, hi int) int {
	pivot := a[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if a[j] <= pivot {
			a[i], a[j] = a[j], a[i]
			i++
		}
	}
	a[i], a[hi] = a[hi], a[i]
	return i
}
