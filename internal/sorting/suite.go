package sorting

// Options 算法集合的可调参数
type Options struct {
	BucketWidth int
	// CountingMax 计数排序的显式最大值；InferCountingMax 为 true 时忽略
	CountingMax      int
	InferCountingMax bool
}

// Suite 按固定顺序构造算法集合；参考排序排在最前，O(n²) 基线排在最后
func Suite(opts Options) []Sorter {
	counting := NewCounting(opts.CountingMax)
	if opts.InferCountingMax {
		counting = NewCountingAuto()
	}
	return []Sorter{
		outOfPlace{name: ReferenceName, fn: Reference},
		NewSorter("Quicksort", QuickSort),
		NewSorter("MergeSort", MergeSort),
		NewSorter("HeapSort", HeapSort),
		NewSorter("ShellSort", ShellSort),
		counting,
		outOfPlace{name: "RadixSort", fn: RadixSort},
		NewBucket(opts.BucketWidth),
		NewQuadraticSorter("InsertionSort", InsertionSort),
		NewQuadraticSorter("BubbleSort", BubbleSort),
		NewQuadraticSorter("SelectionSort", SelectionSort),
	}
}

// Names 返回算法名，顺序与 sorters 一致
func Names(sorters []Sorter) []string {
	out := make([]string, 0, len(sorters))
	for _, s := range sorters {
		out = append(out, s.Name())
	}
	return out
}
