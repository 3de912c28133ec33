package sorting

// HeapSort 原地建最大堆，反复把堆顶交换到尾部
func HeapSort(a []int) {
	n := len(a)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(a, i, n)
	}
	for end := n - 1; end > 0; end-- {
		a[0], a[end] = a[end], a[0]
		siftDown(a, 0, end)
	}
}

// siftDown 在 a[:n] 内下沉 root
func siftDown(a []int, root, n int) {
	for {
		largest := root
		l, r := 2*root+1, 2*root+2
		if l < n && a[l] > a[largest] {
			largest = l
		}
		if r < n && a[r] > a[largest] {
			largest = r
		}
		if largest == root {
			return
		}
		a[root], a[largest] = a[largest], a[root]
		root = largest
	}
}
