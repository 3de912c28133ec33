package sorting

// ShellSort 间隔从 n/2 开始逐次减半的插入排序
func ShellSort(a []int) {
	n := len(a)
	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			tmp := a[i]
			j := i
			for j >= gap && a[j-gap] > tmp {
				a[j] = a[j-gap]
				j -= gap
			}
			a[j] = tmp
		}
	}
}
