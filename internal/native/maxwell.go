package native

// MaxwellMeanName 内置均值枢轴排序的注册名
const MaxwellMeanName = "maxwell-mean"

// insertionThreshold 不超过该长度的区间直接插入排序
const insertionThreshold = 50

func init() {
	Register(MaxwellMeanName, BufferSorterFunc(MaxwellMeanSort))
}

type frame struct {
	start, end int
}

// MaxwellMeanSort 以区间均值为枢轴原地划分，用显式栈代替递归，小区间插入排序
func MaxwellMeanSort(buf []int32, n int) {
	if n > len(buf) {
		n = len(buf)
	}
	if n < 2 {
		return
	}
	stack := []frame{{0, n - 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.end-f.start+1 <= insertionThreshold {
			insertionSort32(buf, f.start, f.end)
			continue
		}

		// 均值用整数精确比较：v <= sum/size 等价于 v*size <= sum
		size := int64(f.end - f.start + 1)
		var sum int64
		for i := f.start; i <= f.end; i++ {
			sum += int64(buf[i])
		}

		mid := partitionMean(buf, f.start, f.end, sum, size)
		// 全部 <= 均值说明区间内元素全相等，已有序
		if mid > f.end {
			continue
		}
		if mid < f.end {
			stack = append(stack, frame{mid, f.end})
		}
		if f.start < mid-1 {
			stack = append(stack, frame{f.start, mid - 1})
		}
	}
}

// partitionMean 把 <= sum/size 的元素移到左侧，返回右半段起点
func partitionMean(buf []int32, start, end int, sum, size int64) int {
	left, right := start, end
	for left <= right {
		for left <= right && int64(buf[left])*size <= sum {
			left++
		}
		for left <= right && int64(buf[right])*size > sum {
			right--
		}
		if left < right {
			buf[left], buf[right] = buf[right], buf[left]
			left++
			right--
		}
	}
	return left
}

func insertionSort32(buf []int32, start, end int) {
	for i := start + 1; i <= end; i++ {
		key := buf[i]
		j := i - 1
		for j >= start && buf[j] > key {
			buf[j+1] = buf[j]
			j--
		}
		buf[j+1] = key
	}
}
