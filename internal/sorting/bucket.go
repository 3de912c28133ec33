package sorting

const DefaultBucketWidth = 1000

// BucketSort 把 [min, max] 按固定宽度划分成桶，桶内插入排序后依次拼接。
// 桶数为 (max-min)/width + 1，max == min 时退化为一个桶，不会出现除零。
func BucketSort(in []int, width int) []int {
	if width <= 0 {
		width = DefaultBucketWidth
	}
	out := make([]int, 0, len(in))
	if len(in) == 0 {
		return out
	}
	lo, hi := minMax(in)
	buckets := make([][]int, (hi-lo)/width+1)
	for _, v := range in {
		i := (v - lo) / width
		buckets[i] = append(buckets[i], v)
	}
	for _, b := range buckets {
		InsertionSort(b)
		out = append(out, b...)
	}
	return out
}

type Bucket struct {
	width int
}

func NewBucket(width int) Bucket {
	if width <= 0 {
		width = DefaultBucketWidth
	}
	return Bucket{width: width}
}

func (b Bucket) Name() string { return "BucketSort" }

func (b Bucket) Width() int { return b.width }

func (b Bucket) Sort(in []int) []int {
	return BucketSort(in, b.width)
}
