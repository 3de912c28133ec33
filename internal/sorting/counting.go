package sorting

// CountingSort 按精确值计数，计数数组大小为 max+1。
// 前提：所有值非负且 <= max。违反前提不会被检查，会以越界 panic 的形式暴露。
func CountingSort(in []int, max int) []int {
	out := make([]int, len(in))
	if len(in) == 0 {
		return out
	}
	count := make([]int, max+1)
	for _, v := range in {
		count[v]++
	}
	pos := 0
	for v, c := range count {
		for ; c > 0; c-- {
			out[pos] = v
			pos++
		}
	}
	return out
}

// Counting 计数排序；max 可显式给出，也可从输入推断
type Counting struct {
	max   int
	infer bool
}

func NewCounting(max int) Counting {
	return Counting{max: max}
}

func NewCountingAuto() Counting {
	return Counting{infer: true}
}

func (c Counting) Name() string { return "CountingSort" }

func (c Counting) Sort(in []int) []int {
	max := c.max
	if c.infer {
		max = MaxOf(in)
	}
	return CountingSort(in, max)
}
