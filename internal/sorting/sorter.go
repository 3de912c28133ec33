// Package sorting 基准测试的算法集合：每个算法把整数序列映射为其升序排列，
// 且从不修改调用方传入的切片。
package sorting

// Sorter 排序能力：返回 in 的升序排列，不修改 in
type Sorter interface {
	Name() string
	Sort(in []int) []int
}

// Quadratic 由 O(n²) 基线算法实现，用于在大规模数据上跳过它们
type Quadratic interface {
	Quadratic() bool
}

func IsQuadratic(s Sorter) bool {
	q, ok := s.(Quadratic)
	return ok && q.Quadratic()
}

// inPlace 把原地排序函数包装成 Sorter，每次调用先复制输入
type inPlace struct {
	name      string
	quadratic bool
	fn        func([]int)
}

func (s inPlace) Name() string    { return s.name }
func (s inPlace) Quadratic() bool { return s.quadratic }

func (s inPlace) Sort(in []int) []int {
	out := clone(in)
	s.fn(out)
	return out
}

// outOfPlace 包装返回新切片的排序函数
type outOfPlace struct {
	name string
	fn   func([]int) []int
}

func (s outOfPlace) Name() string { return s.name }

func (s outOfPlace) Sort(in []int) []int {
	return s.fn(in)
}

func NewSorter(name string, fn func([]int)) Sorter {
	return inPlace{name: name, fn: fn}
}

func NewQuadraticSorter(name string, fn func([]int)) Sorter {
	return inPlace{name: name, quadratic: true, fn: fn}
}

// clone 空输入也返回非 nil 的空切片
func clone(in []int) []int {
	out := make([]int, len(in))
	copy(out, in)
	return out
}

// MaxOf 空切片返回 0
func MaxOf(in []int) int {
	if len(in) == 0 {
		return 0
	}
	m := in[0]
	for _, v := range in[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func minMax(in []int) (int, int) {
	lo, hi := in[0], in[0]
	for _, v := range in[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
