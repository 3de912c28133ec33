package native

import "sort-bench/internal/sorting"

// Adapter 把 BufferSorter 包装成 sorting.Sorter。
// Sort 内含 []int <-> []int32 的复制，计时包住整个调用，因此包含这部分开销。
type Adapter struct {
	name string
	lib  BufferSorter
}

var _ sorting.Sorter = (*Adapter)(nil)

func NewAdapter(name string, lib BufferSorter) *Adapter {
	return &Adapter{name: name, lib: lib}
}

func (a *Adapter) Name() string { return a.name }

// Sort 值需落在 int32 范围内，超出部分会被截断
func (a *Adapter) Sort(in []int) []int {
	buf := make([]int32, len(in))
	for i, v := range in {
		buf[i] = int32(v)
	}
	a.lib.SortInPlace(buf, len(buf))
	out := make([]int, len(buf))
	for i, v := range buf {
		out[i] = int(v)
	}
	return out
}
