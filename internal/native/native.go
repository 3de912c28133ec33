// Package native 外部“原生”排序例程的边界：外部例程只承诺原地排序一个定宽整数缓冲区，
// Adapter 负责在 []int 与该缓冲区之间来回复制。
package native

import (
	"errors"
	"fmt"
	"plugin"
	"sort"
	"strings"
	"sync"
)

// BuiltinPrefix 进程内注册的排序例程使用该前缀解析
const BuiltinPrefix = "builtin:"

// SymbolName 插件需导出的符号，类型为 func([]int32, int)
const SymbolName = "SortInPlace"

var ErrUnresolved = errors.New("native sorter library unresolved")

// BufferSorter 原地升序排序 buf 的前 n 个元素；不返回值，也不报告错误
type BufferSorter interface {
	SortInPlace(buf []int32, n int)
}

// BufferSorterFunc 让普通函数满足 BufferSorter
type BufferSorterFunc func(buf []int32, n int)

func (f BufferSorterFunc) SortInPlace(buf []int32, n int) {
	f(buf, n)
}

var (
	mu       sync.RWMutex
	registry = map[string]BufferSorter{}
)

// Register 注册一个进程内例程，可通过 "builtin:<name>" 解析
func Register(name string, s BufferSorter) {
	mu.Lock()
	defer mu.Unlock()
	if s == nil {
		panic("native: Register sorter is nil")
	}
	if _, dup := registry[name]; dup {
		panic("native: Register called twice for " + name)
	}
	registry[name] = s
}

// Builtins 已注册的例程名（排序后）
func Builtins() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Open 按配置路径解析外部例程：builtin:<name> 查注册表，其余路径按 Go 插件加载
func Open(path string) (BufferSorter, error) {
	if path == "" {
		return nil, fmt.Errorf("empty library path: %w", ErrUnresolved)
	}
	if name, ok := strings.CutPrefix(path, BuiltinPrefix); ok {
		mu.RLock()
		s, found := registry[name]
		mu.RUnlock()
		if !found {
			return nil, fmt.Errorf("builtin %q not registered (have %v): %w", name, Builtins(), ErrUnresolved)
		}
		return s, nil
	}
	return openPlugin(path)
}

func openPlugin(path string) (BufferSorter, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open plugin %s: %v: %w", path, err, ErrUnresolved)
	}
	sym, err := p.Lookup(SymbolName)
	if err != nil {
		return nil, fmt.Errorf("lookup %s in %s: %v: %w", SymbolName, path, err, ErrUnresolved)
	}
	switch fn := sym.(type) {
	case func([]int32, int):
		return BufferSorterFunc(fn), nil
	case *func([]int32, int):
		return BufferSorterFunc(*fn), nil
	default:
		return nil, fmt.Errorf("symbol %s in %s has type %T: %w", SymbolName, path, sym, ErrUnresolved)
	}
}
