package native

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Builtin(t *testing.T) {
	lib, err := Open(BuiltinPrefix + MaxwellMeanName)
	require.NoError(t, err)
	require.NotNil(t, lib)
	assert.Contains(t, Builtins(), MaxwellMeanName)
}

func TestOpen_Unresolved(t *testing.T) {
	for _, path := range []string{
		"",
		BuiltinPrefix + "does-not-exist",
		"/nonexistent/dir/maxwell_mean.so",
	} {
		t.Run(path, func(t *testing.T) {
			lib, err := Open(path)
			assert.Nil(t, lib)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnresolved), "got %v", err)
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	assert.Panics(t, func() {
		Register(MaxwellMeanName, BufferSorterFunc(MaxwellMeanSort))
	})
	assert.Panics(t, func() { Register("nil-sorter", nil) })
}

func TestMaxwellMeanSort(t *testing.T) {
	rng := rand.New(rand.NewSource(420))
	cases := map[string][]int32{
		"empty":      {},
		"single":     {4},
		"scenario":   {5, 3, 3, 1, 2},
		"random":     randomInt32(rng, 20_000, 1_000_000),
		"few values": randomInt32(rng, 5_000, 3),
		"all equal":  slices.Repeat([]int32{9}, 1_000),
		"descending": descending(2_000),
		"near max":   append(slices.Repeat([]int32{math.MaxInt32}, 999), math.MaxInt32-1),
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			want := slices.Clone(in)
			slices.Sort(want)
			buf := slices.Clone(in)
			MaxwellMeanSort(buf, len(buf))
			assert.Equal(t, want, buf)
		})
	}
}

func TestMaxwellMeanSort_PrefixOnly(t *testing.T) {
	buf := []int32{3, 2, 1, 0, -1}
	MaxwellMeanSort(buf, 3)
	assert.Equal(t, []int32{1, 2, 3, 0, -1}, buf)

	// n 超过缓冲区长度时按缓冲区长度处理
	buf = []int32{2, 1}
	MaxwellMeanSort(buf, 10)
	assert.Equal(t, []int32{1, 2}, buf)
}

// 均值舍入到最大值时区间仍未全等，不能当作已有序跳过
func TestMaxwellMeanSort_NearMaxValues(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 8,000,000 element buffer in short mode")
	}
	const n = 8_000_000
	buf := slices.Repeat([]int32{math.MaxInt32}, n)
	buf[n-1] = math.MaxInt32 - 1

	MaxwellMeanSort(buf, n)
	assert.True(t, slices.IsSorted(buf))
	assert.Equal(t, int32(math.MaxInt32-1), buf[0])
	assert.Equal(t, int32(math.MaxInt32), buf[n-1])
}

func TestAdapter_Sort(t *testing.T) {
	lib, err := Open(BuiltinPrefix + MaxwellMeanName)
	require.NoError(t, err)
	a := NewAdapter("MaxwellMean (native)", lib)
	assert.Equal(t, "MaxwellMean (native)", a.Name())

	in := []int{5, 3, 3, 1, 2}
	assert.Equal(t, []int{1, 2, 3, 3, 5}, a.Sort(in))
	assert.Equal(t, []int{5, 3, 3, 1, 2}, in, "input must not be mutated")

	out := a.Sort([]int{})
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestAdapter_PassesCount(t *testing.T) {
	var gotLen, gotN int
	a := NewAdapter("spy", BufferSorterFunc(func(buf []int32, n int) {
		gotLen, gotN = len(buf), n
		slices.Sort(buf[:n])
	}))
	assert.Equal(t, []int{1, 2, 3}, a.Sort([]int{3, 1, 2}))
	assert.Equal(t, 3, gotLen)
	assert.Equal(t, 3, gotN)
}

func randomInt32(rng *rand.Rand, n, max int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(rng.Intn(max + 1))
	}
	return out
}

func descending(n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(n - i)
	}
	return out
}
