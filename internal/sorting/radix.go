package sorting

const radix = 10

// RadixSort 十进制 LSD 基数排序，每一位做一次稳定的计数分配，直到位权超过最大值。
// 前提：所有值非负。全为负数时不做任何一轮分配，原样返回；正负混合会越界 panic。
func RadixSort(in []int) []int {
	out := clone(in)
	if len(out) < 2 {
		return out
	}
	max := MaxOf(out)
	buf := make([]int, len(out))
	for place := 1; place <= max; place *= radix {
		distributeByDigit(out, buf, place)
		out, buf = buf, out
		if place > max/radix {
			break
		}
	}
	return out
}

// distributeByDigit 按 place 位上的数字把 src 稳定地写入 dst
func distributeByDigit(src, dst []int, place int) {
	var count [radix]int
	for _, v := range src {
		count[(v/place)%radix]++
	}
	for d := 1; d < radix; d++ {
		count[d] += count[d-1]
	}
	for i := len(src) - 1; i >= 0; i-- {
		d := (src[i] / place) % radix
		count[d]--
		dst[count[d]] = src[i]
	}
}
