package algorithm

import "golang.org/x/exp/constraints"

// MaxSubarraySum 获取最大子序列和 (Kadane)
//
// 返回 arr 中任意非空连续子序列的最大和，arr 为空时返回 0。
// 累加使用 E 的补码回绕语义，不检查溢出；需要检查时用 MaxSubarraySumChecked。
func MaxSubarraySum[S ~[]E, E constraints.Signed](arr S) E {
	if len(arr) == 0 {
		return 0
	}

	maxCurrent, maxGlobal := arr[0], arr[0]
	for _, num := range arr[1:] {
		maxCurrent = max(num, maxCurrent+num)
		maxGlobal = max(maxGlobal, maxCurrent)
	}
	return maxGlobal
}

// MaxSubarraySumChecked 与 MaxSubarraySum 相同，但结果超出 E 的范围时返回 *OverflowError
func MaxSubarraySumChecked[S ~[]E, E constraints.Signed](arr S) (E, error) {
	if len(arr) == 0 {
		return 0, nil
	}

	maxCurrent, maxGlobal := arr[0], arr[0]
	for i, num := range arr[1:] {
		sum := maxCurrent + num
		switch {
		case maxCurrent > 0 && num > 0 && sum < 0:
			return 0, &OverflowError{Index: i + 1}
		case maxCurrent < 0 && num < 0 && sum >= 0:
			// 向下溢出时真实和小于 num
			maxCurrent = num
		default:
			maxCurrent = max(num, sum)
		}
		maxGlobal = max(maxGlobal, maxCurrent)
	}
	return maxGlobal, nil
}
