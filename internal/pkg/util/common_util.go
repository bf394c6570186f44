package util

import (
	"strconv"
)

// StrSliceToUint64Slice 将字符串切片批量转换为 uint64
func StrSliceToUint64Slice(strs []string) ([]uint64, error) {
	result := make([]uint64, 0, len(strs))
	for _, s := range strs {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}
