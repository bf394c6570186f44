package rollup

// Totals 文章的累计计数
type Totals struct {
	Views int64
	Likes int64
}

// Deltas 滑动窗口增量，写回文章的派生字段
type Deltas struct {
	Views7d  int64
	Likes7d  int64
	Views30d int64
	Likes30d int64
}

// ComputeDeltas 以两条历史快照为基线计算窗口增量。
// 基线缺失时以当前累计值代替，增量为 0（宁可无信号，不给错信号）。
// 上游计数回调导致的负差一律截断为 0。
func ComputeDeltas(current Totals, base7, base30 *Totals) Deltas {
	b7 := current
	if base7 != nil {
		b7 = *base7
	}
	b30 := current
	if base30 != nil {
		b30 = *base30
	}

	return Deltas{
		Views7d:  clampSub(current.Views, b7.Views),
		Likes7d:  clampSub(current.Likes, b7.Likes),
		Views30d: clampSub(current.Views, b30.Views),
		Likes30d: clampSub(current.Likes, b30.Likes),
	}
}

func clampSub(current, base int64) int64 {
	if d := current - base; d > 0 {
		return d
	}
	return 0
}
