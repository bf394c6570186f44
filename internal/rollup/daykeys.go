package rollup

import (
	"time"
)

const dayLayout = "20060102"

// Keys 一次汇总运行所使用的三个 UTC 日历日键
type Keys struct {
	Today string
	Day7  string
	Day30 string
}

// DayKey 将时刻换算为 UTC 日历日键（YYYYMMDD）
func DayKey(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// NewKeys 以参考时刻计算今日、7 天前、30 天前三个键。
// 键在运行开始时固定一次，同一轮内所有文章对比相同的历史基线。
// 按日历减日而非减秒，闰年与月末由日历运算自然处理。
func NewKeys(ref time.Time) Keys {
	ref = ref.UTC()
	return Keys{
		Today: DayKey(ref),
		Day7:  DayKey(ref.AddDate(0, 0, -7)),
		Day30: DayKey(ref.AddDate(0, 0, -30)),
	}
}
