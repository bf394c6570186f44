package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RollupRunModel 每次统计汇总运行的审计记录。
// Attempted 为枚举到的文章数，Committed 为实际落库的操作数，
// 中途失败的运行两者会出现差异。
type RollupRunModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Today     string             `bson:"today" json:"today"`         // 本次运行的 UTC 日键
	Trigger   string             `bson:"trigger" json:"trigger"`     // cron 或 http
	Attempted int                `bson:"attempted" json:"attempted"` // 枚举到的文章数
	Staged    int                `bson:"staged" json:"staged"`       // 暂存的写操作数
	Committed int                `bson:"committed" json:"committed"` // 已提交的写操作数
	Batches   int                `bson:"batches" json:"batches"`     // 提交批次数
	Pruned    int64              `bson:"pruned" json:"pruned"`       // 本轮清理的过期快照数
	Error     string             `bson:"error,omitempty" json:"error,omitempty"`
	Duration  int64              `bson:"duration_ms" json:"duration_ms"`
	StartedAt time.Time          `bson:"started_at" json:"started_at"`
}
