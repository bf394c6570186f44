package model

import (
	"time"
)

// ArticleSnapshot 按 UTC 日保存文章累计计数的快照，作为增量计算的基线
type ArticleSnapshot struct {
	ID        uint64 `gorm:"primaryKey"`
	ArticleID uint64 `gorm:"not null;index:idx_article_day,unique" json:"article_id"`
	// SnapshotDay 为 UTC 日历日，格式 YYYYMMDD
	SnapshotDay string    `gorm:"type:char(8);not null;index:idx_article_day,unique;column:snapshot_day" json:"snapshot_day"`
	TotalViews  int64     `gorm:"not null;default:0" json:"total_views"`
	TotalLikes  int64     `gorm:"not null;default:0" json:"total_likes"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ArticleSnapshot) TableName() string {
	return "article_snapshots"
}
