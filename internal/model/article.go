package model

import (
	"time"
)

type Article struct {
	ID        uint64 `gorm:"primaryKey"`
	EditionNo int    `gorm:"not null;uniqueIndex:idx_edition_no" json:"edition_no"`
	AuthorID  uint64 `gorm:"not null;index:idx_author_id" json:"author_id"`
	Title     string `gorm:"type:varchar(255);not null" json:"title"`
	Subtitle  string `gorm:"type:varchar(255)" json:"subtitle"`
	// Body 保存编辑器的富文本 JSON，后端不解析其内部结构
	Body     string `gorm:"type:mediumtext" json:"body"`
	CoverURL string `gorm:"type:varchar(512)" json:"cover_url"`
	Status   string `gorm:"type:varchar(16);not null;default:'draft';index:idx_status" json:"status"`

	// 累计计数，由流量消费端持续更新
	TotalViews int64 `gorm:"not null;default:0" json:"total_views"`
	TotalLikes int64 `gorm:"not null;default:0" json:"total_likes"`

	// 滑动窗口增量，仅由统计汇总任务写入
	Views7d         int64      `gorm:"not null;default:0;column:views_7d" json:"views_7d"`
	Likes7d         int64      `gorm:"not null;default:0;column:likes_7d" json:"likes_7d"`
	Views30d        int64      `gorm:"not null;default:0;column:views_30d" json:"views_30d"`
	Likes30d        int64      `gorm:"not null;default:0;column:likes_30d" json:"likes_30d"`
	RollupUpdatedAt *time.Time `json:"rollup_updated_at"`

	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Article) TableName() string {
	return "articles"
}
