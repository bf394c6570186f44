package model

import (
	"time"
)

// PollVote 文章内投票块的单票记录，同一用户对同一投票块仅一票
type PollVote struct {
	ID        uint64    `gorm:"primaryKey"`
	ArticleID uint64    `gorm:"not null;index:idx_poll_user,unique" json:"article_id"`
	BlockID   string    `gorm:"type:varchar(64);not null;index:idx_poll_user,unique" json:"block_id"`
	UserID    uint64    `gorm:"not null;index:idx_poll_user,unique" json:"user_id"`
	OptionIdx int       `gorm:"not null" json:"option_idx"`
	CreatedAt time.Time `json:"created_at"`
}

func (PollVote) TableName() string {
	return "poll_votes"
}
