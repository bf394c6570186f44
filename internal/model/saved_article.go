package model

import (
	"time"
)

type SavedArticle struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"not null;index:idx_user_article,unique" json:"user_id"`
	ArticleID uint64    `gorm:"not null;index:idx_user_article,unique" json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (SavedArticle) TableName() string {
	return "saved_articles"
}
