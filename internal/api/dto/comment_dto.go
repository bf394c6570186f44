package dto

import "time"

// CommentBaseDTO 评论入参
type CommentBaseDTO struct {
	ArticleID uint64 `json:"article_id" binding:"required"`
	Content   string `json:"content" binding:"required" validate:"min=1,max=2000"`
}

// CommentDTO 评论
type CommentDTO struct {
	ID        uint64    `json:"id"`
	ArticleID uint64    `json:"article_id"`
	UserID    uint64    `json:"user_id"`
	Nickname  string    `json:"nickname"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
