package dto

import "time"

// ArticleBaseDTO 文章创建/更新入参
type ArticleBaseDTO struct {
	ID        uint64 `json:"id"`
	EditionNo int    `json:"edition_no" binding:"required" validate:"min=1"`
	Title     string `json:"title" binding:"required" validate:"min=1,max=255"`
	Subtitle  string `json:"subtitle" validate:"max=255"`
	Body      string `json:"body" binding:"required"`
	CoverURL  string `json:"cover_url"`
}

// ArticleDTO 文章详情
type ArticleDTO struct {
	ID          uint64     `json:"id"`
	EditionNo   int        `json:"edition_no"`
	AuthorID    uint64     `json:"author_id"`
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle"`
	Body        string     `json:"body,omitempty"`
	CoverURL    string     `json:"cover_url"`
	Status      string     `json:"status,omitempty"`
	TotalViews  int64      `json:"total_views"`
	TotalLikes  int64      `json:"total_likes"`
	Views7d     int64      `json:"views_7d"`
	Likes7d     int64      `json:"likes_7d"`
	Views30d    int64      `json:"views_30d"`
	Likes30d    int64      `json:"likes_30d"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// ArticleWithNavDTO 文章详情加前后期导航
type ArticleWithNavDTO struct {
	Article *ArticleDTO     `json:"article"`
	Prev    *ArticleBriefDTO `json:"prev,omitempty"`
	Next    *ArticleBriefDTO `json:"next,omitempty"`
}

// ArticleBriefDTO 列表/导航摘要，不含正文
type ArticleBriefDTO struct {
	ID          uint64     `json:"id"`
	EditionNo   int        `json:"edition_no"`
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle"`
	CoverURL    string     `json:"cover_url"`
	TotalViews  int64      `json:"total_views"`
	TotalLikes  int64      `json:"total_likes"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// ArticleListDTO 文章列表
type ArticleListDTO struct {
	List    []*ArticleBriefDTO `json:"list"`
	HasMore bool               `json:"has_more"`
}
