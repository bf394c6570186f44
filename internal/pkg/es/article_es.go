package es

import "time"

// ArticleES 写入 ES 的文章文档
type ArticleES struct {
	ID        uint64    `json:"id"`
	EditionNo int       `json:"edition_no"`
	Status    string    `json:"status"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	// PlainBody 为富文本 JSON 抽取出的纯文本，用于全文检索
	PlainBody   string    `json:"plain_body"`
	CoverURL    string    `json:"cover_url"`
	PublishedAt time.Time `json:"published_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
