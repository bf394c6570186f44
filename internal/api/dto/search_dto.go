package dto

// SearchResultDTO 搜索结果
type SearchResultDTO struct {
	List    []*ArticleBriefDTO `json:"list"`
	Total   int64              `json:"total"`
	HasMore bool               `json:"has_more"`
}
