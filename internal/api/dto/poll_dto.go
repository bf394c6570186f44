package dto

// PollVoteDTO 投票入参
type PollVoteDTO struct {
	ArticleID uint64 `json:"article_id" binding:"required"`
	BlockID   string `json:"block_id" binding:"required" validate:"min=1,max=64"`
	OptionIdx int    `json:"option_idx" validate:"min=0,max=31"`
}

// PollResultDTO 单个选项的票数
type PollResultDTO struct {
	OptionIdx int   `json:"option_idx"`
	Count     int64 `json:"count"`
}

// PollResultsDTO 投票块的统计结果
type PollResultsDTO struct {
	ArticleID uint64           `json:"article_id"`
	BlockID   string           `json:"block_id"`
	Total     int64            `json:"total"`
	Results   []*PollResultDTO `json:"results"`
	MyVote    *int             `json:"my_vote,omitempty"`
}
