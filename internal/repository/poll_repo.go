package repository

import (
	"Masthead/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// PollOptionCount 单个选项的票数
type PollOptionCount struct {
	OptionIdx int   `json:"option_idx"`
	Count     int64 `json:"count"`
}

type PollRepo interface {
	CreateVote(ctx context.Context, vote *model.PollVote) error
	GetUserVote(ctx context.Context, articleID uint64, blockID string, userID uint64) (*model.PollVote, error)
	CountVotesByOption(ctx context.Context, articleID uint64, blockID string) ([]PollOptionCount, error)
}

type PollRepoImpl struct {
	db *gorm.DB
}

func NewPollRepo(db *gorm.DB) PollRepo {
	return &PollRepoImpl{db}
}

func (s *PollRepoImpl) CreateVote(ctx context.Context, vote *model.PollVote) error {
	return s.db.WithContext(ctx).Create(vote).Error
}

func (s *PollRepoImpl) GetUserVote(ctx context.Context, articleID uint64, blockID string, userID uint64) (*model.PollVote, error) {
	var vote model.PollVote
	err := s.db.WithContext(ctx).
		Where("article_id = ? AND block_id = ? AND user_id = ?", articleID, blockID, userID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vote, nil
}

// CountVotesByOption 按选项聚合票数
func (s *PollRepoImpl) CountVotesByOption(ctx context.Context, articleID uint64, blockID string) ([]PollOptionCount, error) {
	var counts []PollOptionCount
	err := s.db.WithContext(ctx).Model(&model.PollVote{}).
		Select("option_idx, COUNT(*) AS count").
		Where("article_id = ? AND block_id = ?", articleID, blockID).
		Group("option_idx").
		Order("option_idx ASC").
		Scan(&counts).Error
	return counts, err
}
