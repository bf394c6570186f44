package service

import (
	"Masthead/internal/api/dto"
	"Masthead/internal/model"
	"Masthead/internal/pkg/consts"
	"Masthead/internal/repository"
	"context"
)

type PollService interface {
	Vote(ctx context.Context, userID uint64, voteDTO *dto.PollVoteDTO) error
	GetResults(ctx context.Context, userID, articleID uint64, blockID string) (*dto.PollResultsDTO, error)
}

type pollServiceImpl struct {
	pollRepo    repository.PollRepo
	articleRepo repository.ArticleRepo
}

func NewPollService(pollRepo repository.PollRepo, articleRepo repository.ArticleRepo) PollService {
	return &pollServiceImpl{
		pollRepo:    pollRepo,
		articleRepo: articleRepo,
	}
}

// Vote 同一用户对同一投票块仅能投一票，不允许改票
func (s *pollServiceImpl) Vote(ctx context.Context, userID uint64, voteDTO *dto.PollVoteDTO) error {
	article, err := s.articleRepo.GetArticle(ctx, voteDTO.ArticleID)
	if err != nil {
		return err
	}
	if article == nil || article.Status != consts.ArticleStatusPublished {
		return ErrArticleNotFound
	}

	exist, err := s.pollRepo.GetUserVote(ctx, voteDTO.ArticleID, voteDTO.BlockID, userID)
	if err != nil {
		return err
	}
	if exist != nil {
		return ErrActionDuplicate
	}

	return s.pollRepo.CreateVote(ctx, &model.PollVote{
		ArticleID: voteDTO.ArticleID,
		BlockID:   voteDTO.BlockID,
		UserID:    userID,
		OptionIdx: voteDTO.OptionIdx,
	})
}

// GetResults 投票块的选项票数统计，登录用户附带本人所投选项
func (s *pollServiceImpl) GetResults(ctx context.Context, userID, articleID uint64, blockID string) (*dto.PollResultsDTO, error) {
	counts, err := s.pollRepo.CountVotesByOption(ctx, articleID, blockID)
	if err != nil {
		return nil, err
	}

	out := &dto.PollResultsDTO{
		ArticleID: articleID,
		BlockID:   blockID,
		Results:   make([]*dto.PollResultDTO, len(counts)),
	}
	for i, c := range counts {
		out.Results[i] = &dto.PollResultDTO{OptionIdx: c.OptionIdx, Count: c.Count}
		out.Total += c.Count
	}

	if userID > 0 {
		vote, err := s.pollRepo.GetUserVote(ctx, articleID, blockID, userID)
		if err != nil {
			return nil, err
		}
		if vote != nil {
			idx := vote.OptionIdx
			out.MyVote = &idx
		}
	}
	return out, nil
}
