package service

import (
	"Masthead/internal/api/dto"
	"Masthead/internal/model"
	"Masthead/internal/pkg/consts"
	"Masthead/internal/repository"
	"context"
	"errors"
	"fmt"
	"testing"
)

type fakePollRepo struct {
	votes  map[string]*model.PollVote
	counts []repository.PollOptionCount
}

func pollKey(articleID uint64, blockID string, userID uint64) string {
	return fmt.Sprintf("%d/%s/%d", articleID, blockID, userID)
}

func voteDTO(vote *model.PollVote) *dto.PollVoteDTO {
	return &dto.PollVoteDTO{
		ArticleID: vote.ArticleID,
		BlockID:   vote.BlockID,
		OptionIdx: vote.OptionIdx,
	}
}

func (f *fakePollRepo) CreateVote(_ context.Context, vote *model.PollVote) error {
	if f.votes == nil {
		f.votes = make(map[string]*model.PollVote)
	}
	f.votes[pollKey(vote.ArticleID, vote.BlockID, vote.UserID)] = vote
	return nil
}

func (f *fakePollRepo) GetUserVote(_ context.Context, articleID uint64, blockID string, userID uint64) (*model.PollVote, error) {
	return f.votes[pollKey(articleID, blockID, userID)], nil
}

func (f *fakePollRepo) CountVotesByOption(_ context.Context, _ uint64, _ string) ([]repository.PollOptionCount, error) {
	return f.counts, nil
}

type fakeArticleRepo struct {
	articles map[uint64]*model.Article
}

func (f *fakeArticleRepo) CreateArticle(_ context.Context, _ *model.Article) error { return nil }
func (f *fakeArticleRepo) GetArticle(_ context.Context, id uint64) (*model.Article, error) {
	return f.articles[id], nil
}
func (f *fakeArticleRepo) GetArticleByEditionNo(_ context.Context, _ int) (*model.Article, error) {
	return nil, nil
}
func (f *fakeArticleRepo) GetArticlesByIDs(_ context.Context, _ []uint64) ([]*model.Article, error) {
	return nil, nil
}
func (f *fakeArticleRepo) UpdateArticle(_ context.Context, _ *model.Article) error { return nil }
func (f *fakeArticleRepo) PublishArticle(_ context.Context, _ uint64) error        { return nil }
func (f *fakeArticleRepo) ListPublished(_ context.Context, _, _ int) ([]*model.Article, error) {
	return nil, nil
}
func (f *fakeArticleRepo) GetPrevNext(_ context.Context, _ int) (*model.Article, *model.Article, error) {
	return nil, nil, nil
}
func (f *fakeArticleRepo) IncrementCounters(_ context.Context, _ uint64, _, _ int64) error {
	return nil
}

func publishedArticle(id uint64) *model.Article {
	return &model.Article{ID: id, Status: consts.ArticleStatusPublished}
}

func TestPollVoteOncePerBlock(t *testing.T) {
	pollRepo := &fakePollRepo{}
	articleRepo := &fakeArticleRepo{articles: map[uint64]*model.Article{10: publishedArticle(10)}}
	svc := NewPollService(pollRepo, articleRepo)

	vote := &model.PollVote{ArticleID: 10, BlockID: "poll-1", UserID: 5, OptionIdx: 2}
	ctx := context.Background()

	if err := svc.Vote(ctx, 5, voteDTO(vote)); err != nil {
		t.Fatalf("first vote: %v", err)
	}

	err := svc.Vote(ctx, 5, voteDTO(vote))
	if !errors.Is(err, ErrActionDuplicate) {
		t.Errorf("second vote: got %v, want ErrActionDuplicate", err)
	}

	// 另一个投票块可以再投
	other := &model.PollVote{ArticleID: 10, BlockID: "poll-2", UserID: 5, OptionIdx: 0}
	if err := svc.Vote(ctx, 5, voteDTO(other)); err != nil {
		t.Errorf("vote on another block: %v", err)
	}
}

func TestPollVoteRequiresPublishedArticle(t *testing.T) {
	pollRepo := &fakePollRepo{}
	articleRepo := &fakeArticleRepo{articles: map[uint64]*model.Article{
		20: {ID: 20, Status: consts.ArticleStatusDraft},
	}}
	svc := NewPollService(pollRepo, articleRepo)

	vote := &model.PollVote{ArticleID: 20, BlockID: "poll-1", OptionIdx: 0}
	if err := svc.Vote(context.Background(), 5, voteDTO(vote)); !errors.Is(err, ErrArticleNotFound) {
		t.Errorf("draft article: got %v, want ErrArticleNotFound", err)
	}

	vote.ArticleID = 99
	if err := svc.Vote(context.Background(), 5, voteDTO(vote)); !errors.Is(err, ErrArticleNotFound) {
		t.Errorf("missing article: got %v, want ErrArticleNotFound", err)
	}
}

func TestPollResultsTally(t *testing.T) {
	pollRepo := &fakePollRepo{
		counts: []repository.PollOptionCount{
			{OptionIdx: 0, Count: 12},
			{OptionIdx: 1, Count: 30},
			{OptionIdx: 3, Count: 8},
		},
	}
	pollRepo.votes = map[string]*model.PollVote{
		pollKey(10, "poll-1", 5): {ArticleID: 10, BlockID: "poll-1", UserID: 5, OptionIdx: 1},
	}
	svc := NewPollService(pollRepo, &fakeArticleRepo{})

	results, err := svc.GetResults(context.Background(), 5, 10, "poll-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if results.Total != 50 {
		t.Errorf("total = %d, want 50", results.Total)
	}
	if len(results.Results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results.Results))
	}
	if results.Results[1].OptionIdx != 1 || results.Results[1].Count != 30 {
		t.Errorf("option 1 = %+v", results.Results[1])
	}
	if results.MyVote == nil || *results.MyVote != 1 {
		t.Errorf("my vote = %v, want 1", results.MyVote)
	}

	// 未登录时不带本人选项
	anon, err := svc.GetResults(context.Background(), 0, 10, "poll-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if anon.MyVote != nil {
		t.Errorf("anonymous my vote = %v, want nil", anon.MyVote)
	}
}
