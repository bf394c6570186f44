package service

import (
	"Masthead/internal/api/dto"
	"Masthead/internal/model"
	"Masthead/internal/pkg/consts"
	"Masthead/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type SavedService interface {
	SaveArticle(ctx context.Context, userID, articleID uint64) error
	UnsaveArticle(ctx context.Context, userID, articleID uint64) error
	ListSaved(ctx context.Context, userID uint64, page, pageSize int) (*dto.ArticleListDTO, error)
}

type savedServiceImpl struct {
	savedRepo   repository.SavedRepo
	articleRepo repository.ArticleRepo
}

func NewSavedService(savedRepo repository.SavedRepo, articleRepo repository.ArticleRepo) SavedService {
	return &savedServiceImpl{
		savedRepo:   savedRepo,
		articleRepo: articleRepo,
	}
}

func (s *savedServiceImpl) SaveArticle(ctx context.Context, userID, articleID uint64) error {
	article, err := s.articleRepo.GetArticle(ctx, articleID)
	if err != nil {
		return err
	}
	if article == nil || article.Status != consts.ArticleStatusPublished {
		return ErrArticleNotFound
	}

	exist, err := s.savedRepo.CheckSavedExists(ctx, userID, articleID)
	if err != nil {
		return err
	}
	if exist {
		return ErrActionDuplicate
	}

	return s.savedRepo.CreateSaved(ctx, &model.SavedArticle{
		UserID:    userID,
		ArticleID: articleID,
	})
}

func (s *savedServiceImpl) UnsaveArticle(ctx context.Context, userID, articleID uint64) error {
	return s.savedRepo.DeleteSaved(ctx, userID, articleID)
}

// ListSaved 收藏列表，按收藏时间倒序
func (s *savedServiceImpl) ListSaved(ctx context.Context, userID uint64, page, pageSize int) (*dto.ArticleListDTO, error) {
	ids, err := s.savedRepo.GetSavedArticleIDs(ctx, userID, pageSize+1, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	hasMore := false
	if len(ids) > pageSize {
		hasMore = true
		ids = ids[:pageSize]
	}

	articles, err := s.articleRepo.GetArticlesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// IN 查询不保证顺序，按收藏顺序重排
	byID := make(map[uint64]*model.Article, len(articles))
	for _, article := range articles {
		byID[article.ID] = article
	}
	list := make([]*dto.ArticleBriefDTO, 0, len(ids))
	for _, id := range ids {
		article, ok := byID[id]
		if !ok {
			continue
		}
		brief := &dto.ArticleBriefDTO{}
		_ = copier.Copy(brief, article)
		list = append(list, brief)
	}

	return &dto.ArticleListDTO{List: list, HasMore: hasMore}, nil
}
