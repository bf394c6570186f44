package repository

import (
	"Masthead/internal/model"
	"Masthead/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ArticleRepo interface {
	CreateArticle(ctx context.Context, article *model.Article) error
	GetArticle(ctx context.Context, id uint64) (*model.Article, error)
	GetArticleByEditionNo(ctx context.Context, editionNo int) (*model.Article, error)
	GetArticlesByIDs(ctx context.Context, ids []uint64) ([]*model.Article, error)
	UpdateArticle(ctx context.Context, article *model.Article) error
	PublishArticle(ctx context.Context, id uint64) error
	ListPublished(ctx context.Context, limit, offset int) ([]*model.Article, error)
	GetPrevNext(ctx context.Context, editionNo int) (prev *model.Article, next *model.Article, err error)
	IncrementCounters(ctx context.Context, id uint64, views, likes int64) error
}

type ArticleRepoImpl struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepo {
	return &ArticleRepoImpl{db: db}
}

func (s *ArticleRepoImpl) CreateArticle(ctx context.Context, article *model.Article) error {
	return s.db.WithContext(ctx).Create(article).Error
}

func (s *ArticleRepoImpl) GetArticle(ctx context.Context, id uint64) (*model.Article, error) {
	var article model.Article
	err := s.db.WithContext(ctx).First(&article, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (s *ArticleRepoImpl) GetArticleByEditionNo(ctx context.Context, editionNo int) (*model.Article, error) {
	var article model.Article
	err := s.db.WithContext(ctx).
		Where("edition_no = ?", editionNo).
		First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (s *ArticleRepoImpl) GetArticlesByIDs(ctx context.Context, ids []uint64) ([]*model.Article, error) {
	articles := make([]*model.Article, 0, len(ids))
	if len(ids) == 0 {
		return articles, nil
	}
	err := s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *ArticleRepoImpl) UpdateArticle(ctx context.Context, article *model.Article) error {
	return s.db.WithContext(ctx).Updates(article).Error
}

// PublishArticle 将草稿置为已发布，发布后即进入统计汇总的枚举范围
func (s *ArticleRepoImpl) PublishArticle(ctx context.Context, id uint64) error {
	now := time.Now()
	return s.db.WithContext(ctx).Model(&model.Article{}).
		Where("id = ? AND status = ?", id, consts.ArticleStatusDraft).
		Updates(map[string]interface{}{
			"status":       consts.ArticleStatusPublished,
			"published_at": now,
		}).Error
}

// ListPublished 分页枚举已发布文章，按 ID 排序保证翻页稳定
func (s *ArticleRepoImpl) ListPublished(ctx context.Context, limit, offset int) ([]*model.Article, error) {
	articles := make([]*model.Article, 0, limit)
	err := s.db.WithContext(ctx).
		Where("status = ?", consts.ArticleStatusPublished).
		Order("id ASC").
		Limit(limit).Offset(offset).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// GetPrevNext 取相邻期号的前后两篇已发布文章
func (s *ArticleRepoImpl) GetPrevNext(ctx context.Context, editionNo int) (*model.Article, *model.Article, error) {
	var prev, next model.Article

	err := s.db.WithContext(ctx).
		Where("status = ? AND edition_no < ?", consts.ArticleStatusPublished, editionNo).
		Order("edition_no DESC").
		First(&prev).Error
	prevPtr := &prev
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, err
		}
		prevPtr = nil
	}

	err = s.db.WithContext(ctx).
		Where("status = ? AND edition_no > ?", consts.ArticleStatusPublished, editionNo).
		Order("edition_no ASC").
		First(&next).Error
	nextPtr := &next
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, err
		}
		nextPtr = nil
	}

	return prevPtr, nextPtr, nil
}

// IncrementCounters 将暂存于 Redis 的增量累加到累计计数
func (s *ArticleRepoImpl) IncrementCounters(ctx context.Context, id uint64, views, likes int64) error {
	updates := map[string]interface{}{}
	if views != 0 {
		updates["total_views"] = gorm.Expr("total_views + ?", views)
	}
	if likes != 0 {
		updates["total_likes"] = gorm.Expr("total_likes + ?", likes)
	}
	if len(updates) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Model(&model.Article{}).
		Where("id = ?", id).
		Updates(updates).Error
}
