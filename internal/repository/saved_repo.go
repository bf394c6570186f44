package repository

import (
	"Masthead/internal/model"
	"context"

	"gorm.io/gorm"
)

type SavedRepo interface {
	CreateSaved(ctx context.Context, saved *model.SavedArticle) error
	DeleteSaved(ctx context.Context, userID, articleID uint64) error
	CheckSavedExists(ctx context.Context, userID, articleID uint64) (bool, error)
	GetSavedArticleIDs(ctx context.Context, userID uint64, limit, offset int) ([]uint64, error)
}

type SavedRepoImpl struct {
	db *gorm.DB
}

func NewSavedRepo(db *gorm.DB) SavedRepo {
	return &SavedRepoImpl{db}
}

func (s *SavedRepoImpl) CreateSaved(ctx context.Context, saved *model.SavedArticle) error {
	return s.db.WithContext(ctx).Create(saved).Error
}

func (s *SavedRepoImpl) DeleteSaved(ctx context.Context, userID, articleID uint64) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&model.SavedArticle{}).Error
}

func (s *SavedRepoImpl) CheckSavedExists(ctx context.Context, userID, articleID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.SavedArticle{}).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Count(&count).Error
	return count > 0, err
}

func (s *SavedRepoImpl) GetSavedArticleIDs(ctx context.Context, userID uint64, limit, offset int) ([]uint64, error) {
	var articleIDs []uint64
	err := s.db.WithContext(ctx).Model(&model.SavedArticle{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Pluck("article_id", &articleIDs).Error
	return articleIDs, err
}
