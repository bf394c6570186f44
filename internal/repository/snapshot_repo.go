package repository

import (
	"Masthead/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SnapshotRepo interface {
	SaveOrUpdateSnapshot(ctx context.Context, snapshot *model.ArticleSnapshot) error
	GetSnapshotByDay(ctx context.Context, articleID uint64, day string) (*model.ArticleSnapshot, error)
	DeleteSnapshotsBefore(ctx context.Context, day string) (int64, error)
}

type snapshotRepoImpl struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepo {
	return &snapshotRepoImpl{db: db}
}

// SaveOrUpdateSnapshot 采用 Upsert 逻辑。(article_id, snapshot_day) 已存在则覆盖计数
func (r *snapshotRepoImpl) SaveOrUpdateSnapshot(ctx context.Context, snapshot *model.ArticleSnapshot) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "article_id"}, {Name: "snapshot_day"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_views",
			"total_likes",
			"updated_at",
		}),
	}).Create(snapshot).Error
}

// GetSnapshotByDay 读取指定日键的快照，缺失时返回 nil
func (r *snapshotRepoImpl) GetSnapshotByDay(ctx context.Context, articleID uint64, day string) (*model.ArticleSnapshot, error) {
	var snapshot model.ArticleSnapshot
	err := r.db.WithContext(ctx).
		Where("article_id = ? AND snapshot_day = ?", articleID, day).
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot, nil
}

// DeleteSnapshotsBefore 删除早于给定日键的快照，返回删除行数
func (r *snapshotRepoImpl) DeleteSnapshotsBefore(ctx context.Context, day string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("snapshot_day < ?", day).
		Delete(&model.ArticleSnapshot{})
	return result.RowsAffected, result.Error
}
