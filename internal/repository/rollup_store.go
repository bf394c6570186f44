package repository

import (
	"Masthead/internal/model"
	"Masthead/internal/pkg/consts"
	"Masthead/internal/rollup"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RollupStore 将汇总引擎的目录枚举、快照读取与批量提交映射到 MySQL
type RollupStore struct {
	db *gorm.DB
}

func NewRollupStore(db *gorm.DB) *RollupStore {
	return &RollupStore{db: db}
}

var _ rollup.Catalog = (*RollupStore)(nil)
var _ rollup.SnapshotSource = (*RollupStore)(nil)
var _ rollup.Committer = (*RollupStore)(nil)

// ListPublished 仅枚举已发布文章，草稿永远不会进入汇总
func (s *RollupStore) ListPublished(ctx context.Context, limit, offset int) ([]rollup.Item, error) {
	var articles []*model.Article
	err := s.db.WithContext(ctx).
		Select("id", "total_views", "total_likes").
		Where("status = ?", consts.ArticleStatusPublished).
		Order("id ASC").
		Limit(limit).Offset(offset).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}

	items := make([]rollup.Item, 0, len(articles))
	for _, a := range articles {
		items = append(items, rollup.Item{
			ID:     a.ID,
			Totals: rollup.Totals{Views: a.TotalViews, Likes: a.TotalLikes},
		})
	}
	return items, nil
}

func (s *RollupStore) GetTotals(ctx context.Context, articleID uint64, day string) (*rollup.Totals, error) {
	var snapshot model.ArticleSnapshot
	err := s.db.WithContext(ctx).
		Where("article_id = ? AND snapshot_day = ?", articleID, day).
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rollup.Totals{Views: snapshot.TotalViews, Likes: snapshot.TotalLikes}, nil
}

// CommitBatch 在单个事务内应用一批汇总写操作
func (s *RollupStore) CommitBatch(ctx context.Context, ops []rollup.Op) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		for _, op := range ops {
			switch o := op.(type) {
			case rollup.SnapshotUpsert:
				snapshot := &model.ArticleSnapshot{
					ArticleID:   o.ArticleID,
					SnapshotDay: o.Day,
					TotalViews:  o.Totals.Views,
					TotalLikes:  o.Totals.Likes,
					UpdatedAt:   now,
				}
				err := tx.Clauses(clause.OnConflict{
					Columns: []clause.Column{{Name: "article_id"}, {Name: "snapshot_day"}},
					DoUpdates: clause.AssignmentColumns([]string{
						"total_views",
						"total_likes",
						"updated_at",
					}),
				}).Create(snapshot).Error
				if err != nil {
					return err
				}

			case rollup.ArticleDeltaUpdate:
				err := tx.Model(&model.Article{}).
					Where("id = ?", o.ArticleID).
					Updates(map[string]interface{}{
						"views_7d":          o.Deltas.Views7d,
						"likes_7d":          o.Deltas.Likes7d,
						"views_30d":         o.Deltas.Views30d,
						"likes_30d":         o.Deltas.Likes30d,
						"rollup_updated_at": now,
					}).Error
				if err != nil {
					return err
				}

			default:
				return fmt.Errorf("unknown rollup op %T", op)
			}
		}
		return nil
	})
}
