package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RollupRunRepo interface {
	CreateRun(ctx context.Context, run *RollupRunModel) error
	GetRecentRuns(ctx context.Context, limit, offset int64) ([]*RollupRunModel, error)
}

type rollupRunRepoImpl struct {
	col *mongo.Collection
}

func NewRollupRunRepo(db *mongo.Database) RollupRunRepo {
	return &rollupRunRepoImpl{
		col: db.Collection("rollup_runs"),
	}
}

// CreateRun 插入一条运行记录
func (s *rollupRunRepoImpl) CreateRun(ctx context.Context, run *RollupRunModel) error {
	_, err := s.col.InsertOne(ctx, run)
	return err
}

// GetRecentRuns 分页获取最近的运行记录（按开始时间倒序）
func (s *rollupRunRepoImpl) GetRecentRuns(ctx context.Context, limit, offset int64) ([]*RollupRunModel, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "started_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var list []*RollupRunModel
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}
