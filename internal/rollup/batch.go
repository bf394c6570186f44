package rollup

import (
	"context"
	"sync"
)

// DefaultBatchThreshold 低于底层存储单事务硬上限(500)的安全阈值
const DefaultBatchThreshold = 450

// Op 一条待提交的写操作
type Op interface {
	rollupOp()
}

// SnapshotUpsert 以 (article, day) 为键覆盖写入当日快照
type SnapshotUpsert struct {
	ArticleID uint64
	Day       string
	Totals    Totals
}

// ArticleDeltaUpdate 整体覆盖文章的四个派生字段
type ArticleDeltaUpdate struct {
	ArticleID uint64
	Deltas    Deltas
}

func (SnapshotUpsert) rollupOp()     {}
func (ArticleDeltaUpdate) rollupOp() {}

// Committer 在单个事务内应用一批操作
type Committer interface {
	CommitBatch(ctx context.Context, ops []Op) error
}

// BatchAccumulator 聚集写操作，达到阈值时自动提交。
// 提交失败向上传播；已提交的批次不回滚，重跑是安全的（快照按日幂等）。
type BatchAccumulator struct {
	mu        sync.Mutex
	committer Committer
	threshold int
	ops       []Op
	batches   int
	committed int
}

func NewBatchAccumulator(committer Committer, threshold int) *BatchAccumulator {
	if threshold <= 0 {
		threshold = DefaultBatchThreshold
	}
	return &BatchAccumulator{
		committer: committer,
		threshold: threshold,
		ops:       make([]Op, 0, threshold),
	}
}

// Stage 暂存写操作，每追加一条即检查阈值，单批永不超限
func (b *BatchAccumulator) Stage(ctx context.Context, ops ...Op) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, op := range ops {
		b.ops = append(b.ops, op)
		if len(b.ops) >= b.threshold {
			if err := b.flushLocked(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

// Drain 提交剩余的不满批次
func (b *BatchAccumulator) Drain(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.ops) == 0 {
		return nil
	}
	return b.flushLocked(ctx)
}

// Stats 返回已提交批次数与已提交操作数
func (b *BatchAccumulator) Stats() (batches, committed int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.batches, b.committed
}

func (b *BatchAccumulator) flushLocked(ctx context.Context) error {
	if err := b.committer.CommitBatch(ctx, b.ops); err != nil {
		return err
	}
	b.batches++
	b.committed += len(b.ops)
	b.ops = b.ops[:0]
	return nil
}
