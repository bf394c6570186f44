package rollup

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultPageSize 目录分页默认大小
const DefaultPageSize = 200

// Item 目录枚举出的一篇已发布文章
type Item struct {
	ID     uint64
	Totals Totals
}

// Catalog 已发布文章的分页迭代来源
type Catalog interface {
	ListPublished(ctx context.Context, limit, offset int) ([]Item, error)
}

// SnapshotSource 按 (article, day) 读取历史快照，缺失时返回 nil
type SnapshotSource interface {
	GetTotals(ctx context.Context, articleID uint64, day string) (*Totals, error)
}

// Summary 单次运行的结果
type Summary struct {
	Updated   int    `json:"updated"`
	Today     string `json:"today"`
	Batches   int    `json:"batches"`
	Staged    int    `json:"staged"`
	Committed int    `json:"committed"`
}

// Engine 统计汇总引擎。单次无状态运行：枚举已发布文章，
// 写当日快照，对照 7/30 天前快照计算增量并写回派生字段，
// 全部写操作经 BatchAccumulator 分批提交。
type Engine struct {
	catalog   Catalog
	snapshots SnapshotSource
	committer Committer
	threshold int
	pageSize  int

	// Now 供测试固定参考时刻
	Now func() time.Time
}

func NewEngine(catalog Catalog, snapshots SnapshotSource, committer Committer, threshold, pageSize int) *Engine {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Engine{
		catalog:   catalog,
		snapshots: snapshots,
		committer: committer,
		threshold: threshold,
		pageSize:  pageSize,
		Now:       time.Now,
	}
}

// Run 执行一次完整汇总。中途失败时已提交批次保留，调用方直接重跑即可。
func (e *Engine) Run(ctx context.Context) (*Summary, error) {
	keys := NewKeys(e.Now())
	acc := NewBatchAccumulator(e.committer, e.threshold)

	updated := 0
	for offset := 0; ; offset += e.pageSize {
		items, err := e.catalog.ListPublished(ctx, e.pageSize, offset)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			break
		}

		for _, item := range items {
			if err := e.rollOne(ctx, acc, keys, item); err != nil {
				return nil, err
			}
			updated++
		}

		if len(items) < e.pageSize {
			break
		}
	}

	if err := acc.Drain(ctx); err != nil {
		return nil, err
	}

	batches, committed := acc.Stats()
	return &Summary{
		Updated:   updated,
		Today:     keys.Today,
		Batches:   batches,
		Staged:    updated * 2,
		Committed: committed,
	}, nil
}

func (e *Engine) rollOne(ctx context.Context, acc *BatchAccumulator, keys Keys, item Item) error {
	// 两个基线读互不依赖，并发获取
	var base7, base30 *Totals
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := e.snapshots.GetTotals(gctx, item.ID, keys.Day7)
		base7 = t
		return err
	})
	g.Go(func() error {
		t, err := e.snapshots.GetTotals(gctx, item.ID, keys.Day30)
		base30 = t
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	deltas := ComputeDeltas(item.Totals, base7, base30)

	return acc.Stage(ctx,
		SnapshotUpsert{ArticleID: item.ID, Day: keys.Today, Totals: item.Totals},
		ArticleDeltaUpdate{ArticleID: item.ID, Deltas: deltas},
	)
}
