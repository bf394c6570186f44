package rollup

import (
	"context"
	"errors"
	"testing"
)

type recordingCommitter struct {
	batchSizes []int
	failAfter  int // 第 N 次提交开始返回错误；0 表示不失败
}

func (c *recordingCommitter) CommitBatch(_ context.Context, ops []Op) error {
	if c.failAfter > 0 && len(c.batchSizes)+1 >= c.failAfter {
		return errors.New("commit failed")
	}
	c.batchSizes = append(c.batchSizes, len(ops))
	return nil
}

func TestBatchAccumulator_AutoFlushAtThreshold(t *testing.T) {
	committer := &recordingCommitter{}
	acc := NewBatchAccumulator(committer, 4)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		err := acc.Stage(ctx,
			SnapshotUpsert{ArticleID: uint64(i), Day: "20260828"},
			ArticleDeltaUpdate{ArticleID: uint64(i)},
		)
		if err != nil {
			t.Fatalf("Stage() error = %v", err)
		}
	}
	if err := acc.Drain(ctx); err != nil {
		t.Fatalf("Drain() error = %v", err)
	}

	// 10 条操作、阈值 4：两满批 + 一个尾批
	want := []int{4, 4, 2}
	if len(committer.batchSizes) != len(want) {
		t.Fatalf("batches = %v, want %v", committer.batchSizes, want)
	}
	for i, size := range committer.batchSizes {
		if size != want[i] {
			t.Errorf("batch %d size = %d, want %d", i, size, want[i])
		}
	}

	batches, committed := acc.Stats()
	if batches != 3 || committed != 10 {
		t.Errorf("Stats() = (%d, %d), want (3, 10)", batches, committed)
	}
}

func TestBatchAccumulator_NeverExceedsThreshold(t *testing.T) {
	for _, n := range []int{0, 1, 3, 225, 226, 1000} {
		committer := &recordingCommitter{}
		acc := NewBatchAccumulator(committer, DefaultBatchThreshold)

		ctx := context.Background()
		for i := 0; i < n; i++ {
			err := acc.Stage(ctx,
				SnapshotUpsert{ArticleID: uint64(i), Day: "20260828"},
				ArticleDeltaUpdate{ArticleID: uint64(i)},
			)
			if err != nil {
				t.Fatalf("Stage() error = %v", err)
			}
		}
		if err := acc.Drain(ctx); err != nil {
			t.Fatalf("Drain() error = %v", err)
		}

		total := 0
		for _, size := range committer.batchSizes {
			if size > DefaultBatchThreshold {
				t.Errorf("n=%d: batch size %d exceeds threshold", n, size)
			}
			total += size
		}
		if total != 2*n {
			t.Errorf("n=%d: committed ops = %d, want %d", n, total, 2*n)
		}
	}
}

func TestBatchAccumulator_DrainOnEmptyIsNoop(t *testing.T) {
	committer := &recordingCommitter{}
	acc := NewBatchAccumulator(committer, 4)

	if err := acc.Drain(context.Background()); err != nil {
		t.Fatalf("Drain() error = %v", err)
	}
	if len(committer.batchSizes) != 0 {
		t.Errorf("empty drain committed %v", committer.batchSizes)
	}
}

func TestBatchAccumulator_CommitFailurePropagates(t *testing.T) {
	committer := &recordingCommitter{failAfter: 2}
	acc := NewBatchAccumulator(committer, 2)

	ctx := context.Background()
	if err := acc.Stage(ctx, SnapshotUpsert{ArticleID: 1}, ArticleDeltaUpdate{ArticleID: 1}); err != nil {
		t.Fatalf("first batch should commit, got %v", err)
	}

	err := acc.Stage(ctx, SnapshotUpsert{ArticleID: 2}, ArticleDeltaUpdate{ArticleID: 2})
	if err == nil {
		t.Fatal("expected commit error to propagate from Stage()")
	}

	// 第一批已提交的进度保留
	_, committed := acc.Stats()
	if committed != 2 {
		t.Errorf("committed = %d, want 2", committed)
	}
}
