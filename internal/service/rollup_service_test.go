package service

import (
	"Masthead/internal/pkg/consts"
	"Masthead/internal/pkg/mongo"
	"Masthead/internal/pkg/redis"
	"Masthead/internal/rollup"
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

type stubCatalog struct {
	items []rollup.Item
}

func (c *stubCatalog) ListPublished(ctx context.Context, limit, offset int) ([]rollup.Item, error) {
	if offset > 0 {
		return nil, nil
	}
	return c.items, nil
}

type stubSnapshots struct{}

func (stubSnapshots) GetTotals(ctx context.Context, articleID uint64, day string) (*rollup.Totals, error) {
	return nil, nil
}

// cancelingCommitter 在首次提交时取消调用方上下文，模拟请求方中途断开
type cancelingCommitter struct {
	cancel context.CancelFunc
	ops    int
}

func (c *cancelingCommitter) CommitBatch(ctx context.Context, ops []rollup.Op) error {
	c.ops += len(ops)
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	return nil
}

type memRunRepo struct {
	runs []*mongo.RollupRunModel
}

func (r *memRunRepo) CreateRun(ctx context.Context, run *mongo.RollupRunModel) error {
	r.runs = append(r.runs, run)
	return nil
}

func (r *memRunRepo) GetRecentRuns(ctx context.Context, limit, offset int64) ([]*mongo.RollupRunModel, error) {
	return r.runs, nil
}

func setupLockRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	old := redis.Rdb
	redis.Rdb = goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		redis.Rdb.Close()
		redis.Rdb = old
	})
	return mr
}

func newTestRollupService(committer rollup.Committer, runRepo mongo.RollupRunRepo) RollupService {
	catalog := &stubCatalog{items: []rollup.Item{
		{ID: 1, Totals: rollup.Totals{Views: 10, Likes: 2}},
		{ID: 2, Totals: rollup.Totals{Views: 40, Likes: 5}},
	}}
	engine := rollup.NewEngine(catalog, stubSnapshots{}, committer, rollup.DefaultBatchThreshold, 0)
	return NewRollupService(engine, nil, runRepo, 0)
}

func TestRunRollupAcquiresFreeLock(t *testing.T) {
	mr := setupLockRedis(t)
	runRepo := &memRunRepo{}
	svc := newTestRollupService(&cancelingCommitter{}, runRepo)

	summary, err := svc.RunRollup(context.Background(), "http")
	if err != nil {
		t.Fatalf("RunRollup: %v", err)
	}
	if summary.Updated != 2 || summary.Committed != 4 {
		t.Fatalf("summary = %+v, want 2 updated / 4 committed", summary)
	}
	if mr.Exists(consts.RollupRunLock) {
		t.Fatal("run lock still held after completion")
	}
	if len(runRepo.runs) != 1 || runRepo.runs[0].Trigger != "http" {
		t.Fatalf("run record = %+v, want one http-triggered run", runRepo.runs)
	}
}

func TestRunRollupRejectsConcurrentRun(t *testing.T) {
	mr := setupLockRedis(t)
	if err := mr.Set(consts.RollupRunLock, "other-instance"); err != nil {
		t.Fatalf("seed lock: %v", err)
	}
	svc := newTestRollupService(&cancelingCommitter{}, &memRunRepo{})

	_, err := svc.RunRollup(context.Background(), "http")
	if !errors.Is(err, ErrRollupInProgress) {
		t.Fatalf("err = %v, want ErrRollupInProgress", err)
	}
	if got, _ := mr.Get(consts.RollupRunLock); got != "other-instance" {
		t.Fatalf("lock value = %q, foreign lock must stay untouched", got)
	}
}

func TestRunRollupReleasesLockAfterCallerGone(t *testing.T) {
	mr := setupLockRedis(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	committer := &cancelingCommitter{cancel: cancel}
	svc := newTestRollupService(committer, &memRunRepo{})

	summary, err := svc.RunRollup(ctx, "cron")
	if err != nil {
		t.Fatalf("RunRollup: %v", err)
	}
	if summary.Committed != committer.ops {
		t.Fatalf("committed = %d, want %d", summary.Committed, committer.ops)
	}
	if mr.Exists(consts.RollupRunLock) {
		t.Fatal("run lock must be released even after the caller context is canceled")
	}
}
