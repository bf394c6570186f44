package service

import (
	"Masthead/internal/api/dto"
	"Masthead/internal/pkg/consts"
	"Masthead/internal/pkg/mongo"
	"Masthead/internal/pkg/redis"
	"Masthead/internal/repository"
	"Masthead/internal/rollup"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// rollupLockTTL 运行锁的保险过期时间，防止进程崩溃后锁悬挂
const rollupLockTTL = 30 * time.Minute

type RollupService interface {
	RunRollup(ctx context.Context, trigger string) (*rollup.Summary, error)
	GetRecentRuns(ctx context.Context, page, pageSize int) ([]*dto.RollupRunDTO, error)
}

type rollupServiceImpl struct {
	engine        *rollup.Engine
	snapshotRepo  repository.SnapshotRepo
	runRepo       mongo.RollupRunRepo
	retentionDays int
}

func NewRollupService(engine *rollup.Engine, snapshotRepo repository.SnapshotRepo, runRepo mongo.RollupRunRepo, retentionDays int) RollupService {
	return &rollupServiceImpl{
		engine:        engine,
		snapshotRepo:  snapshotRepo,
		runRepo:       runRepo,
		retentionDays: retentionDays,
	}
}

// RunRollup 执行一次统计汇总。同一时刻仅允许一个运行实例；
// 中途失败时已提交的批次保留，重跑同一天会覆盖当日快照并重算增量。
func (s *rollupServiceImpl) RunRollup(ctx context.Context, trigger string) (*rollup.Summary, error) {
	lockValue := uuid.NewString()
	ok, err := redis.TryLock(ctx, consts.RollupRunLock, lockValue, rollupLockTTL, 0)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRollupInProgress
	}
	// 请求方断开后仍要释放锁，否则锁会悬挂到 TTL 过期
	defer func() {
		unlockCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		redis.UnLock(unlockCtx, consts.RollupRunLock, lockValue)
	}()

	start := time.Now()
	log.InfoContext(ctx, "rollup run started", "trigger", trigger)

	summary, runErr := s.engine.Run(ctx)

	var pruned int64
	if runErr == nil && s.retentionDays > 0 {
		cutoff := rollup.DayKey(start.UTC().AddDate(0, 0, -s.retentionDays))
		pruned, err = s.snapshotRepo.DeleteSnapshotsBefore(ctx, cutoff)
		if err != nil {
			log.WarnContext(ctx, "snapshot prune failed", "cutoff", cutoff, "err", err)
			pruned = 0
		}
	}

	run := &mongo.RollupRunModel{
		Trigger:   trigger,
		Pruned:    pruned,
		Duration:  time.Since(start).Milliseconds(),
		StartedAt: start,
	}
	if summary != nil {
		run.Today = summary.Today
		run.Attempted = summary.Updated
		run.Staged = summary.Staged
		run.Committed = summary.Committed
		run.Batches = summary.Batches
	} else {
		run.Today = rollup.DayKey(start.UTC())
	}
	if runErr != nil {
		run.Error = runErr.Error()
	}
	if err := s.runRepo.CreateRun(ctx, run); err != nil {
		log.ErrorContext(ctx, "record rollup run failed", "err", err)
	}

	if runErr != nil {
		log.ErrorContext(ctx, "rollup run failed", "trigger", trigger, "err", runErr)
		return nil, runErr
	}

	log.InfoContext(ctx, "rollup run finished",
		"trigger", trigger,
		"today", summary.Today,
		"updated", summary.Updated,
		"batches", summary.Batches,
		"committed", summary.Committed,
		"pruned", pruned,
		"duration", time.Since(start).String(),
	)
	return summary, nil
}

// GetRecentRuns 最近的运行记录，供后台排查
func (s *rollupServiceImpl) GetRecentRuns(ctx context.Context, page, pageSize int) ([]*dto.RollupRunDTO, error) {
	runs, err := s.runRepo.GetRecentRuns(ctx, int64(pageSize), int64((page-1)*pageSize))
	if err != nil {
		return nil, err
	}

	out := make([]*dto.RollupRunDTO, len(runs))
	for i, run := range runs {
		out[i] = &dto.RollupRunDTO{
			Today:     run.Today,
			Trigger:   run.Trigger,
			Attempted: run.Attempted,
			Staged:    run.Staged,
			Committed: run.Committed,
			Batches:   run.Batches,
			Pruned:    run.Pruned,
			Error:     run.Error,
			Duration:  (time.Duration(run.Duration) * time.Millisecond).String(),
			StartedAt: run.StartedAt,
		}
	}
	return out, nil
}
