package job

import (
	"Masthead/internal/pkg/logger"
	"Masthead/internal/service"
	"context"
	"errors"
	log "log/slog"

	"github.com/google/uuid"
)

// RollupJob 每日统计汇总任务
type RollupJob struct {
	rollupSvc service.RollupService
}

func NewRollupJob(rollupSvc service.RollupService) *RollupJob {
	return &RollupJob{
		rollupSvc: rollupSvc,
	}
}

func (s *RollupJob) Run() {
	traceID := "job-rollup-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	_, err := s.rollupSvc.RunRollup(ctx, "cron")
	if err != nil {
		if errors.Is(err, service.ErrRollupInProgress) {
			log.WarnContext(ctx, "rollup already running, skip this tick")
			return
		}
		// 不在此处重试，失败留给下一次触发或人工补跑
		log.ErrorContext(ctx, "scheduled rollup failed", "err", err)
	}
}
