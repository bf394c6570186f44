package cron

import (
	"Masthead/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine          *cron.Cron
	rollupJob       *job.RollupJob
	counterFlushJob *job.CounterFlushJob
}

func NewCronManager(rollupJob *job.RollupJob, counterFlushJob *job.CounterFlushJob) *Manager {
	return &Manager{
		engine:          cron.New(cron.WithSeconds()),
		rollupJob:       rollupJob,
		counterFlushJob: counterFlushJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	// 每日零点做统计汇总，日键始终按 UTC 计算，与触发时区无关
	if _, err := s.engine.AddJob("@daily", s.rollupJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@every 5m", s.counterFlushJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
