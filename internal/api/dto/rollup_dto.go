package dto

import "time"

// RollupResultDTO 汇总接口响应，字段形状对外部调用方保持稳定
type RollupResultDTO struct {
	Ok      bool   `json:"ok"`
	Updated int    `json:"updated,omitempty"`
	Today   string `json:"today,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RollupRunDTO 单次汇总运行的审计记录
type RollupRunDTO struct {
	Today     string    `json:"today"`
	Trigger   string    `json:"trigger"`
	Attempted int       `json:"attempted"`
	Staged    int       `json:"staged"`
	Committed int       `json:"committed"`
	Batches   int       `json:"batches"`
	Pruned    int64     `json:"pruned"`
	Error     string    `json:"error,omitempty"`
	Duration  string    `json:"duration"`
	StartedAt time.Time `json:"started_at"`
}
