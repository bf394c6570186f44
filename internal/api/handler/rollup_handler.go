package handler

import (
	"Masthead/internal/api/dto"
	"Masthead/internal/pkg/response"
	"Masthead/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RollupHandler struct {
	rollupSvc service.RollupService
}

func NewRollupHandler(rollupSvc service.RollupService) *RollupHandler {
	return &RollupHandler{
		rollupSvc: rollupSvc,
	}
}

// Run 手工触发一次统计汇总。响应不走统一封装，
// 调用方（运维脚本、调度器）依赖这个固定的扁平结构。
func (s *RollupHandler) Run(c *gin.Context) {
	summary, err := s.rollupSvc.RunRollup(c.Request.Context(), "http")
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.RollupResultDTO{
			Ok:    false,
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.RollupResultDTO{
		Ok:      true,
		Updated: summary.Updated,
		Today:   summary.Today,
	})
}

// ListRuns 最近的汇总运行记录
func (s *RollupHandler) ListRuns(c *gin.Context) {
	page, pageSize := parsePaging(c)

	runs, err := s.rollupSvc.GetRecentRuns(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, runs)
}
