package handler

import (
	"Masthead/internal/api/dto"
	"Masthead/internal/pkg/response"
	"Masthead/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PollHandler struct {
	pollSvc service.PollService
}

func NewPollHandler(pollSvc service.PollService) *PollHandler {
	return &PollHandler{
		pollSvc: pollSvc,
	}
}

func (s *PollHandler) Vote(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.PollVoteDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.pollSvc.Vote(c.Request.Context(), userID, &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *PollHandler) GetResults(c *gin.Context) {
	userID := c.GetUint64("user_id")

	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	blockID := c.Param("block_id")

	results, err := s.pollSvc.GetResults(c.Request.Context(), userID, articleID, blockID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, results)
}
