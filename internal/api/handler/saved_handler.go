package handler

import (
	"Masthead/internal/pkg/response"
	"Masthead/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SavedHandler struct {
	savedSvc service.SavedService
}

func NewSavedHandler(savedSvc service.SavedService) *SavedHandler {
	return &SavedHandler{
		savedSvc: savedSvc,
	}
}

func (s *SavedHandler) SaveArticle(c *gin.Context) {
	userID := c.GetUint64("user_id")

	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.savedSvc.SaveArticle(c.Request.Context(), userID, articleID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *SavedHandler) UnsaveArticle(c *gin.Context) {
	userID := c.GetUint64("user_id")

	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.savedSvc.UnsaveArticle(c.Request.Context(), userID, articleID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *SavedHandler) ListSaved(c *gin.Context) {
	userID := c.GetUint64("user_id")
	page, pageSize := parsePaging(c)

	list, err := s.savedSvc.ListSaved(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, list)
}
