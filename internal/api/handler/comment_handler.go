package handler

import (
	"Masthead/internal/api/dto"
	"Masthead/internal/pkg/consts"
	"Masthead/internal/pkg/response"
	"Masthead/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
	}
}

func (s *CommentHandler) CreateComment(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.CommentBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.commentSvc.CreateComment(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, comment)
}

func (s *CommentHandler) DeleteComment(c *gin.Context) {
	userID := c.GetUint64("user_id")

	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	isAdmin := false
	for _, role := range c.GetStringSlice("roles") {
		if role == consts.RoleAdmin {
			isAdmin = true
			break
		}
	}

	if err := s.commentSvc.DeleteComment(c.Request.Context(), userID, isAdmin, commentID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *CommentHandler) ListComments(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, pageSize := parsePaging(c)

	comments, err := s.commentSvc.ListComments(c.Request.Context(), articleID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, comments)
}
