package handler

import (
	"Masthead/internal/api/dto"
	"Masthead/internal/pkg/response"
	"Masthead/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleSvc service.ArticleService
}

func NewArticleHandler(articleSvc service.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		articleSvc: articleSvc,
	}
}

func (s *ArticleHandler) CreateArticle(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.ArticleBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	article, err := s.articleSvc.CreateArticle(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, article)
}

func (s *ArticleHandler) UpdateArticle(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.ArticleBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.articleSvc.UpdateArticle(c.Request.Context(), articleID, &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *ArticleHandler) PublishArticle(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.articleSvc.PublishArticle(c.Request.Context(), articleID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *ArticleHandler) GetArticleByEditionNo(c *gin.Context) {
	editionNo, err := strconv.Atoi(c.Param("edition_no"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	article, err := s.articleSvc.GetArticleByEditionNo(c.Request.Context(), editionNo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, article)
}

func (s *ArticleHandler) ListHome(c *gin.Context) {
	page, pageSize := parsePaging(c)

	list, err := s.articleSvc.ListHome(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, list)
}

func (s *ArticleHandler) SearchArticles(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, pageSize := parsePaging(c)

	result, err := s.articleSvc.SearchArticles(c.Request.Context(), keyword, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

func (s *ArticleHandler) TrackView(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.articleSvc.TrackView(c.Request.Context(), articleID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *ArticleHandler) TrackLike(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.articleSvc.TrackLike(c.Request.Context(), articleID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func parsePaging(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
