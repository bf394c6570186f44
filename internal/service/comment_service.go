package service

import (
	"Masthead/internal/api/dto"
	"Masthead/internal/model"
	"Masthead/internal/pkg/consts"
	"Masthead/internal/repository"
	"context"
)

type CommentService interface {
	CreateComment(ctx context.Context, userID uint64, commentDTO *dto.CommentBaseDTO) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, userID uint64, isAdmin bool, commentID uint64) error
	ListComments(ctx context.Context, articleID uint64, page, pageSize int) ([]*dto.CommentDTO, error)
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	articleRepo repository.ArticleRepo
}

func NewCommentService(commentRepo repository.CommentRepo, articleRepo repository.ArticleRepo) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
	}
}

// CreateComment 仅允许对已发布文章评论
func (s *commentServiceImpl) CreateComment(ctx context.Context, userID uint64, commentDTO *dto.CommentBaseDTO) (*dto.CommentDTO, error) {
	article, err := s.articleRepo.GetArticle(ctx, commentDTO.ArticleID)
	if err != nil {
		return nil, err
	}
	if article == nil || article.Status != consts.ArticleStatusPublished {
		return nil, ErrArticleNotFound
	}

	comment := &model.Comment{
		ArticleID: commentDTO.ArticleID,
		UserID:    userID,
		Content:   commentDTO.Content,
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return toCommentDTO(comment), nil
}

// DeleteComment 本人或管理员可删
func (s *commentServiceImpl) DeleteComment(ctx context.Context, userID uint64, isAdmin bool, commentID uint64) error {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != userID && !isAdmin {
		return UnauthorizedError
	}
	return s.commentRepo.DeleteComment(ctx, commentID)
}

func (s *commentServiceImpl) ListComments(ctx context.Context, articleID uint64, page, pageSize int) ([]*dto.CommentDTO, error) {
	comments, err := s.commentRepo.GetCommentsByArticleID(ctx, articleID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CommentDTO, len(comments))
	for i, comment := range comments {
		out[i] = toCommentDTO(comment)
	}
	return out, nil
}

func toCommentDTO(comment *model.Comment) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:        comment.ID,
		ArticleID: comment.ArticleID,
		UserID:    comment.UserID,
		Nickname:  comment.User.Nickname,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}
