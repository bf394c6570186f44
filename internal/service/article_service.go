package service

import (
	"Masthead/internal/api/dto"
	"Masthead/internal/model"
	"Masthead/internal/pkg/consts"
	"Masthead/internal/pkg/es"
	"Masthead/internal/pkg/redis"
	"Masthead/internal/pkg/util"
	"Masthead/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
)

type ArticleService interface {
	CreateArticle(ctx context.Context, authorID uint64, articleDTO *dto.ArticleBaseDTO) (*dto.ArticleDTO, error)
	UpdateArticle(ctx context.Context, articleID uint64, articleDTO *dto.ArticleBaseDTO) error
	PublishArticle(ctx context.Context, articleID uint64) error
	GetArticleByEditionNo(ctx context.Context, editionNo int) (*dto.ArticleWithNavDTO, error)
	ListHome(ctx context.Context, page, pageSize int) (*dto.ArticleListDTO, error)
	SearchArticles(ctx context.Context, keyword string, page, pageSize int) (*dto.SearchResultDTO, error)
	TrackView(ctx context.Context, articleID uint64) error
	TrackLike(ctx context.Context, articleID uint64) error
}

type articleServiceImpl struct {
	articleRepo repository.ArticleRepo
	articleES   es.ArticleRepo
}

func NewArticleService(articleRepo repository.ArticleRepo, articleES es.ArticleRepo) ArticleService {
	return &articleServiceImpl{
		articleRepo: articleRepo,
		articleES:   articleES,
	}
}

// CreateArticle 新建草稿
func (s *articleServiceImpl) CreateArticle(ctx context.Context, authorID uint64, articleDTO *dto.ArticleBaseDTO) (*dto.ArticleDTO, error) {
	exist, err := s.articleRepo.GetArticleByEditionNo(ctx, articleDTO.EditionNo)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrEditionNoExist
	}

	article := &model.Article{}
	if err := copier.Copy(article, articleDTO); err != nil {
		return nil, err
	}
	article.ID = 0
	article.AuthorID = authorID
	article.Status = consts.ArticleStatusDraft

	if err := s.articleRepo.CreateArticle(ctx, article); err != nil {
		return nil, err
	}
	return toArticleDTO(article), nil
}

// UpdateArticle 更新草稿或已发布文章的内容
func (s *articleServiceImpl) UpdateArticle(ctx context.Context, articleID uint64, articleDTO *dto.ArticleBaseDTO) error {
	article, err := s.articleRepo.GetArticle(ctx, articleID)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrArticleNotFound
	}

	if articleDTO.EditionNo != article.EditionNo {
		exist, err := s.articleRepo.GetArticleByEditionNo(ctx, articleDTO.EditionNo)
		if err != nil {
			return err
		}
		if exist != nil && exist.ID != article.ID {
			return ErrEditionNoExist
		}
	}

	if err := copier.Copy(article, articleDTO); err != nil {
		return err
	}
	article.ID = articleID
	if err := s.articleRepo.UpdateArticle(ctx, article); err != nil {
		return err
	}

	// 已发布文章内容变更后同步搜索索引
	if article.Status == consts.ArticleStatusPublished {
		s.indexArticle(ctx, article)
	}
	return nil
}

// PublishArticle 发布文章并写入搜索索引
func (s *articleServiceImpl) PublishArticle(ctx context.Context, articleID uint64) error {
	article, err := s.articleRepo.GetArticle(ctx, articleID)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrArticleNotFound
	}
	if article.Status == consts.ArticleStatusPublished {
		return ErrActionDuplicate
	}

	if err := s.articleRepo.PublishArticle(ctx, articleID); err != nil {
		return err
	}

	article.Status = consts.ArticleStatusPublished
	now := time.Now()
	article.PublishedAt = &now
	s.indexArticle(ctx, article)
	return nil
}

// GetArticleByEditionNo 按期号取文章及前后期导航
func (s *articleServiceImpl) GetArticleByEditionNo(ctx context.Context, editionNo int) (*dto.ArticleWithNavDTO, error) {
	article, err := s.articleRepo.GetArticleByEditionNo(ctx, editionNo)
	if err != nil {
		return nil, err
	}
	if article == nil || article.Status != consts.ArticleStatusPublished {
		return nil, ErrArticleNotFound
	}

	prev, next, err := s.articleRepo.GetPrevNext(ctx, editionNo)
	if err != nil {
		return nil, err
	}

	out := &dto.ArticleWithNavDTO{Article: toArticleDTO(article)}
	if prev != nil {
		out.Prev = toArticleBriefDTO(prev)
	}
	if next != nil {
		out.Next = toArticleBriefDTO(next)
	}
	return out, nil
}

// ListHome 首页列表，按期号来源的 ID 顺序分页
func (s *articleServiceImpl) ListHome(ctx context.Context, page, pageSize int) (*dto.ArticleListDTO, error) {
	articles, err := s.articleRepo.ListPublished(ctx, pageSize+1, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	hasMore := false
	if len(articles) > pageSize {
		hasMore = true
		articles = articles[:pageSize]
	}

	list := make([]*dto.ArticleBriefDTO, len(articles))
	for i, article := range articles {
		list[i] = toArticleBriefDTO(article)
	}
	return &dto.ArticleListDTO{List: list, HasMore: hasMore}, nil
}

// SearchArticles 全文检索已发布文章
func (s *articleServiceImpl) SearchArticles(ctx context.Context, keyword string, page, pageSize int) (*dto.SearchResultDTO, error) {
	from := (page - 1) * pageSize
	if from >= es.MaxSearchDepth {
		return &dto.SearchResultDTO{List: []*dto.ArticleBriefDTO{}, HasMore: false}, nil
	}

	docs, err := s.articleES.SearchArticles(ctx, keyword, from, pageSize+1)
	if err != nil {
		return nil, err
	}

	hasMore := false
	if len(docs) > pageSize {
		hasMore = true
		docs = docs[:pageSize]
	}

	list := make([]*dto.ArticleBriefDTO, len(docs))
	for i, doc := range docs {
		publishedAt := doc.PublishedAt
		list[i] = &dto.ArticleBriefDTO{
			ID:          doc.ID,
			EditionNo:   doc.EditionNo,
			Title:       doc.Title,
			Subtitle:    doc.Subtitle,
			CoverURL:    doc.CoverURL,
			PublishedAt: &publishedAt,
		}
	}
	return &dto.SearchResultDTO{List: list, HasMore: hasMore}, nil
}

// TrackView 浏览计数先落 Redis，由后台任务批量刷回数据库
func (s *articleServiceImpl) TrackView(ctx context.Context, articleID uint64) error {
	idStr := strconv.FormatUint(articleID, 10)
	if err := redis.IncrBy(ctx, consts.ArticleViewKey+idStr, 1); err != nil {
		return err
	}
	return redis.SAdd(ctx, consts.ArticleDirtyKey, articleID)
}

// TrackLike 点赞计数，落法同浏览
func (s *articleServiceImpl) TrackLike(ctx context.Context, articleID uint64) error {
	idStr := strconv.FormatUint(articleID, 10)
	if err := redis.IncrBy(ctx, consts.ArticleLikeKey+idStr, 1); err != nil {
		return err
	}
	return redis.SAdd(ctx, consts.ArticleDirtyKey, articleID)
}

func (s *articleServiceImpl) indexArticle(ctx context.Context, article *model.Article) {
	doc := &es.ArticleES{
		ID:        article.ID,
		EditionNo: article.EditionNo,
		Status:    article.Status,
		Title:     article.Title,
		Subtitle:  article.Subtitle,
		PlainBody: util.ExtractPlainText(article.Body),
		CoverURL:  article.CoverURL,
		UpdatedAt: article.UpdatedAt,
	}
	if article.PublishedAt != nil {
		doc.PublishedAt = *article.PublishedAt
	}
	if err := s.articleES.IndexArticle(ctx, doc); err != nil {
		log.ErrorContext(ctx, "index article failed", "article_id", article.ID, "err", err)
	}
}

func toArticleDTO(article *model.Article) *dto.ArticleDTO {
	out := &dto.ArticleDTO{}
	_ = copier.Copy(out, article)
	return out
}

func toArticleBriefDTO(article *model.Article) *dto.ArticleBriefDTO {
	out := &dto.ArticleBriefDTO{}
	_ = copier.Copy(out, article)
	return out
}
