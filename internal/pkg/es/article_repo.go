package es

import (
	"Masthead/internal/pkg/consts"
	"context"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/goccy/go-json"
)

const MaxSearchDepth = 400

type ArticleRepo interface {
	SearchArticles(ctx context.Context, queryText string, from, size int) ([]*ArticleES, error)
	IndexArticle(ctx context.Context, article *ArticleES) error
	DeleteArticle(ctx context.Context, id uint64) error
}

type ArticleRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewArticleRepo(client *elasticsearch.TypedClient) ArticleRepo {
	return &ArticleRepoImpl{client: client}
}

// SearchArticles 对已发布文章按标题/副标题/正文做全文检索
func (s *ArticleRepoImpl) SearchArticles(ctx context.Context, queryText string, from, size int) ([]*ArticleES, error) {
	if from >= MaxSearchDepth {
		return []*ArticleES{}, nil
	}

	boolQuery := &types.BoolQuery{
		Filter: []types.Query{
			{Term: map[string]types.TermQuery{
				"status": {Value: consts.ArticleStatusPublished},
			}},
		},
		Must: []types.Query{
			{MultiMatch: &types.MultiMatchQuery{
				Query:  queryText,
				Fields: []string{"title^2", "subtitle", "plain_body"},
			}},
		},
	}

	res, err := s.client.Search().
		Index(ArticleIndex).
		From(from).
		Size(size).
		Query(&types.Query{Bool: boolQuery}).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	articles := make([]*ArticleES, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var article ArticleES
		if err := json.Unmarshal(hit.Source_, &article); err != nil {
			continue
		}
		articles = append(articles, &article)
	}
	return articles, nil
}

// IndexArticle 全量写入文章文档
func (s *ArticleRepoImpl) IndexArticle(ctx context.Context, article *ArticleES) error {
	_, err := s.client.Index(ArticleIndex).
		Id(strconv.FormatUint(article.ID, 10)).
		Document(article).
		Do(ctx)
	return err
}

func (s *ArticleRepoImpl) DeleteArticle(ctx context.Context, id uint64) error {
	_, err := s.client.Delete(ArticleIndex, strconv.FormatUint(id, 10)).Do(ctx)
	return err
}
