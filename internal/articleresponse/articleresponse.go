package articleresponse

import (
	"net/http"

	"github.com/SergeyParamoshkin/ncnews/internal/model"
)

// ArticleResponse is the response payload for a single Article with its
// comment count, which is serialised as a numeric string.
type ArticleResponse struct {
	Article *model.ArticleWithCount `json:"article"`
}

func NewArticleResponse(article *model.ArticleWithCount) *ArticleResponse {
	return &ArticleResponse{Article: article}
}

func (rd *ArticleResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// ArticleListResponse carries one page of articles. TotalCount is the length
// of that page and only set when the request asked for pagination.
type ArticleListResponse struct {
	Articles   []model.ArticleWithCount `json:"articles"`
	TotalCount *int                     `json:"totalCount,omitempty"`
}

func NewArticleListResponse(articles []model.ArticleWithCount, paginated bool) *ArticleListResponse {
	if articles == nil {
		articles = []model.ArticleWithCount{}
	}

	resp := &ArticleListResponse{Articles: articles}
	if paginated {
		n := len(articles)
		resp.TotalCount = &n
	}

	return resp
}

func (rd *ArticleListResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// CreatedArticle is a freshly inserted article. It has no comments yet, and
// its count goes out as a plain number.
type CreatedArticle struct {
	*model.Article
	CommentCount int `json:"comment_count"`
}

type CreatedArticleResponse struct {
	Article *CreatedArticle `json:"article"`
}

func NewCreatedArticleResponse(article *model.Article) *CreatedArticleResponse {
	return &CreatedArticleResponse{Article: &CreatedArticle{Article: article}}
}

func (rd *CreatedArticleResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// VotedArticleResponse is the article row after a vote change, without a
// comment count.
type VotedArticleResponse struct {
	Article *model.Article `json:"article"`
}

func NewVotedArticleResponse(article *model.Article) *VotedArticleResponse {
	return &VotedArticleResponse{Article: article}
}

func (rd *VotedArticleResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
