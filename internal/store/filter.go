package store

import (
	"strings"

	"github.com/SergeyParamoshkin/ncnews/internal/apperror"
)

const (
	DefaultSortBy = "created_at"
	OrderAsc      = "asc"
	OrderDesc     = "desc"
)

// sortColumns maps the accepted sort_by values onto the SQL they order by.
var sortColumns = map[string]string{
	"author":          "articles.author",
	"title":           "articles.title",
	"article_id":      "articles.article_id",
	"topic":           "articles.topic",
	"created_at":      "articles.created_at",
	"votes":           "articles.votes",
	"article_img_url": "articles.article_img_url",
	"comment_count":   "comment_count",
}

// ArticleFilter is a validated article listing request. Build it with
// NewArticleFilter.
type ArticleFilter struct {
	SortBy string
	Order  string
	Topic  string
}

// NewArticleFilter applies defaults and validates the listing parameters. An
// unknown sort column is reported as not found and an unknown order as a bad
// request, matching what the API has always answered.
func NewArticleFilter(sortBy, order, topic string) (ArticleFilter, error) {
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	if _, ok := sortColumns[sortBy]; !ok {
		return ArticleFilter{}, apperror.NotFound()
	}

	order = strings.ToLower(order)
	if order == "" {
		order = OrderDesc
	}
	if order != OrderAsc && order != OrderDesc {
		return ArticleFilter{}, apperror.BadRequest()
	}

	return ArticleFilter{SortBy: sortBy, Order: order, Topic: topic}, nil
}

func (f ArticleFilter) orderBy() string {
	return sortColumns[f.SortBy] + " " + strings.ToUpper(f.Order)
}
