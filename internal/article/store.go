package article

import (
	"context"

	"github.com/SergeyParamoshkin/ncnews/internal/model"
	"github.com/SergeyParamoshkin/ncnews/internal/store"
)

// Store is the persistence the article handlers need. *store.Store satisfies it.
type Store interface {
	Exists(ctx context.Context, kind store.Entity, field string, value interface{}) (store.Row, error)
	TopicSlugs(ctx context.Context) ([]string, error)
	ListArticles(ctx context.Context, f store.ArticleFilter) ([]model.ArticleWithCount, error)
	ArticleByID(ctx context.Context, id int64) (*model.ArticleWithCount, error)
	InsertArticle(ctx context.Context, a *model.Article) (*model.Article, error)
	UpdateArticleVotes(ctx context.Context, id int64, inc int) (*model.Article, error)
	CommentsByArticle(ctx context.Context, articleID int64) ([]model.Comment, error)
	InsertComment(ctx context.Context, articleID int64, username, body string) (*model.Comment, error)
}

var _ Store = (*store.Store)(nil)
