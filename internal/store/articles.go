package store

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/SergeyParamoshkin/ncnews/internal/apperror"
	"github.com/SergeyParamoshkin/ncnews/internal/model"
)

var articleSummaryColumns = []string{
	"articles.article_id",
	"articles.author",
	"articles.title",
	"articles.topic",
	"articles.created_at",
	"articles.votes",
	"articles.article_img_url",
}

const articleReturning = `RETURNING article_id, author, title, body, topic, created_at, votes, article_img_url`

func (s *Store) articlesWithCount(columns ...string) squirrel.SelectBuilder {
	columns = append(columns, "COUNT(comments.comment_id) AS comment_count")

	return s.sq.Select(columns...).
		From("articles").
		LeftJoin("comments ON comments.article_id = articles.article_id").
		GroupBy("articles.article_id")
}

// ListArticles returns every article matching f, without bodies, sorted by
// f and then by article_id.
func (s *Store) ListArticles(ctx context.Context, f ArticleFilter) ([]model.ArticleWithCount, error) {
	if f.SortBy == "" {
		return nil, errors.New("list articles: filter not built with NewArticleFilter")
	}

	q := s.articlesWithCount(articleSummaryColumns...).
		OrderBy(f.orderBy(), "articles.article_id ASC")
	if f.Topic != "" {
		q = q.Where(squirrel.Eq{"articles.topic": f.Topic})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build list articles query")
	}

	articles := []model.ArticleWithCount{}
	if err := s.db.SelectContext(ctx, &articles, query, args...); err != nil {
		return nil, errors.Wrap(err, "select articles")
	}

	return articles, nil
}

func (s *Store) ArticleByID(ctx context.Context, id int64) (*model.ArticleWithCount, error) {
	columns := append([]string{"articles.body"}, articleSummaryColumns...)
	query, args, err := s.articlesWithCount(columns...).
		Where(squirrel.Eq{"articles.article_id": id}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build article query")
	}

	article := &model.ArticleWithCount{}
	err = s.db.GetContext(ctx, article, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound()
	}
	if err != nil {
		return nil, errors.Wrapf(err, "select article %d", id)
	}

	return article, nil
}

// InsertArticle stores a and returns the row as written, with the id,
// timestamp and vote count assigned by the database.
func (s *Store) InsertArticle(ctx context.Context, a *model.Article) (*model.Article, error) {
	if a.ArticleImgURL == "" {
		a.ArticleImgURL = model.DefaultArticleImgURL
	}

	inserted := &model.Article{}
	err := s.db.GetContext(ctx, inserted, `
		INSERT INTO articles (author, title, body, topic, article_img_url)
		VALUES ($1, $2, $3, $4, $5)
		`+articleReturning,
		a.Author, a.Title, a.Body, a.Topic, a.ArticleImgURL)
	if err != nil {
		return nil, errors.Wrap(err, "insert article")
	}

	return inserted, nil
}

// UpdateArticleVotes adds inc to the article's votes. Votes are not clamped.
func (s *Store) UpdateArticleVotes(ctx context.Context, id int64, inc int) (*model.Article, error) {
	updated := &model.Article{}
	err := s.db.GetContext(ctx, updated, `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		`+articleReturning,
		inc, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound()
	}
	if err != nil {
		return nil, errors.Wrapf(err, "update article %d votes", id)
	}

	return updated, nil
}
