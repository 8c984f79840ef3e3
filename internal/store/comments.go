package store

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/SergeyParamoshkin/ncnews/internal/apperror"
	"github.com/SergeyParamoshkin/ncnews/internal/model"
)

const commentReturning = `RETURNING comment_id, article_id, author, body, votes, created_at`

// CommentsByArticle returns the comments on an article, newest first.
func (s *Store) CommentsByArticle(ctx context.Context, articleID int64) ([]model.Comment, error) {
	comments := []model.Comment{}
	err := s.db.SelectContext(ctx, &comments, `
		SELECT comment_id, article_id, author, body, votes, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC, comment_id DESC`, articleID)
	if err != nil {
		return nil, errors.Wrapf(err, "select comments of article %d", articleID)
	}

	return comments, nil
}

func (s *Store) InsertComment(ctx context.Context, articleID int64, username, body string) (*model.Comment, error) {
	comment := &model.Comment{}
	err := s.db.GetContext(ctx, comment, `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		`+commentReturning,
		articleID, username, body)
	if err != nil {
		return nil, errors.Wrap(err, "insert comment")
	}

	return comment, nil
}

func (s *Store) UpdateCommentVotes(ctx context.Context, id int64, inc int) (*model.Comment, error) {
	comment := &model.Comment{}
	err := s.db.GetContext(ctx, comment, `
		UPDATE comments
		SET votes = votes + $1
		WHERE comment_id = $2
		`+commentReturning,
		inc, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound()
	}
	if err != nil {
		return nil, errors.Wrapf(err, "update comment %d votes", id)
	}

	return comment, nil
}

func (s *Store) DeleteComment(ctx context.Context, id int64) error {
	var deleted int64
	err := s.db.GetContext(ctx, &deleted, `
		DELETE FROM comments
		WHERE comment_id = $1
		RETURNING comment_id`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperror.NotFound()
	}

	return errors.Wrapf(err, "delete comment %d", id)
}
