package store

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/SergeyParamoshkin/ncnews/internal/apperror"
	"github.com/SergeyParamoshkin/ncnews/internal/model"
)

func (s *Store) Users(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	err := s.db.SelectContext(ctx, &users, `
		SELECT username, name, avatar_url
		FROM users
		ORDER BY username ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "select users")
	}

	return users, nil
}

func (s *Store) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	err := s.db.GetContext(ctx, user, `
		SELECT username, name, avatar_url
		FROM users
		WHERE username = $1`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound()
	}
	if err != nil {
		return nil, errors.Wrapf(err, "select user %q", username)
	}

	return user, nil
}
