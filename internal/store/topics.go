package store

import (
	"context"

	"github.com/pkg/errors"

	"github.com/SergeyParamoshkin/ncnews/internal/model"
)

func (s *Store) Topics(ctx context.Context) ([]model.Topic, error) {
	topics := []model.Topic{}
	if err := s.db.SelectContext(ctx, &topics, `SELECT slug, description FROM topics`); err != nil {
		return nil, errors.Wrap(err, "select topics")
	}

	return topics, nil
}

// TopicSlugs returns the slug of every topic.
func (s *Store) TopicSlugs(ctx context.Context) ([]string, error) {
	slugs := []string{}
	if err := s.db.SelectContext(ctx, &slugs, `SELECT slug FROM topics`); err != nil {
		return nil, errors.Wrap(err, "select topic slugs")
	}

	return slugs, nil
}
