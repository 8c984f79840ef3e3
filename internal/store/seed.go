package store

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/SergeyParamoshkin/ncnews/internal/model"
)

//go:embed seed/*.yaml
var seedFS embed.FS

type SeedArticle struct {
	Title         string    `yaml:"title"`
	Topic         string    `yaml:"topic"`
	Author        string    `yaml:"author"`
	Body          string    `yaml:"body"`
	CreatedAt     time.Time `yaml:"created_at"`
	Votes         int       `yaml:"votes"`
	ArticleImgURL string    `yaml:"article_img_url"`
}

type SeedComment struct {
	Body      string    `yaml:"body"`
	Votes     int       `yaml:"votes"`
	Author    string    `yaml:"author"`
	ArticleID int64     `yaml:"article_id"`
	CreatedAt time.Time `yaml:"created_at"`
}

// SeedData is a full dataset. Article ids are assigned in list order starting
// at 1, which is what SeedComment.ArticleID refers to.
type SeedData struct {
	Topics   []model.Topic `yaml:"topics"`
	Users    []model.User  `yaml:"users"`
	Articles []SeedArticle `yaml:"articles"`
	Comments []SeedComment `yaml:"comments"`
}

// LoadSeed reads an embedded dataset by name, e.g. "test".
func LoadSeed(name string) (*SeedData, error) {
	b, err := seedFS.ReadFile(fmt.Sprintf("seed/%s.yaml", name))
	if err != nil {
		return nil, errors.Wrapf(err, "read seed %q", name)
	}

	data := &SeedData{}
	if err := yaml.Unmarshal(b, data); err != nil {
		return nil, errors.Wrapf(err, "parse seed %q", name)
	}

	return data, nil
}

// Seed replaces the content of every table with data.
func (s *Store) Seed(ctx context.Context, data *SeedData) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin seed")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `TRUNCATE topics, users, articles, comments RESTART IDENTITY CASCADE`); err != nil {
		return errors.Wrap(err, "truncate tables")
	}

	inserts := make([]squirrel.Sqlizer, 0, 4)

	if len(data.Topics) > 0 {
		q := s.sq.Insert("topics").Columns("slug", "description")
		for _, t := range data.Topics {
			q = q.Values(t.Slug, t.Description)
		}
		inserts = append(inserts, q)
	}

	if len(data.Users) > 0 {
		q := s.sq.Insert("users").Columns("username", "name", "avatar_url")
		for _, u := range data.Users {
			q = q.Values(u.Username, u.Name, u.AvatarURL)
		}
		inserts = append(inserts, q)
	}

	if len(data.Articles) > 0 {
		q := s.sq.Insert("articles").Columns("title", "topic", "author", "body", "created_at", "votes", "article_img_url")
		for _, a := range data.Articles {
			imgURL := a.ArticleImgURL
			if imgURL == "" {
				imgURL = model.DefaultArticleImgURL
			}
			q = q.Values(a.Title, a.Topic, a.Author, a.Body, a.CreatedAt, a.Votes, imgURL)
		}
		inserts = append(inserts, q)
	}

	if len(data.Comments) > 0 {
		q := s.sq.Insert("comments").Columns("body", "votes", "author", "article_id", "created_at")
		for _, c := range data.Comments {
			q = q.Values(c.Body, c.Votes, c.Author, c.ArticleID, c.CreatedAt)
		}
		inserts = append(inserts, q)
	}

	for _, insert := range inserts {
		query, args, qErr := insert.ToSql()
		if qErr != nil {
			return errors.Wrap(qErr, "build seed insert")
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return errors.Wrap(err, "insert seed rows")
		}
	}

	return errors.Wrap(tx.Commit(), "commit seed")
}
