package app

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SergeyParamoshkin/ncnews/internal/apperror"
	"github.com/SergeyParamoshkin/ncnews/internal/model"
	"github.com/SergeyParamoshkin/ncnews/internal/store"
)

// memStore is an in-memory Store loaded from a seed fixture.
type memStore struct {
	mu       sync.Mutex
	now      time.Time
	topics   []model.Topic
	users    []model.User
	articles []model.Article
	comments []model.Comment
}

func newMemStore(data *store.SeedData) *memStore {
	m := &memStore{
		now:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		topics: data.Topics,
		users:  data.Users,
	}
	for i, a := range data.Articles {
		m.articles = append(m.articles, model.Article{
			ID:            int64(i + 1),
			Author:        a.Author,
			Title:         a.Title,
			Body:          a.Body,
			Topic:         a.Topic,
			CreatedAt:     a.CreatedAt,
			Votes:         a.Votes,
			ArticleImgURL: a.ArticleImgURL,
		})
	}
	for i, c := range data.Comments {
		m.comments = append(m.comments, model.Comment{
			ID:        int64(i + 1),
			ArticleID: c.ArticleID,
			Author:    c.Author,
			Body:      c.Body,
			Votes:     c.Votes,
			CreatedAt: c.CreatedAt,
		})
	}

	return m
}

func (m *memStore) Exists(ctx context.Context, kind store.Entity, field string, value interface{}) (store.Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case kind == store.Topics && field == "slug":
		for _, t := range m.topics {
			if t.Slug == value {
				return store.Row{"slug": t.Slug, "description": t.Description}, nil
			}
		}
	case kind == store.Users && field == "username":
		for _, u := range m.users {
			if u.Username == value {
				return store.Row{"username": u.Username}, nil
			}
		}
	case kind == store.Articles && field == "article_id":
		for _, a := range m.articles {
			if a.ID == value {
				return store.Row{"article_id": a.ID}, nil
			}
		}
	case kind == store.Comments && field == "comment_id":
		for _, c := range m.comments {
			if c.ID == value {
				return store.Row{"comment_id": c.ID}, nil
			}
		}
	default:
		return nil, apperror.BadRequest()
	}

	return nil, apperror.NotFound()
}

func (m *memStore) Topics(ctx context.Context) ([]model.Topic, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]model.Topic(nil), m.topics...), nil
}

func (m *memStore) TopicSlugs(ctx context.Context) ([]string, error) {
	topics, _ := m.Topics(ctx)
	slugs := make([]string, 0, len(topics))
	for _, t := range topics {
		slugs = append(slugs, t.Slug)
	}

	return slugs, nil
}

func (m *memStore) Users(ctx context.Context) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	users := append([]model.User(nil), m.users...)
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })

	return users, nil
}

func (m *memStore) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			u := u

			return &u, nil
		}
	}

	return nil, apperror.NotFound()
}

func (m *memStore) commentCount(articleID int64) int64 {
	var n int64
	for _, c := range m.comments {
		if c.ArticleID == articleID {
			n++
		}
	}

	return n
}

func (m *memStore) ListArticles(ctx context.Context, f store.ArticleFilter) ([]model.ArticleWithCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	articles := []model.ArticleWithCount{}
	for _, a := range m.articles {
		if f.Topic != "" && a.Topic != f.Topic {
			continue
		}
		a.Body = ""
		articles = append(articles, model.ArticleWithCount{Article: a, CommentCount: m.commentCount(a.ID)})
	}

	cmp := func(a, b model.ArticleWithCount) int {
		switch f.SortBy {
		case "author":
			return strings.Compare(a.Author, b.Author)
		case "title":
			return strings.Compare(a.Title, b.Title)
		case "topic":
			return strings.Compare(a.Topic, b.Topic)
		case "article_img_url":
			return strings.Compare(a.ArticleImgURL, b.ArticleImgURL)
		case "article_id":
			return int(a.ID - b.ID)
		case "votes":
			return a.Votes - b.Votes
		case "comment_count":
			return int(a.CommentCount - b.CommentCount)
		}

		return a.CreatedAt.Compare(b.CreatedAt)
	}

	sort.SliceStable(articles, func(i, j int) bool {
		c := cmp(articles[i], articles[j])
		if f.Order == store.OrderDesc {
			c = -c
		}
		if c != 0 {
			return c < 0
		}

		return articles[i].ID < articles[j].ID
	})

	return articles, nil
}

func (m *memStore) ArticleByID(ctx context.Context, id int64) (*model.ArticleWithCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.articles {
		if a.ID == id {
			return &model.ArticleWithCount{Article: a, CommentCount: m.commentCount(id)}, nil
		}
	}

	return nil, apperror.NotFound()
}

func (m *memStore) InsertArticle(ctx context.Context, a *model.Article) (*model.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	inserted := *a
	inserted.ID = int64(len(m.articles) + 1)
	inserted.CreatedAt = m.now
	if inserted.ArticleImgURL == "" {
		inserted.ArticleImgURL = model.DefaultArticleImgURL
	}
	m.articles = append(m.articles, inserted)

	return &inserted, nil
}

func (m *memStore) UpdateArticleVotes(ctx context.Context, id int64, inc int) (*model.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.articles {
		if m.articles[i].ID == id {
			m.articles[i].Votes += inc
			a := m.articles[i]

			return &a, nil
		}
	}

	return nil, apperror.NotFound()
}

func (m *memStore) CommentsByArticle(ctx context.Context, articleID int64) ([]model.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	comments := []model.Comment{}
	for _, c := range m.comments {
		if c.ArticleID == articleID {
			comments = append(comments, c)
		}
	}
	sort.SliceStable(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.After(comments[j].CreatedAt)
		}

		return comments[i].ID > comments[j].ID
	})

	return comments, nil
}

func (m *memStore) InsertComment(ctx context.Context, articleID int64, username, body string) (*model.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := model.Comment{
		ID:        int64(len(m.comments) + 1),
		ArticleID: articleID,
		Author:    username,
		Body:      body,
		CreatedAt: m.now,
	}
	m.comments = append(m.comments, c)

	return &c, nil
}

func (m *memStore) UpdateCommentVotes(ctx context.Context, id int64, inc int) (*model.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.comments {
		if m.comments[i].ID == id {
			m.comments[i].Votes += inc
			c := m.comments[i]

			return &c, nil
		}
	}

	return nil, apperror.NotFound()
}

func (m *memStore) DeleteComment(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, c := range m.comments {
		if c.ID == id {
			m.comments = append(m.comments[:i], m.comments[i+1:]...)

			return nil
		}
	}

	return apperror.NotFound()
}
