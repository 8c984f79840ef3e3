//go:build integration

// The integration tests expect a server started with `ncnews serve` on a
// database freshly loaded with `ncnews seed`. NCNEWS_URL overrides the address.
package client

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient() *Client {
	addr := os.Getenv("NCNEWS_URL")
	if addr == "" {
		addr = "http://localhost:9090"
	}

	return &Client{Addr: addr, Client: http.Client{}}
}

func TestEndpoints(t *testing.T) {
	endpoints, err := newClient().Endpoints(context.Background())
	require.NoError(t, err)
	assert.Contains(t, endpoints, "GET /api/articles")
}

func TestReadSeededData(t *testing.T) {
	ctx := context.Background()
	c := newClient()

	topics, err := c.Topics(ctx)
	require.NoError(t, err)
	assert.Len(t, topics, 3)

	users, err := c.Users(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 4)

	article, err := c.Article(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 11, article.CommentCount)

	comments, err := c.ArticleComments(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, comments)

	page, err := c.Articles(ctx, ArticlesQuery{Limit: 3, Page: 2})
	require.NoError(t, err)
	require.Len(t, page.Articles, 3)
	assert.EqualValues(t, 12, page.Articles[0].ID)

	_, err = c.Articles(ctx, ArticlesQuery{Topic: "dogs"})
	assert.True(t, IsNotFound(err))
}

func TestWriteRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newClient()

	created, err := c.CreateArticle(ctx, NewArticle{Author: "lurker", Title: "Integration", Body: "body", Topic: "paper"})
	require.NoError(t, err)
	assert.Equal(t, "paper", created.Topic)

	comment, err := c.CreateComment(ctx, created.ID, "rogersop", "nice")
	require.NoError(t, err)

	voted, err := c.PatchCommentVotes(ctx, comment.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, voted.Votes)

	article, err := c.PatchArticleVotes(ctx, created.ID, -2)
	require.NoError(t, err)
	assert.Equal(t, -2, article.Votes)

	require.NoError(t, c.DeleteComment(ctx, comment.ID))
	assert.True(t, IsNotFound(c.DeleteComment(ctx, comment.ID)))
}
