package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/SergeyParamoshkin/ncnews/internal/model"
)

// Client talks to the NC News API at Addr, e.g. "http://localhost:9090".
type Client struct {
	http.Client
	Addr string
}

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status int
	Msg    string `json:"msg"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ncnews: %d %s", e.Status, e.Msg)
}

// ArticlesQuery holds the optional listing parameters. Zero values are not sent.
type ArticlesQuery struct {
	SortBy string
	Order  string
	Topic  string
	Page   int
	Limit  int
}

func (q ArticlesQuery) values() url.Values {
	v := url.Values{}
	if q.SortBy != "" {
		v.Set("sort_by", q.SortBy)
	}
	if q.Order != "" {
		v.Set("order", q.Order)
	}
	if q.Topic != "" {
		v.Set("topic", q.Topic)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}

	return v
}

// ArticleList is one page of articles. TotalCount is nil unless the query
// asked for a page or limit.
type ArticleList struct {
	Articles   []model.ArticleWithCount `json:"articles"`
	TotalCount *int                     `json:"totalCount"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Addr+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Msg = http.StatusText(resp.StatusCode)
		}

		return apiErr
	}

	if out == nil {
		return nil
	}

	return errors.Wrapf(json.NewDecoder(resp.Body).Decode(out), "decode %s %s", method, path)
}

// Endpoints returns the API's description of its own routes.
func (c *Client) Endpoints(ctx context.Context) (map[string]json.RawMessage, error) {
	var out struct {
		Endpoints map[string]json.RawMessage `json:"endpoints"`
	}
	err := c.do(ctx, http.MethodGet, "/api", nil, &out)

	return out.Endpoints, err
}

func (c *Client) Topics(ctx context.Context) ([]model.Topic, error) {
	var out struct {
		Topics []model.Topic `json:"topics"`
	}
	err := c.do(ctx, http.MethodGet, "/api/topics", nil, &out)

	return out.Topics, err
}

func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	var out struct {
		Users []model.User `json:"users"`
	}
	err := c.do(ctx, http.MethodGet, "/api/users", nil, &out)

	return out.Users, err
}

func (c *Client) User(ctx context.Context, username string) (*model.User, error) {
	var out struct {
		User *model.User `json:"user"`
	}
	err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(username), nil, &out)

	return out.User, err
}

func (c *Client) Articles(ctx context.Context, q ArticlesQuery) (*ArticleList, error) {
	path := "/api/articles"
	if v := q.values(); len(v) > 0 {
		path += "?" + v.Encode()
	}

	out := &ArticleList{}
	if err := c.do(ctx, http.MethodGet, path, nil, out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) Article(ctx context.Context, id int64) (*model.ArticleWithCount, error) {
	var out struct {
		Article *model.ArticleWithCount `json:"article"`
	}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/articles/%d", id), nil, &out)

	return out.Article, err
}

func (c *Client) ArticleComments(ctx context.Context, id int64) ([]model.Comment, error) {
	var out struct {
		Comments []model.Comment `json:"comments"`
	}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/articles/%d/comments", id), nil, &out)

	return out.Comments, err
}

// NewArticle is the body of CreateArticle. ArticleImgURL may be left empty.
type NewArticle struct {
	Author        string `json:"author"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	Topic         string `json:"topic"`
	ArticleImgURL string `json:"article_img_url,omitempty"`
}

// CreateArticle posts a new article. The created article always has no comments.
func (c *Client) CreateArticle(ctx context.Context, a NewArticle) (*model.Article, error) {
	var out struct {
		Article *model.Article `json:"article"`
	}
	err := c.do(ctx, http.MethodPost, "/api/articles", a, &out)

	return out.Article, err
}

func (c *Client) CreateComment(ctx context.Context, articleID int64, username, body string) (*model.Comment, error) {
	in := map[string]string{"username": username, "body": body}

	var out struct {
		Comment *model.Comment `json:"comment"`
	}
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/articles/%d/comments", articleID), in, &out)

	return out.Comment, err
}

func (c *Client) PatchArticleVotes(ctx context.Context, id int64, inc int) (*model.Article, error) {
	var out struct {
		Article *model.Article `json:"article"`
	}
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/articles/%d", id), map[string]int{"inc_votes": inc}, &out)

	return out.Article, err
}

func (c *Client) PatchCommentVotes(ctx context.Context, id int64, inc int) (*model.Comment, error) {
	var out struct {
		Comment *model.Comment `json:"comment"`
	}
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/comments/%d", id), map[string]int{"inc_votes": inc}, &out)

	return out.Comment, err
}

func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/comments/%d", id), nil, nil)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
