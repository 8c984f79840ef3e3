package articlerequest

import (
	"net/http"

	"github.com/SergeyParamoshkin/ncnews/internal/apperror"
	"github.com/SergeyParamoshkin/ncnews/internal/model"
)

// ArticleRequest is the request payload for posting an Article. A field sent
// with a non-string JSON value fails decoding before Bind runs.
type ArticleRequest struct {
	Author        string `json:"author"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	Topic         string `json:"topic"`
	ArticleImgURL string `json:"article_img_url"`
}

// IsValid reports whether author, title, body and topic are all present.
// article_img_url is optional.
func IsValid(a *ArticleRequest) bool {
	if a == nil {
		return false
	}

	return a.Author != "" && a.Title != "" && a.Body != "" && a.Topic != ""
}

func (a *ArticleRequest) Bind(r *http.Request) error {
	if !IsValid(a) {
		return apperror.BadRequest()
	}

	if a.ArticleImgURL == "" {
		a.ArticleImgURL = model.DefaultArticleImgURL
	}

	return nil
}

func (a *ArticleRequest) Article() *model.Article {
	return &model.Article{
		Author:        a.Author,
		Title:         a.Title,
		Body:          a.Body,
		Topic:         a.Topic,
		ArticleImgURL: a.ArticleImgURL,
	}
}
