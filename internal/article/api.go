package article

import (
	"context"
	"net/http"
	"slices"

	"github.com/go-chi/render"
	"golang.org/x/sync/errgroup"

	"github.com/SergeyParamoshkin/ncnews/internal/apperror"
	"github.com/SergeyParamoshkin/ncnews/internal/articlerequest"
	"github.com/SergeyParamoshkin/ncnews/internal/articleresponse"
	"github.com/SergeyParamoshkin/ncnews/internal/commentpayload"
	"github.com/SergeyParamoshkin/ncnews/internal/errresponse"
	"github.com/SergeyParamoshkin/ncnews/internal/logging"
	"github.com/SergeyParamoshkin/ncnews/internal/model"
	"github.com/SergeyParamoshkin/ncnews/internal/pagination"
	"github.com/SergeyParamoshkin/ncnews/internal/store"
	"github.com/SergeyParamoshkin/ncnews/internal/votepayload"
)

type API struct {
	store Store
}

func New(s Store) *API {
	return &API{store: s}
}

func respond(w http.ResponseWriter, r *http.Request, v render.Renderer) {
	if err := render.Render(w, r, v); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}

// ListArticles answers GET /api/articles with the sorted, filtered and
// optionally paginated article summaries.
func (a *API) ListArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter, err := store.NewArticleFilter(q.Get("sort_by"), q.Get("order"), q.Get("topic"))
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	params := PageParams(r.Context())
	articles, err := a.listArticles(r.Context(), filter, params)
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	respond(w, r, articleresponse.NewArticleListResponse(articles, params.IsSet()))
}

func (a *API) listArticles(ctx context.Context, filter store.ArticleFilter, params pagination.Params) ([]model.ArticleWithCount, error) {
	var (
		slugs    []string
		articles []model.ArticleWithCount
	)

	g, gctx := errgroup.WithContext(ctx)
	if filter.Topic != "" {
		g.Go(func() (err error) {
			slugs, err = a.store.TopicSlugs(gctx)

			return err
		})
	}
	g.Go(func() (err error) {
		articles, err = a.store.ListArticles(gctx, filter)

		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if filter.Topic != "" && !slices.Contains(slugs, filter.Topic) {
		return nil, apperror.NotFound()
	}

	if !params.IsSet() {
		return articles, nil
	}

	page, limit, _, ok := pagination.PageInfo(params, len(articles))
	if !ok {
		return nil, apperror.BadRequest()
	}

	return pagination.Paginate(articles, page, limit), nil
}

// GetArticle returns the article with its comment count.
func (a *API) GetArticle(w http.ResponseWriter, r *http.Request) {
	id := ArticleID(r.Context())

	var article *model.ArticleWithCount

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		_, err := a.store.Exists(ctx, store.Articles, "article_id", id)

		return err
	})
	g.Go(func() (err error) {
		article, err = a.store.ArticleByID(ctx, id)

		return err
	})
	if err := g.Wait(); err != nil {
		errresponse.Render(w, r, err)

		return
	}

	respond(w, r, articleresponse.NewArticleResponse(article))
}

// ListArticleComments returns the comments on an article, newest first.
func (a *API) ListArticleComments(w http.ResponseWriter, r *http.Request) {
	id := ArticleID(r.Context())

	var comments []model.Comment

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		_, err := a.store.Exists(ctx, store.Articles, "article_id", id)

		return err
	})
	g.Go(func() (err error) {
		comments, err = a.store.CommentsByArticle(ctx, id)

		return err
	})
	if err := g.Wait(); err != nil {
		errresponse.Render(w, r, err)

		return
	}

	respond(w, r, commentpayload.NewCommentListResponse(comments))
}

// CreateArticle persists the posted Article once its author and topic are
// known, and returns it back to the client as an acknowledgement.
func (a *API) CreateArticle(w http.ResponseWriter, r *http.Request) {
	data := &articlerequest.ArticleRequest{}
	if err := render.Bind(r, data); err != nil {
		errresponse.RenderResponse(w, r, errresponse.ErrInvalidRequest(err))

		return
	}

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		_, err := a.store.Exists(ctx, store.Users, "username", data.Author)

		return err
	})
	g.Go(func() error {
		_, err := a.store.Exists(ctx, store.Topics, "slug", data.Topic)

		return err
	})
	if err := g.Wait(); err != nil {
		errresponse.Render(w, r, err)

		return
	}

	article, err := a.store.InsertArticle(r.Context(), data.Article())
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	render.Status(r, http.StatusCreated)
	respond(w, r, articleresponse.NewCreatedArticleResponse(article))
}

// CreateArticleComment adds a comment from an existing user to an existing
// article.
func (a *API) CreateArticleComment(w http.ResponseWriter, r *http.Request) {
	id := ArticleID(r.Context())

	data := &commentpayload.CommentRequest{}
	if err := render.Bind(r, data); err != nil {
		errresponse.RenderResponse(w, r, errresponse.ErrInvalidRequest(err))

		return
	}

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		_, err := a.store.Exists(ctx, store.Articles, "article_id", id)

		return err
	})
	g.Go(func() error {
		_, err := a.store.Exists(ctx, store.Users, "username", data.Username)

		return err
	})
	if err := g.Wait(); err != nil {
		errresponse.Render(w, r, err)

		return
	}

	comment, err := a.store.InsertComment(r.Context(), id, data.Username, *data.Body)
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	render.Status(r, http.StatusCreated)
	respond(w, r, commentpayload.NewCommentResponse(comment))
}

// PatchArticleVotes adds inc_votes to the article's votes.
func (a *API) PatchArticleVotes(w http.ResponseWriter, r *http.Request) {
	id := ArticleID(r.Context())

	data := &votepayload.VotesRequest{}
	if err := render.Bind(r, data); err != nil {
		errresponse.RenderResponse(w, r, errresponse.ErrInvalidRequest(err))

		return
	}

	if _, err := a.store.Exists(r.Context(), store.Articles, "article_id", id); err != nil {
		errresponse.Render(w, r, err)

		return
	}

	article, err := a.store.UpdateArticleVotes(r.Context(), id, *data.IncVotes)
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	respond(w, r, articleresponse.NewVotedArticleResponse(article))
}
