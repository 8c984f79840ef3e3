package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/SergeyParamoshkin/ncnews/internal/article"
	"github.com/SergeyParamoshkin/ncnews/internal/comment"
	"github.com/SergeyParamoshkin/ncnews/internal/endpoints"
	"github.com/SergeyParamoshkin/ncnews/internal/errresponse"
	"github.com/SergeyParamoshkin/ncnews/internal/logging"
	"github.com/SergeyParamoshkin/ncnews/internal/metrics"
	"github.com/SergeyParamoshkin/ncnews/internal/store"
	"github.com/SergeyParamoshkin/ncnews/internal/topic"
	"github.com/SergeyParamoshkin/ncnews/internal/user"
)

const shutdownTimeout = 10 * time.Second

// Store is everything the handlers read and write. *store.Store satisfies it.
type Store interface {
	article.Store
	comment.Store
	topic.Store
	user.Store
}

var _ Store = (*store.Store)(nil)

type App struct {
	sugarLogger *zap.SugaredLogger
	store       Store
	metrics     *metrics.HTTP
}

// New builds the application. httpMetrics may be nil.
func New(logger *zap.SugaredLogger, s Store, httpMetrics *metrics.HTTP) *App {
	return &App{
		sugarLogger: logger,
		store:       s,
		metrics:     httpMetrics,
	}
}

// Router returns the public API router.
func (a *App) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(logging.Logger(a.sugarLogger))
	r.Use(logging.RequestLogger)
	if a.metrics != nil {
		r.Use(a.metrics.Middleware)
	}
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		errresponse.RenderResponse(w, r, errresponse.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		errresponse.RenderResponse(w, r, errresponse.ErrMethodNotAllowed)
	})

	articles := article.New(a.store)
	comments := comment.New(a.store)
	topics := topic.New(a.store)
	users := user.New(a.store)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", endpoints.List)

		r.Get("/topics", topics.ListTopics)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", users.ListUsers)
			r.Get("/{username}", users.GetUser)
		})

		// RESTy routes for "articles" resource
		r.Route("/articles", func(r chi.Router) {
			r.With(article.Paginate).Get("/", articles.ListArticles)
			r.Post("/", articles.CreateArticle)

			r.Route("/{article_id}", func(r chi.Router) {
				r.Use(article.ArticleCtx)
				r.Get("/", articles.GetArticle)
				r.Patch("/", articles.PatchArticleVotes)
				r.Get("/comments", articles.ListArticleComments)
				r.Post("/comments", articles.CreateArticleComment)
				// older clients post to the singular path
				r.Post("/comment", articles.CreateArticleComment)
			})
		})

		r.Route("/comments/{comment_id}", func(r chi.Router) {
			r.Use(comment.CommentCtx)
			r.Patch("/", comments.PatchCommentVotes)
			r.Delete("/", comments.DeleteComment)
		})
	})

	return r
}

// DiagRouter serves operational endpoints on a separate port.
func DiagRouter(metricsHandler http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/metrics", metricsHandler.ServeHTTP)

	return r
}

// Serve runs the public and diag servers until ctx is cancelled or either of
// them fails, then shuts both down.
func (a *App) Serve(ctx context.Context, addr, diagAddr string, diag http.Handler) error {
	servers := []*http.Server{
		{Addr: addr, Handler: a.Router()},
		{Addr: diagAddr, Handler: diag},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			a.sugarLogger.Infow("listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return errors.Wrapf(err, "serve %s", srv.Addr)
			}

			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.sugarLogger.Errorw("shutdown", "addr", srv.Addr, "error", err)
			}
		}

		return nil
	})

	return g.Wait()
}
