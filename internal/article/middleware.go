package article

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/SergeyParamoshkin/ncnews/internal/errresponse"
	"github.com/SergeyParamoshkin/ncnews/internal/pagination"
)

type ctxKey int8

const (
	ctxKeyArticleID ctxKey = iota
	ctxKeyPage
)

// ArticleCtx middleware parses the article id from the URL parameters and
// puts it on the request context. A non-numeric id stops here with a 400.
// Whether the article exists is left to the handlers.
func ArticleCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "article_id"), 10, 64)
		if err != nil {
			errresponse.RenderResponse(w, r, errresponse.ErrInvalidRequest(err))

			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyArticleID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ArticleID returns the id stored by ArticleCtx.
func ArticleID(ctx context.Context) int64 {
	id, _ := ctx.Value(ctxKeyArticleID).(int64)

	return id
}

// Paginate looks at the page and limit query params and sends them down the
// chain. They are validated once the size of the result is known.
func Paginate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		params := pagination.Params{Page: q.Get("page"), Limit: q.Get("limit")}

		ctx := context.WithValue(r.Context(), ctxKeyPage, params)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PageParams returns the params stored by Paginate.
func PageParams(ctx context.Context) pagination.Params {
	params, _ := ctx.Value(ctxKeyPage).(pagination.Params)

	return params
}
