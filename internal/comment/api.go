package comment

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/ncnews/internal/commentpayload"
	"github.com/SergeyParamoshkin/ncnews/internal/errresponse"
	"github.com/SergeyParamoshkin/ncnews/internal/logging"
	"github.com/SergeyParamoshkin/ncnews/internal/model"
	"github.com/SergeyParamoshkin/ncnews/internal/store"
	"github.com/SergeyParamoshkin/ncnews/internal/votepayload"
)

type Store interface {
	Exists(ctx context.Context, kind store.Entity, field string, value interface{}) (store.Row, error)
	UpdateCommentVotes(ctx context.Context, id int64, inc int) (*model.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}

type API struct {
	store Store
}

func New(s Store) *API {
	return &API{store: s}
}

type ctxKey int8

const ctxKeyCommentID ctxKey = 0

// CommentCtx parses the comment id from the URL parameters, answering 400
// when it is not a number.
func CommentCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "comment_id"), 10, 64)
		if err != nil {
			errresponse.RenderResponse(w, r, errresponse.ErrInvalidRequest(err))

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyCommentID, id)))
	})
}

func commentID(ctx context.Context) int64 {
	id, _ := ctx.Value(ctxKeyCommentID).(int64)

	return id
}

// PatchCommentVotes adds inc_votes to the comment's votes.
func (a *API) PatchCommentVotes(w http.ResponseWriter, r *http.Request) {
	id := commentID(r.Context())

	data := &votepayload.VotesRequest{}
	if err := render.Bind(r, data); err != nil {
		errresponse.RenderResponse(w, r, errresponse.ErrInvalidRequest(err))

		return
	}

	if _, err := a.store.Exists(r.Context(), store.Comments, "comment_id", id); err != nil {
		errresponse.Render(w, r, err)

		return
	}

	comment, err := a.store.UpdateCommentVotes(r.Context(), id, *data.IncVotes)
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	if err := render.Render(w, r, commentpayload.NewCommentResponse(comment)); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}

// DeleteComment removes an existing comment and answers with no body.
func (a *API) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id := commentID(r.Context())

	if _, err := a.store.Exists(r.Context(), store.Comments, "comment_id", id); err != nil {
		errresponse.Render(w, r, err)

		return
	}

	if err := a.store.DeleteComment(r.Context(), id); err != nil {
		errresponse.Render(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
