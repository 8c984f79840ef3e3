package user

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"golang.org/x/sync/errgroup"

	"github.com/SergeyParamoshkin/ncnews/internal/errresponse"
	"github.com/SergeyParamoshkin/ncnews/internal/logging"
	"github.com/SergeyParamoshkin/ncnews/internal/model"
	"github.com/SergeyParamoshkin/ncnews/internal/store"
	"github.com/SergeyParamoshkin/ncnews/internal/userpayload"
)

type Store interface {
	Exists(ctx context.Context, kind store.Entity, field string, value interface{}) (store.Row, error)
	Users(ctx context.Context) ([]model.User, error)
	UserByUsername(ctx context.Context, username string) (*model.User, error)
}

type API struct {
	store Store
}

func New(s Store) *API {
	return &API{store: s}
}

// ListUsers answers with every user, ordered by username.
func (a *API) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.store.Users(r.Context())
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	if err := render.Render(w, r, userpayload.NewUserListPayloadResponse(users)); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}

func (a *API) GetUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var user *model.User

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		_, err := a.store.Exists(ctx, store.Users, "username", username)

		return err
	})
	g.Go(func() (err error) {
		user, err = a.store.UserByUsername(ctx, username)

		return err
	})
	if err := g.Wait(); err != nil {
		errresponse.Render(w, r, err)

		return
	}

	if err := render.Render(w, r, userpayload.NewUserPayloadResponse(user)); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}
