package topic

import (
	"context"
	"net/http"

	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/ncnews/internal/errresponse"
	"github.com/SergeyParamoshkin/ncnews/internal/logging"
	"github.com/SergeyParamoshkin/ncnews/internal/model"
)

type Store interface {
	Topics(ctx context.Context) ([]model.Topic, error)
}

type API struct {
	store Store
}

func New(s Store) *API {
	return &API{store: s}
}

type TopicListResponse struct {
	Topics []model.Topic `json:"topics"`
}

func NewTopicListResponse(topics []model.Topic) *TopicListResponse {
	if topics == nil {
		topics = []model.Topic{}
	}

	return &TopicListResponse{Topics: topics}
}

func (t *TopicListResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (a *API) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := a.store.Topics(r.Context())
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	if err := render.Render(w, r, NewTopicListResponse(topics)); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}
