package endpoints

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/ncnews/internal/logging"
)

//go:embed endpoints.json
var endpointsJSON []byte

// Endpoints is the description of every public route, keyed by
// "METHOD /path".
func Endpoints() json.RawMessage {
	return json.RawMessage(endpointsJSON)
}

type Response struct {
	Endpoints json.RawMessage `json:"endpoints"`
}

func (e *Response) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// List answers GET /api.
func List(w http.ResponseWriter, r *http.Request) {
	if err := render.Render(w, r, &Response{Endpoints: Endpoints()}); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}
