package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryEndpointHasDescription(t *testing.T) {
	var endpoints map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(Endpoints(), &endpoints))
	require.NotEmpty(t, endpoints)

	for key, endpoint := range endpoints {
		description, ok := endpoint["description"].(string)
		assert.True(t, ok, key)
		assert.NotEmpty(t, description, key)
	}
}

func TestList(t *testing.T) {
	rec := httptest.NewRecorder()
	List(rec, httptest.NewRequest(http.MethodGet, "/api", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Endpoints map[string]json.RawMessage `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Endpoints, "GET /api/articles")
	assert.Contains(t, body.Endpoints, "DELETE /api/comments/:comment_id")
}
