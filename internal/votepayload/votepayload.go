package votepayload

import (
	"math"
	"net/http"

	"github.com/SergeyParamoshkin/ncnews/internal/apperror"
)

// VotesRequest is the body of a vote change. IncVotes must be an integer that
// fits the votes column; it may be negative.
type VotesRequest struct {
	IncVotes *int `json:"inc_votes"`
}

func (v *VotesRequest) Bind(r *http.Request) error {
	if v.IncVotes == nil || *v.IncVotes < math.MinInt32 || *v.IncVotes > math.MaxInt32 {
		return apperror.BadRequest()
	}

	return nil
}
