package commentpayload

import (
	"net/http"

	"github.com/SergeyParamoshkin/ncnews/internal/apperror"
	"github.com/SergeyParamoshkin/ncnews/internal/model"
)

// CommentRequest is the body of a new comment. Body is a pointer so a missing
// body can be told apart from an empty one.
type CommentRequest struct {
	Username string  `json:"username"`
	Body     *string `json:"body"`
}

func (c *CommentRequest) Bind(r *http.Request) error {
	if c.Body == nil {
		return apperror.BadRequest()
	}

	return nil
}

type CommentResponse struct {
	Comment *model.Comment `json:"comment"`
}

func NewCommentResponse(comment *model.Comment) *CommentResponse {
	return &CommentResponse{Comment: comment}
}

func (c *CommentResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type CommentListResponse struct {
	Comments []model.Comment `json:"comments"`
}

func NewCommentListResponse(comments []model.Comment) *CommentListResponse {
	if comments == nil {
		comments = []model.Comment{}
	}

	return &CommentListResponse{Comments: comments}
}

func (c *CommentListResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
