package userpayload

import (
	"net/http"

	"github.com/SergeyParamoshkin/ncnews/internal/model"
)

type UserPayload struct {
	User *model.User `json:"user"`
}

func NewUserPayloadResponse(user *model.User) *UserPayload {
	return &UserPayload{User: user}
}

func (u *UserPayload) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type UserListPayload struct {
	Users []model.User `json:"users"`
}

func NewUserListPayloadResponse(users []model.User) *UserListPayload {
	if users == nil {
		users = []model.User{}
	}

	return &UserListPayload{Users: users}
}

func (u *UserListPayload) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
