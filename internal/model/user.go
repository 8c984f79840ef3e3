package model

// User data model. Users are seeded and never written by the API.
type User struct {
	Username  string `json:"username" db:"username" yaml:"username"`
	Name      string `json:"name" db:"name" yaml:"name"`
	AvatarURL string `json:"avatar_url" db:"avatar_url" yaml:"avatar_url"`
}
