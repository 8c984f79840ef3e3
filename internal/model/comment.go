package model

import "time"

type Comment struct {
	ID        int64     `json:"comment_id" db:"comment_id"`
	ArticleID int64     `json:"article_id" db:"article_id"`
	Author    string    `json:"author" db:"author"`
	Body      string    `json:"body" db:"body"`
	Votes     int       `json:"votes" db:"votes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
