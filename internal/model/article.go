package model

import "time"

// DefaultArticleImgURL is stored when an article is posted without an image.
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Article data model. Body is left empty by the listing query, which only
// selects the summary columns.
type Article struct {
	ID            int64     `json:"article_id" db:"article_id"`
	Author        string    `json:"author" db:"author"` // users.username
	Title         string    `json:"title" db:"title"`
	Body          string    `json:"body,omitempty" db:"body"`
	Topic         string    `json:"topic" db:"topic"` // topics.slug
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
}

// ArticleWithCount is an article row joined with the number of comments
// referencing it.
type ArticleWithCount struct {
	Article
	CommentCount int64 `json:"comment_count,string" db:"comment_count"`
}
