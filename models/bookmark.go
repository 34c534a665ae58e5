package models

import "time"

// Bookmark marks an article as saved. At most one per article.
// Collection: bookmarks (unique article_id)
type Bookmark struct {
	ID        string    `bson:"_id" json:"id"`
	ArticleID string    `bson:"article_id" json:"articleId"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
