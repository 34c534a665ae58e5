package models

import "time"

// Summary is the TL;DR of an article. At most one per article.
// Collection: summaries (unique article_id)
type Summary struct {
	ID        string    `bson:"_id" json:"id"`
	ArticleID string    `bson:"article_id" json:"articleId"`
	Summary   string    `bson:"summary" json:"summary"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
