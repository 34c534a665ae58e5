package models

import (
	"time"
)

// Article represents a news item imported from the news provider
// Collection: articles
//
// Optional fields are pointers so they serialize as null when absent.
type Article struct {
	ID          string    `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description *string   `bson:"description" json:"description"`
	URL         string    `bson:"url" json:"url"`
	URLToImage  *string   `bson:"url_to_image" json:"urlToImage"`
	PublishedAt time.Time `bson:"published_at" json:"publishedAt"`
	Source      string    `bson:"source" json:"source"`
	Category    string    `bson:"category" json:"category"`
	Content     *string   `bson:"content" json:"content"`
}

// BookmarkedArticle is an Article joined with the time it was bookmarked.
type BookmarkedArticle struct {
	Article
	BookmarkedAt time.Time `json:"bookmarkedAt"`
}

// DescriptionText returns the description or "" when absent.
func (a Article) DescriptionText() string { return deref(a.Description) }

// ContentText returns the content or "" when absent.
func (a Article) ContentText() string { return deref(a.Content) }

// OptionalString returns nil for an empty string so that "" and absent are stored the same way.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
