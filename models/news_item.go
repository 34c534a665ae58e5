package models

// NewsSearch is the query sent to a news provider.
type NewsSearch struct {
	Query    string
	Category Category
	Lang     string
	Country  string
	SortBy   string
	Max      int
}

// NewsItem is a raw result from a news provider before it becomes an Article.
// PublishedAt is kept as the provider's string; the news service coerces it.
type NewsItem struct {
	Title       string
	Description string
	Content     string
	URL         string
	Image       string
	PublishedAt string
	SourceName  string
}
