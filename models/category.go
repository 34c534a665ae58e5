package models

import "strings"

// Category is a fixed topical tag. CategoryAll matches every category when used as a filter.
type Category string

const (
	CategoryAll           Category = "all"
	CategoryAI            Category = "ai"
	CategoryProgramming   Category = "programming"
	CategoryStartups      Category = "startups"
	CategoryCloud         Category = "cloud"
	CategoryCybersecurity Category = "cybersecurity"
	CategoryDevOps        Category = "devops"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryAll,
	CategoryAI,
	CategoryProgramming,
	CategoryStartups,
	CategoryCloud,
	CategoryCybersecurity,
	CategoryDevOps,
}

var categorySearchTerms = map[Category]string{
	CategoryAll:           "technology OR programming OR AI OR startups OR cloud OR cybersecurity OR devops",
	CategoryAI:            "artificial intelligence OR machine learning OR AI OR neural networks",
	CategoryProgramming:   "programming OR software development OR coding OR javascript OR python OR react",
	CategoryStartups:      "startups OR venture capital OR tech funding OR unicorn companies",
	CategoryCloud:         "cloud computing OR AWS OR Azure OR Google Cloud OR serverless",
	CategoryCybersecurity: "cybersecurity OR security breach OR hacking OR data protection",
	CategoryDevOps:        "devops OR kubernetes OR docker OR CI/CD OR infrastructure",
}

// NormalizeCategory lower-cases and trims c; empty becomes "all".
func NormalizeCategory(c string) Category {
	c = strings.ToLower(strings.TrimSpace(c))
	if c == "" {
		return CategoryAll
	}
	return Category(c)
}

// IsWildcard reports whether c matches every article.
func (c Category) IsWildcard() bool {
	return c == "" || strings.EqualFold(string(c), string(CategoryAll))
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categorySearchTerms[NormalizeCategory(string(c))]
	return ok
}

// SearchTerms returns the upstream query for the category. Unknown categories use the "all" query.
func (c Category) SearchTerms() string {
	if q, ok := categorySearchTerms[NormalizeCategory(string(c))]; ok {
		return q
	}
	return categorySearchTerms[CategoryAll]
}
