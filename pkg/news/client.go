package news

import (
	"context"
	"time"
)

// Article is a transient news item from the external index. It is never
// persisted unless the user explicitly saves it.
type Article struct {
	Source      Source    `json:"source"`
	Author      string    `json:"author,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}

type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Index interface {
	TopHeadlines(ctx context.Context, category string, pageSize int) ([]Article, error)
	Everything(ctx context.Context, query, sortBy string, pageSize int) ([]Article, error)
}
