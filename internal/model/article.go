package model

import "time"

const (
	SentimentPositive = "POSITIVE"
	SentimentNegative = "NEGATIVE"
	SentimentNeutral  = "NEUTRAL"
)

type SavedArticle struct {
	ID           int64
	UserID       int64
	Title        string
	Source       string
	URL          string
	URLToImage   string
	Summary      string
	Sentiment    string
	PublishedAt  time.Time
	SavedAt      time.Time
	SummarizedAt time.Time
}
