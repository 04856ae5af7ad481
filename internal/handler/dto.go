package handler

import "time"

type SummarizeRequest struct {
	ArticleURL string `json:"articleUrl"`
}

type SummarizeResponse struct {
	Summary   string `json:"summary"`
	Sentiment string `json:"sentiment"`
}

type SaveArticleRequest struct {
	Title       string    `json:"title"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage"`
	Summary     string    `json:"summary"`
	Sentiment   string    `json:"sentiment"`
	PublishedAt time.Time `json:"publishedAt"`
}

type SavedArticleResponse struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Source       string `json:"source"`
	URL          string `json:"url"`
	URLToImage   string `json:"urlToImage,omitempty"`
	Summary      string `json:"summary"`
	Sentiment    string `json:"sentiment"`
	PublishedAt  string `json:"publishedAt"`
	SavedAt      string `json:"savedAt"`
	SummarizedAt string `json:"summarizedAt"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
