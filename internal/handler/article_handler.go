package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"smartbrief/internal/auth"
	"smartbrief/internal/model"
	"smartbrief/internal/repository"
	"smartbrief/pkg/content"
	"smartbrief/pkg/llm"
	"smartbrief/pkg/news"

	"github.com/gin-gonic/gin"
)

type ArticleStore interface {
	Save(article *model.SavedArticle) error
	GetByUser(userID int64) ([]model.SavedArticle, error)
	GetOwned(id, userID int64) (*model.SavedArticle, error)
	Delete(id, userID int64) (bool, error)
	UpdateAnalysis(id int64, summary, sentiment string) (*model.SavedArticle, error)
	CountAll() (int, error)
}

type NewsService interface {
	Trending(ctx context.Context, category string, refresh bool) ([]news.Article, error)
	Search(ctx context.Context, query string, refresh bool) ([]news.Article, error)
}

type ContentFetcher interface {
	Fetch(ctx context.Context, articleURL string) (string, error)
}

type ArticleHandler struct {
	store      ArticleStore
	newsSvc    NewsService
	fetcher    ContentFetcher
	summarizer llm.Summarizer
}

func NewArticleHandler(store ArticleStore, newsSvc NewsService, fetcher ContentFetcher, summarizer llm.Summarizer) *ArticleHandler {
	return &ArticleHandler{
		store:      store,
		newsSvc:    newsSvc,
		fetcher:    fetcher,
		summarizer: summarizer,
	}
}

func (h *ArticleHandler) GetTrending(c *gin.Context) {
	category := c.DefaultQuery("category", "general")
	refresh := queryBool(c, "refresh")

	articles, err := h.newsSvc.Trending(c.Request.Context(), category, refresh)
	if err != nil {
		slog.Error("error fetching trending news", "category", category, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching trending news"})
		return
	}

	c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) SearchNews(c *gin.Context) {
	query := c.Query("q")
	refresh := queryBool(c, "refresh")

	articles, err := h.newsSvc.Search(c.Request.Context(), query, refresh)
	if err != nil {
		if errors.Is(err, news.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
			return
		}
		slog.Error("error searching news", "query", query, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error searching for news"})
		return
	}

	c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ArticleURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide article URL"})
		return
	}

	analysis, err := h.analyze(c.Request.Context(), req.ArticleURL)
	if err != nil {
		h.renderAnalysisError(c, req.ArticleURL, err, true)
		return
	}

	c.JSON(http.StatusOK, SummarizeResponse{
		Summary:   analysis.Summary,
		Sentiment: analysis.Sentiment,
	})
}

func (h *ArticleHandler) GetSaved(c *gin.Context) {
	articles, err := h.store.GetByUser(auth.UserID(c))
	if err != nil {
		slog.Error("error fetching saved articles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching saved articles"})
		return
	}

	res := make([]SavedArticleResponse, 0, len(articles))
	for _, a := range articles {
		res = append(res, toSavedArticleResponse(a))
	}

	c.JSON(http.StatusOK, res)
}

func (h *ArticleHandler) SaveArticle(c *gin.Context) {
	var req SaveArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Title == "" || req.Source == "" || req.URL == "" || req.Summary == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, source, url and summary are required"})
		return
	}

	if req.PublishedAt.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publishedAt is required"})
		return
	}

	article := model.SavedArticle{
		UserID:      auth.UserID(c),
		Title:       req.Title,
		Source:      req.Source,
		URL:         req.URL,
		URLToImage:  req.URLToImage,
		Summary:     req.Summary,
		Sentiment:   req.Sentiment,
		PublishedAt: req.PublishedAt,
	}

	if err := h.store.Save(&article); err != nil {
		if errors.Is(err, repository.ErrAlreadySaved) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Article already saved"})
			return
		}
		slog.Error("error saving article", "url", req.URL, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, toSavedArticleResponse(article))
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article id"})
		return
	}

	deleted, err := h.store.Delete(id, auth.UserID(c))
	if err != nil {
		slog.Error("error deleting article", "article_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting article"})
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Article deleted"})
}

func (h *ArticleHandler) Resummarize(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article id"})
		return
	}

	article, err := h.store.GetOwned(id, auth.UserID(c))
	if err != nil {
		slog.Error("error fetching article", "article_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to re-summarize article"})
		return
	}

	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	analysis, err := h.analyze(c.Request.Context(), article.URL)
	if err != nil {
		h.renderAnalysisError(c, article.URL, err, false)
		return
	}

	updated, err := h.store.UpdateAnalysis(article.ID, analysis.Summary, analysis.Sentiment)
	if err != nil || updated == nil {
		slog.Error("error updating article analysis", "article_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to re-summarize article"})
		return
	}

	c.JSON(http.StatusOK, toSavedArticleResponse(*updated))
}

// analyze runs the fetch -> prompt -> summarize pipeline for a single URL.
func (h *ArticleHandler) analyze(ctx context.Context, articleURL string) (*llm.Analysis, error) {
	text, err := h.fetcher.Fetch(ctx, articleURL)
	if err != nil {
		return nil, err
	}

	return h.summarizer.Summarize(ctx, llm.BuildPrompt(text))
}

// renderAnalysisError maps pipeline failures to responses. A bad URL is a
// caller error only when the caller supplied it; on re-summarization the URL
// comes from the stored record, so the failure is the server's.
func (h *ArticleHandler) renderAnalysisError(c *gin.Context, articleURL string, err error, urlFromCaller bool) {
	slog.Error("error summarizing article", "url", articleURL, "error", err)

	switch {
	case urlFromCaller && errors.Is(err, content.ErrInvalidURL):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article URL"})
	case errors.Is(err, llm.ErrInvalidResponse):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid response from AI model"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize article"})
	}
}

func toSavedArticleResponse(a model.SavedArticle) SavedArticleResponse {
	return SavedArticleResponse{
		ID:           a.ID,
		Title:        a.Title,
		Source:       a.Source,
		URL:          a.URL,
		URLToImage:   a.URLToImage,
		Summary:      a.Summary,
		Sentiment:    a.Sentiment,
		PublishedAt:  a.PublishedAt.Format(time.RFC3339),
		SavedAt:      a.SavedAt.Format(time.RFC3339),
		SummarizedAt: a.SummarizedAt.Format(time.RFC3339),
	}
}

func queryBool(c *gin.Context, name string) bool {
	value, err := strconv.ParseBool(c.DefaultQuery(name, "false"))
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", c.Query(name), "error", err)
		return false
	}
	return value
}
