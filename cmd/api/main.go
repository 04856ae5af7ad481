package main

import (
	"log"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"smartbrief/db"
	"smartbrief/internal/analytics"
	"smartbrief/internal/auth"
	"smartbrief/internal/handler"
	"smartbrief/internal/repository"
	"smartbrief/pkg/content"
	"smartbrief/pkg/llm"
	"smartbrief/pkg/news"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	tokens, err := auth.NewManager(os.Getenv("JWT_SECRET"), auth.DefaultTokenTTL)
	if err != nil {
		log.Fatalf("error configuring auth: %v", err)
	}

	newsClient := news.NewNewsAPIClient(os.Getenv("NEWS_API_KEY"))
	newsService := news.NewService(newsClient, rand.New(rand.NewSource(time.Now().UnixNano())))
	categoryCache := news.NewCache(news.DefaultCacheTTL, nil)

	articleRepo := repository.NewArticleRepository(db.DB)
	userRepo := repository.NewUserRepository(db.DB)

	aggregator := analytics.NewAggregator(newsClient, categoryCache, nil)

	articleHandler := handler.NewArticleHandler(articleRepo, newsService, content.NewFetcher(), newSummarizer())
	analyticsHandler := handler.NewAnalyticsHandler(articleRepo, aggregator)
	authHandler := handler.NewAuthHandler(userRepo, tokens)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "x-auth-token"},
	}))

	authRequired := tokens.Middleware()

	authGroup := r.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/user", authRequired, authHandler.GetUser)

	articles := r.Group("/api/articles")
	articles.GET("/trending", articleHandler.GetTrending)
	articles.GET("/search", articleHandler.SearchNews)
	articles.POST("/summarize", articleHandler.Summarize)
	articles.GET("/saved", authRequired, articleHandler.GetSaved)
	articles.POST("/save", authRequired, articleHandler.SaveArticle)
	articles.DELETE("/:id", authRequired, articleHandler.DeleteArticle)
	articles.PUT("/resummarize/:id", authRequired, articleHandler.Resummarize)
	articles.GET("/analytics", authRequired, analyticsHandler.GetDashboard)

	r.GET("/health", analyticsHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err = r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func newSummarizer() llm.Summarizer {
	switch strings.ToLower(os.Getenv("LLM_PROVIDER")) {
	case "openai":
		return llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
	case "anthropic":
		return llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"))
	default:
		return llm.NewGeminiClient(os.Getenv("GEMINI_API_KEY"))
	}
}
