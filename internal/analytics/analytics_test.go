package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartbrief/internal/model"
	"smartbrief/pkg/news"

	"github.com/go-playground/assert/v2"
)

type fakeHeadlines struct {
	articles map[string][]news.Article
	err      error
	calls    int
}

func (f *fakeHeadlines) TopHeadlines(ctx context.Context, category string, pageSize int) ([]news.Article, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.articles[category], nil
}

var testNow = time.Date(2026, time.March, 10, 15, 0, 0, 0, time.Local)

func testAggregator(headlines *fakeHeadlines) *Aggregator {
	cache := news.NewCache(news.DefaultCacheTTL, func() time.Time { return testNow })
	return NewAggregator(headlines, cache, func() time.Time { return testNow })
}

func savedWithSentiments(sentiments []string) []model.SavedArticle {
	articles := make([]model.SavedArticle, len(sentiments))
	for i, s := range sentiments {
		articles[i] = model.SavedArticle{
			Title:        "Untitled item",
			Source:       "Example Wire",
			Sentiment:    s,
			SummarizedAt: testNow,
		}
	}
	return articles
}

func TestSentimentOverviewPercentages(t *testing.T) {
	sentiments := []string{
		"POSITIVE", "POSITIVE", "POSITIVE", "POSITIVE", "POSITIVE", "POSITIVE",
		"NEGATIVE", "NEGATIVE",
		"NEUTRAL", "NEUTRAL",
	}

	agg := testAggregator(&fakeHeadlines{})
	report := agg.Build(context.Background(), savedWithSentiments(sentiments), 10)

	assert.Equal(t, 60, report.Summary.SentimentOverview.PositivePercent)
	assert.Equal(t, 20, report.Summary.SentimentOverview.NegativePercent)
}

func TestSentimentOverviewDropsUnknownValues(t *testing.T) {
	agg := testAggregator(&fakeHeadlines{})
	report := agg.Build(context.Background(), savedWithSentiments([]string{"POSITIVE", "MIXED", "MIXED", "MIXED"}), 4)

	// Unknown labels are not counted anywhere, but the denominator stays
	// the full saved count.
	assert.Equal(t, 25, report.Summary.SentimentOverview.PositivePercent)
	assert.Equal(t, 0, report.Summary.SentimentOverview.NegativePercent)
}

func TestSentimentOverviewEmpty(t *testing.T) {
	agg := testAggregator(&fakeHeadlines{})
	report := agg.Build(context.Background(), nil, 0)

	assert.Equal(t, 0, report.Summary.SentimentOverview.PositivePercent)
	assert.Equal(t, 0, report.Summary.SentimentOverview.NegativePercent)
}

func TestQuickStats(t *testing.T) {
	saved := []model.SavedArticle{
		{Title: "Tech Giant Unveils AI Chip", Source: "Example Wire", SummarizedAt: testNow},
		{Title: "Another Tech Chip Launch", Source: "Daily Feed", SummarizedAt: testNow},
		{Title: "Tech Giant Unveils AI Chip", Source: "Example Wire", SummarizedAt: testNow},
	}

	agg := testAggregator(&fakeHeadlines{})
	report := agg.Build(context.Background(), saved, 42)

	assert.Equal(t, 42, report.QuickStats.TotalArticles)
	assert.Equal(t, 3, report.QuickStats.SavedItems)
	assert.Equal(t, 2, report.QuickStats.Sources)
	// tech, giant, unveils, chip, another, launch; "AI" is too short.
	assert.Equal(t, 6, report.QuickStats.Keywords)
}

func TestKeywordCountFiltersStopWords(t *testing.T) {
	saved := []model.SavedArticle{
		{Title: "The markets could have been calmer", SummarizedAt: testNow},
	}

	agg := testAggregator(&fakeHeadlines{})
	report := agg.Build(context.Background(), saved, 1)

	// "the", "could", "have", "been" are stop words; "markets" and "calmer"
	// survive the length filter.
	assert.Equal(t, 2, report.QuickStats.Keywords)
}

func TestAddedTodayAndYesterday(t *testing.T) {
	saved := []model.SavedArticle{
		{Title: "a", SummarizedAt: testNow},
		{Title: "b", SummarizedAt: testNow.Add(-2 * time.Hour)},
		{Title: "c", SummarizedAt: testNow.AddDate(0, 0, -1)},
		{Title: "d", SummarizedAt: testNow.AddDate(0, 0, -3)},
	}

	agg := testAggregator(&fakeHeadlines{})
	report := agg.Build(context.Background(), saved, 4)

	assert.Equal(t, 2, report.Summary.ArticlesAddedToday)
	assert.Equal(t, 1, report.Summary.ArticlesAddedToday-report.Summary.ChangeFromYesterday)
	assert.Equal(t, 1, report.Summary.ChangeFromYesterday)
}

func TestCategoryAnalyticsRealSplit(t *testing.T) {
	saved := []model.SavedArticle{
		{Title: "Tech layoffs continue", Sentiment: "NEGATIVE", SummarizedAt: testNow},
		{Title: "Tech hiring rebounds", Sentiment: "POSITIVE", SummarizedAt: testNow},
		{Title: "New software release", Sentiment: "POSITIVE", SummarizedAt: testNow},
		{Title: "Software rewrite ships", Sentiment: "odd-label", SummarizedAt: testNow},
	}

	headlines := &fakeHeadlines{articles: map[string][]news.Article{
		"technology": make([]news.Article, 12),
	}}

	agg := testAggregator(headlines)
	report := agg.Build(context.Background(), saved, 4)

	assert.Equal(t, 4, len(report.CategoryAnalytics))

	tech := report.CategoryAnalytics[0]
	assert.Equal(t, "technology", tech.Category)
	assert.Equal(t, 12, tech.ArticleCount)
	// 2 positive, 1 negative, 1 unknown coerced to neutral.
	assert.Equal(t, 50, tech.Sentiments.Positive)
	assert.Equal(t, 25, tech.Sentiments.Neutral)
	assert.Equal(t, 25, tech.Sentiments.Negative)
	assert.Equal(t, 100, tech.Sentiments.Positive+tech.Sentiments.Neutral+tech.Sentiments.Negative)
}

func TestCategoryAnalyticsFallbackSplit(t *testing.T) {
	agg := testAggregator(&fakeHeadlines{})
	report := agg.Build(context.Background(), nil, 0)

	for _, category := range report.CategoryAnalytics {
		assert.Equal(t, 50, category.Sentiments.Positive)
		assert.Equal(t, 30, category.Sentiments.Neutral)
		assert.Equal(t, 20, category.Sentiments.Negative)
	}
}

func TestCategoryAnalyticsFetchFailure(t *testing.T) {
	headlines := &fakeHeadlines{err: errors.New("upstream down")}

	agg := testAggregator(headlines)
	report := agg.Build(context.Background(), nil, 0)

	// A dead index never fails the report; counts degrade to zero.
	assert.Equal(t, 4, len(report.CategoryAnalytics))
	for _, category := range report.CategoryAnalytics {
		assert.Equal(t, 0, category.ArticleCount)
		assert.Equal(t, 50, category.Sentiments.Positive)
	}
}

func TestCategoryAnalyticsFetchFailureOverridesRealSplit(t *testing.T) {
	saved := []model.SavedArticle{
		{Title: "Tech layoffs continue", Sentiment: "NEGATIVE", SummarizedAt: testNow},
		{Title: "Tech outage drags on", Sentiment: "NEGATIVE", SummarizedAt: testNow},
	}
	headlines := &fakeHeadlines{err: errors.New("upstream down")}

	agg := testAggregator(headlines)
	report := agg.Build(context.Background(), saved, 2)

	// The saved articles classify as technology with a 0/0/100 split, but a
	// failed fetch replaces the real split with the fallback distribution.
	tech := report.CategoryAnalytics[0]
	assert.Equal(t, "technology", tech.Category)
	assert.Equal(t, 0, tech.ArticleCount)
	assert.Equal(t, 50, tech.Sentiments.Positive)
	assert.Equal(t, 30, tech.Sentiments.Neutral)
	assert.Equal(t, 20, tech.Sentiments.Negative)
}

func TestCategoryCountsUseCache(t *testing.T) {
	headlines := &fakeHeadlines{articles: map[string][]news.Article{
		"technology": make([]news.Article, 5),
		"business":   make([]news.Article, 5),
		"health":     make([]news.Article, 5),
		"science":    make([]news.Article, 5),
	}}

	agg := testAggregator(headlines)

	agg.Build(context.Background(), nil, 0)
	assert.Equal(t, 4, headlines.calls)

	// Within the TTL the second report is served from the cache.
	agg.Build(context.Background(), nil, 0)
	assert.Equal(t, 4, headlines.calls)
}
