package analytics

import (
	"context"
	"log/slog"
	"math"
	"regexp"
	"strings"
	"time"

	"smartbrief/internal/model"
	"smartbrief/pkg/news"
)

// Headlines is the slice of the news index the aggregator needs for live
// category counts.
type Headlines interface {
	TopHeadlines(ctx context.Context, category string, pageSize int) ([]news.Article, error)
}

const categoryPageSize = 20

// Fallback split shown when a category has no classified articles, so the
// dashboard never renders an empty chart.
const (
	fallbackPositive = 50
	fallbackNeutral  = 30
	fallbackNegative = 20
)

type Report struct {
	Summary           Summary         `json:"summary"`
	QuickStats        QuickStats      `json:"quickStats"`
	CategoryAnalytics []CategoryStats `json:"categoryAnalytics"`
}

type Summary struct {
	ArticlesAddedToday  int               `json:"articlesAddedToday"`
	ChangeFromYesterday int               `json:"changeFromYesterday"`
	SentimentOverview   SentimentOverview `json:"sentimentOverview"`
}

type SentimentOverview struct {
	PositivePercent int `json:"positivePercent"`
	NegativePercent int `json:"negativePercent"`
}

type QuickStats struct {
	TotalArticles int `json:"totalArticles"`
	SavedItems    int `json:"savedItems"`
	Sources       int `json:"sources"`
	Keywords      int `json:"keywords"`
}

type CategoryStats struct {
	Category     string         `json:"category"`
	ArticleCount int            `json:"articleCount"`
	Sentiments   SentimentSplit `json:"sentiments"`
}

type SentimentSplit struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"from": {}, "as": {}, "is": {}, "was": {}, "are": {}, "were": {},
	"been": {}, "be": {}, "have": {}, "has": {}, "had": {}, "do": {},
	"does": {}, "did": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "may": {}, "might": {}, "can": {},
}

var nonWordRe = regexp.MustCompile(`\W+`)

type Aggregator struct {
	headlines Headlines
	cache     *news.Cache
	now       func() time.Time
}

func NewAggregator(headlines Headlines, cache *news.Cache, now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}
	return &Aggregator{headlines: headlines, cache: cache, now: now}
}

// Build computes the dashboard projection over a user's saved articles.
// totalArticles is the platform-wide count across all users. A failed
// category fetch degrades that category to zero articles and the fallback
// split instead of failing the whole report.
func (a *Aggregator) Build(ctx context.Context, saved []model.SavedArticle, totalArticles int) Report {
	totalSaved := len(saved)

	sources := make(map[string]struct{})
	for _, article := range saved {
		sources[article.Source] = struct{}{}
	}

	today := dayOf(a.now())
	yesterday := today.AddDate(0, 0, -1)

	var addedToday, addedYesterday int
	for _, article := range saved {
		switch dayOf(article.SummarizedAt) {
		case today:
			addedToday++
		case yesterday:
			addedYesterday++
		}
	}

	// Unrecognized sentiment values are dropped from the global tally, but
	// percentages still divide by the total saved count.
	var positive, negative int
	for _, article := range saved {
		switch strings.ToUpper(article.Sentiment) {
		case model.SentimentPositive:
			positive++
		case model.SentimentNegative:
			negative++
		}
	}

	return Report{
		Summary: Summary{
			ArticlesAddedToday:  addedToday,
			ChangeFromYesterday: addedToday - addedYesterday,
			SentimentOverview: SentimentOverview{
				PositivePercent: percent(positive, totalSaved),
				NegativePercent: percent(negative, totalSaved),
			},
		},
		QuickStats: QuickStats{
			TotalArticles: totalArticles,
			SavedItems:    totalSaved,
			Sources:       len(sources),
			Keywords:      keywordCount(saved),
		},
		CategoryAnalytics: a.categoryStats(ctx, saved),
	}
}

func (a *Aggregator) categoryStats(ctx context.Context, saved []model.SavedArticle) []CategoryStats {
	tallies := make(map[string]*sentimentTally)
	for _, article := range saved {
		category, ok := classifyTitle(article.Title)
		if !ok {
			continue
		}

		tally := tallies[category]
		if tally == nil {
			tally = &sentimentTally{}
			tallies[category] = tally
		}

		// Unlike the global overview, unrecognized values count as neutral
		// here so classified articles always contribute to the split.
		switch strings.ToUpper(article.Sentiment) {
		case model.SentimentPositive:
			tally.positive++
		case model.SentimentNegative:
			tally.negative++
		default:
			tally.neutral++
		}
		tally.total++
	}

	stats := make([]CategoryStats, 0, len(categoryRules))
	for _, rule := range categoryRules {
		count, ok := a.categoryCount(ctx, rule.name)

		// A failed fetch degrades the whole category: zero count and the
		// fallback split, even when saved articles classified into it.
		split := splitFor(tallies[rule.name])
		if !ok {
			split = splitFor(nil)
		}

		stats = append(stats, CategoryStats{
			Category:     rule.name,
			ArticleCount: count,
			Sentiments:   split,
		})
	}
	return stats
}

func (a *Aggregator) categoryCount(ctx context.Context, category string) (int, bool) {
	articles, ok := a.cache.Get(category)
	if !ok {
		fetched, err := a.headlines.TopHeadlines(ctx, category, categoryPageSize)
		if err != nil {
			slog.Error("error fetching category headlines", "category", category, "error", err)
			return 0, false
		}
		a.cache.Put(category, fetched)
		articles = fetched
	}
	return len(articles), true
}

type sentimentTally struct {
	positive int
	neutral  int
	negative int
	total    int
}

func splitFor(tally *sentimentTally) SentimentSplit {
	if tally == nil || tally.total == 0 {
		return SentimentSplit{
			Positive: fallbackPositive,
			Neutral:  fallbackNeutral,
			Negative: fallbackNegative,
		}
	}

	positive := percent(tally.positive, tally.total)
	neutral := percent(tally.neutral, tally.total)

	// Derive negative so the three always sum to exactly 100.
	return SentimentSplit{
		Positive: positive,
		Neutral:  neutral,
		Negative: 100 - positive - neutral,
	}
}

func keywordCount(saved []model.SavedArticle) int {
	seen := make(map[string]struct{})
	for _, article := range saved {
		for _, word := range nonWordRe.Split(strings.ToLower(article.Title), -1) {
			if len(word) <= 3 {
				continue
			}
			if _, stop := stopWords[word]; stop {
				continue
			}
			seen[word] = struct{}{}
		}
	}
	return len(seen)
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func dayOf(t time.Time) time.Time {
	year, month, day := t.Local().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
