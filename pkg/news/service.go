package news

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

var (
	// ErrUnavailable absorbs every upstream failure so provider error
	// payloads never reach API callers.
	ErrUnavailable = errors.New("error fetching news")
	ErrEmptyQuery  = errors.New("search query is required")
)

const (
	defaultPageSize = 100

	// Shuffling a near-empty page just reorders the same screenful.
	shuffleThreshold = 20
)

type Service struct {
	index Index
	rng   *rand.Rand
}

func NewService(index Index, rng *rand.Rand) *Service {
	return &Service{index: index, rng: rng}
}

// Trending returns top headlines for a category. A refresh request shuffles
// the page so repeated calls surface different items without re-querying.
func (s *Service) Trending(ctx context.Context, category string, refresh bool) ([]Article, error) {
	if category == "" {
		category = "general"
	}

	articles, err := s.index.TopHeadlines(ctx, category, defaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if refresh && len(articles) > shuffleThreshold {
		s.shuffle(articles)
	}

	return articles, nil
}

// Search returns keyword matches sorted by relevance, or by recency when a
// refresh is requested. The sort switch is what varies results on refresh;
// search results are never shuffled.
func (s *Service) Search(ctx context.Context, query string, refresh bool) ([]Article, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	sortBy := "popularity"
	if refresh {
		sortBy = "publishedAt"
	}

	articles, err := s.index.Everything(ctx, query, sortBy, defaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return articles, nil
}

// shuffle is an in-place Fisher-Yates permutation.
func (s *Service) shuffle(articles []Article) {
	for i := len(articles) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		articles[i], articles[j] = articles[j], articles[i]
	}
}
