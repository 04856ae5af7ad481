package repository

import (
	"database/sql"
	"errors"

	"smartbrief/internal/model"
)

// ErrAlreadySaved marks the unique (user_id, url) violation so handlers can
// distinguish it from other storage failures.
var ErrAlreadySaved = errors.New("article already saved")

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Save(article *model.SavedArticle) error {
	if article.Sentiment == "" {
		article.Sentiment = model.SentimentNeutral
	}

	err := r.db.QueryRow(`
		INSERT INTO saved_article(user_id, title, source, url, url_to_image, summary, sentiment, published_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, url) DO NOTHING
		RETURNING id, saved_at, summarized_at
	`, article.UserID, article.Title, article.Source, article.URL, article.URLToImage,
		article.Summary, article.Sentiment, article.PublishedAt,
	).Scan(&article.ID, &article.SavedAt, &article.SummarizedAt)

	if err == sql.ErrNoRows {
		return ErrAlreadySaved
	}

	return err
}

func (r *ArticleRepository) GetByUser(userID int64) ([]model.SavedArticle, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, title, source, url, url_to_image, summary, sentiment, published_at, saved_at, summarized_at
		FROM saved_article
		WHERE user_id = $1
		ORDER BY saved_at DESC
	`, userID)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []model.SavedArticle
	for rows.Next() {
		var a model.SavedArticle
		err := rows.Scan(&a.ID, &a.UserID, &a.Title, &a.Source, &a.URL, &a.URLToImage,
			&a.Summary, &a.Sentiment, &a.PublishedAt, &a.SavedAt, &a.SummarizedAt)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

func (r *ArticleRepository) GetOwned(id, userID int64) (*model.SavedArticle, error) {
	var a model.SavedArticle
	err := r.db.QueryRow(`
		SELECT id, user_id, title, source, url, url_to_image, summary, sentiment, published_at, saved_at, summarized_at
		FROM saved_article
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(&a.ID, &a.UserID, &a.Title, &a.Source, &a.URL, &a.URLToImage,
		&a.Summary, &a.Sentiment, &a.PublishedAt, &a.SavedAt, &a.SummarizedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &a, nil
}

// Delete removes the article only if it belongs to the caller. The bool
// reports whether a row was actually deleted.
func (r *ArticleRepository) Delete(id, userID int64) (bool, error) {
	res, err := r.db.Exec(`
		DELETE FROM saved_article WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *ArticleRepository) UpdateAnalysis(id int64, summary, sentiment string) (*model.SavedArticle, error) {
	var a model.SavedArticle
	err := r.db.QueryRow(`
		UPDATE saved_article
		SET summary = $1, sentiment = $2, summarized_at = now()
		WHERE id = $3
		RETURNING id, user_id, title, source, url, url_to_image, summary, sentiment, published_at, saved_at, summarized_at
	`, summary, sentiment, id).Scan(&a.ID, &a.UserID, &a.Title, &a.Source, &a.URL, &a.URLToImage,
		&a.Summary, &a.Sentiment, &a.PublishedAt, &a.SavedAt, &a.SummarizedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *ArticleRepository) CountAll() (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM saved_article
	`).Scan(&total)
	return total, err
}
