package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Anandhu362/Url-shorten-website/internal/domain"
)

type URLRepository struct {
	db *pgxpool.Pool
}

func NewURLRepository(db *pgxpool.Pool) *URLRepository {
	return &URLRepository{db: db}
}

const shortLinkColumns = `id, original_url, short_id, short_url, custom_alias, clicks, created_at, updated_at`

func (r *URLRepository) Create(ctx context.Context, link *domain.ShortLink) error {
	query := `
		INSERT INTO urls (original_url, short_id, short_url, custom_alias)
		VALUES ($1, $2, $3, $4)
		RETURNING id, clicks, created_at, updated_at
	`

	return r.db.QueryRow(ctx, query,
		link.OriginalURL,
		link.ShortID,
		link.ShortURL,
		link.CustomAlias,
	).Scan(&link.ID, &link.Clicks, &link.CreatedAt, &link.UpdatedAt)
}

func (r *URLRepository) GetByShortID(ctx context.Context, shortID string) (*domain.ShortLink, error) {
	query := `SELECT ` + shortLinkColumns + ` FROM urls WHERE short_id = $1`

	return r.scanOne(r.db.QueryRow(ctx, query, shortID))
}

// GetByOriginalURL returns the oldest record for an original URL.
// original_url is not unique at the storage level; creation-time
// de-duplication keeps duplicates from appearing in practice.
func (r *URLRepository) GetByOriginalURL(ctx context.Context, originalURL string) (*domain.ShortLink, error) {
	query := `SELECT ` + shortLinkColumns + ` FROM urls WHERE original_url = $1 ORDER BY created_at LIMIT 1`

	return r.scanOne(r.db.QueryRow(ctx, query, originalURL))
}

func (r *URLRepository) List(ctx context.Context) ([]domain.ShortLink, error) {
	query := `SELECT ` + shortLinkColumns + ` FROM urls ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []domain.ShortLink
	for rows.Next() {
		var link domain.ShortLink
		if err := scanLink(rows, &link); err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	return links, rows.Err()
}

func (r *URLRepository) scanOne(row pgx.Row) (*domain.ShortLink, error) {
	var link domain.ShortLink
	if err := scanLink(row, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

func scanLink(row pgx.Row, link *domain.ShortLink) error {
	return row.Scan(
		&link.ID,
		&link.OriginalURL,
		&link.ShortID,
		&link.ShortURL,
		&link.CustomAlias,
		&link.Clicks,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
}
