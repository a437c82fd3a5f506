package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Anandhu362/Url-shorten-website/internal/domain"
)

type AnalyticsRepository struct {
	db *pgxpool.Pool
}

func NewAnalyticsRepository(db *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// RecordClick appends one click event and bumps the link's counter in
// a single transaction, so a reader can never observe one without the
// other and concurrent redirects on the same link lose no increments.
func (r *AnalyticsRepository) RecordClick(ctx context.Context, event *domain.ClickEvent) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	insertQuery := `
		INSERT INTO url_clicks (url_id, clicked_at, ip_address, user_agent, device, country, country_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err = tx.QueryRow(ctx, insertQuery,
		event.LinkID,
		event.Timestamp,
		event.IPAddress,
		event.UserAgent,
		event.Device,
		event.Country,
		event.CountryCode,
	).Scan(&event.ID)
	if err != nil {
		return err
	}

	updateQuery := `UPDATE urls SET clicks = clicks + 1, updated_at = NOW() WHERE id = $1`
	if _, err := tx.Exec(ctx, updateQuery, event.LinkID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ListEvents returns the full event log for a link in append order.
// The aggregator reduces this in memory; no aggregate is persisted.
func (r *AnalyticsRepository) ListEvents(ctx context.Context, linkID int64) ([]domain.ClickEvent, error) {
	query := `
		SELECT id, url_id, clicked_at, ip_address, user_agent, device, country, country_code
		FROM url_clicks
		WHERE url_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, linkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.ClickEvent
	for rows.Next() {
		var ev domain.ClickEvent
		err := rows.Scan(
			&ev.ID,
			&ev.LinkID,
			&ev.Timestamp,
			&ev.IPAddress,
			&ev.UserAgent,
			&ev.Device,
			&ev.Country,
			&ev.CountryCode,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}
