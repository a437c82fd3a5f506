package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Anandhu362/Url-shorten-website/internal/domain"
	"github.com/Anandhu362/Url-shorten-website/internal/geo"
	"github.com/Anandhu362/Url-shorten-website/pkg/detector"
	"github.com/Anandhu362/Url-shorten-website/pkg/generator"
)

type URLRepository interface {
	Create(ctx context.Context, link *domain.ShortLink) error
	GetByShortID(ctx context.Context, shortID string) (*domain.ShortLink, error)
	GetByOriginalURL(ctx context.Context, originalURL string) (*domain.ShortLink, error)
	List(ctx context.Context) ([]domain.ShortLink, error)
}

type AnalyticsRepository interface {
	RecordClick(ctx context.Context, event *domain.ClickEvent) error
	ListEvents(ctx context.Context, linkID int64) ([]domain.ClickEvent, error)
}

// GeoResolver is the best-effort country lookup. Implementations never
// fail; degraded lookups come back as geo.Unknown.
type GeoResolver interface {
	Resolve(ctx context.Context, ip string) geo.Location
}

type ShortenerService struct {
	urlRepo       URLRepository
	analyticsRepo AnalyticsRepository
	geoResolver   GeoResolver
	baseURL       string
}

func NewShortenerService(urlRepo URLRepository, analyticsRepo AnalyticsRepository, geoResolver GeoResolver, baseURL string) *ShortenerService {
	return &ShortenerService{
		urlRepo:       urlRepo,
		analyticsRepo: analyticsRepo,
		geoResolver:   geoResolver,
		baseURL:       baseURL,
	}
}

// ShortenURL creates a short link for req.OriginalURL. When the URL
// was shortened before and no custom alias is requested, the existing
// record is returned with created=false instead of minting a second
// id. A taken alias is domain.ErrAliasTaken.
func (s *ShortenerService) ShortenURL(ctx context.Context, req *domain.ShortenRequest) (link *domain.ShortLink, created bool, err error) {
	if req.CustomAlias != "" {
		_, err := s.urlRepo.GetByShortID(ctx, req.CustomAlias)
		if err == nil {
			return nil, false, domain.ErrAliasTaken
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, false, fmt.Errorf("failed to check alias: %w", err)
		}
	}

	existing, err := s.urlRepo.GetByOriginalURL(ctx, req.OriginalURL)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to check original url: %w", err)
	}

	shortID := req.CustomAlias
	maxRetries := 3

	for i := 0; i < maxRetries; i++ {
		if shortID == "" {
			shortID, err = generator.GenerateShortID()
			if err != nil {
				return nil, false, err
			}
		}

		link := &domain.ShortLink{
			OriginalURL: req.OriginalURL,
			ShortID:     shortID,
			ShortURL:    s.baseURL + "/" + shortID,
		}
		if req.CustomAlias != "" {
			alias := req.CustomAlias
			link.CustomAlias = &alias
		}

		err = s.urlRepo.Create(ctx, link)
		if err == nil {
			return link, true, nil
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if req.CustomAlias != "" {
				// Lost a race with another writer on the alias.
				return nil, false, domain.ErrAliasTaken
			}
			shortID = ""
			continue
		}

		return nil, false, fmt.Errorf("failed to create short url: %w", err)
	}

	return nil, false, fmt.Errorf("failed to generate short id after %d retries: %w", maxRetries, err)
}

// Resolve looks up a short id. Unknown ids are domain.ErrNotFound,
// which callers treat as an expected outcome rather than a fault.
func (s *ShortenerService) Resolve(ctx context.Context, shortID string) (*domain.ShortLink, error) {
	link, err := s.urlRepo.GetByShortID(ctx, shortID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve short id: %w", err)
	}
	return link, nil
}

// ResolveAndRecord runs the full redirect pipeline: resolve the short
// id, classify the client, look up its geography best-effort, then
// durably record the click. A recording failure is returned to the
// caller so the redirect is withheld; a geolocation failure never is.
func (s *ShortenerService) ResolveAndRecord(ctx context.Context, shortID, clientIP, userAgent string) (*domain.ShortLink, error) {
	link, err := s.Resolve(ctx, shortID)
	if err != nil {
		return nil, err
	}

	device := detector.DetectDeviceType(userAgent)

	ip := geo.NormalizeIP(clientIP)
	location := s.geoResolver.Resolve(ctx, ip)

	if ip == "" {
		ip = "Unknown"
	}

	event := &domain.ClickEvent{
		LinkID:      link.ID,
		Timestamp:   time.Now().UTC(),
		IPAddress:   ip,
		UserAgent:   userAgent,
		Device:      device,
		Country:     location.Country,
		CountryCode: location.CountryCode,
	}

	if err := s.analyticsRepo.RecordClick(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to record click: %w", err)
	}

	link.Clicks++
	return link, nil
}

// CheckOriginalURL reports whether an original URL has already been
// shortened.
func (s *ShortenerService) CheckOriginalURL(ctx context.Context, originalURL string) (*domain.ShortLink, error) {
	link, err := s.urlRepo.GetByOriginalURL(ctx, originalURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to check original url: %w", err)
	}
	return link, nil
}

// CheckShortID reports whether a short id exists.
func (s *ShortenerService) CheckShortID(ctx context.Context, shortID string) (*domain.ShortLink, error) {
	return s.Resolve(ctx, shortID)
}

// ListURLs returns every record, newest first.
func (s *ShortenerService) ListURLs(ctx context.Context) ([]domain.ShortLink, error) {
	links, err := s.urlRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list urls: %w", err)
	}
	return links, nil
}
