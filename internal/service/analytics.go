package service

import (
	"context"
	"sort"

	"github.com/Anandhu362/Url-shorten-website/internal/domain"
	"github.com/Anandhu362/Url-shorten-website/pkg/detector"
)

// GetAnalytics reduces a link's click log into the dashboard aggregate.
// Pure read: the same stored events always produce the same aggregate.
func (s *ShortenerService) GetAnalytics(ctx context.Context, shortID string) (*domain.Analytics, error) {
	link, err := s.Resolve(ctx, shortID)
	if err != nil {
		return nil, err
	}

	events, err := s.analyticsRepo.ListEvents(ctx, link.ID)
	if err != nil {
		return nil, err
	}

	return &domain.Analytics{
		TotalClicks:      link.Clicks,
		OriginalURL:      link.OriginalURL,
		ShortURL:         link.ShortURL,
		CreatedAt:        link.CreatedAt,
		ClickChartData:   clicksByDate(events),
		DeviceChartData:  clicksByDevice(events),
		WorldMapData:     clicksByCountry(events),
		BrowserChartData: clicksByBrowser(events),
	}, nil
}

func clicksByDate(events []domain.ClickEvent) []domain.DateClicks {
	counts := make(map[string]int64)
	for _, ev := range events {
		date := ev.Timestamp.UTC().Format("2006-01-02")
		counts[date]++
	}

	out := make([]domain.DateClicks, 0, len(counts))
	for date, n := range counts {
		out = append(out, domain.DateClicks{Date: date, Clicks: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func clicksByDevice(events []domain.ClickEvent) []domain.NameClicks {
	counts := make(map[string]int64)
	for _, ev := range events {
		device := ev.Device
		if device == "" {
			device = "Unknown"
		}
		counts[device]++
	}
	return sortedNameClicks(counts)
}

// clicksByCountry groups by the (country, code) pair, not the name
// alone, so same-named entries with different codes stay separate.
func clicksByCountry(events []domain.ClickEvent) []domain.CountryClicks {
	type key struct{ name, code string }
	counts := make(map[key]int64)
	for _, ev := range events {
		k := key{name: ev.Country, code: ev.CountryCode}
		if k.name == "" {
			k.name = "Unknown"
		}
		if k.code == "" {
			k.code = "XX"
		}
		counts[k]++
	}

	out := make([]domain.CountryClicks, 0, len(counts))
	for k, n := range counts {
		out = append(out, domain.CountryClicks{Name: k.name, Code: k.code, Clicks: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// clicksByBrowser re-parses each stored user-agent string on every
// aggregation; browser names are deliberately not cached at write time.
func clicksByBrowser(events []domain.ClickEvent) []domain.NameClicks {
	counts := make(map[string]int64)
	for _, ev := range events {
		counts[detector.BrowserName(ev.UserAgent)]++
	}
	return sortedNameClicks(counts)
}

func sortedNameClicks(counts map[string]int64) []domain.NameClicks {
	out := make([]domain.NameClicks, 0, len(counts))
	for name, n := range counts {
		out = append(out, domain.NameClicks{Name: name, Clicks: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
