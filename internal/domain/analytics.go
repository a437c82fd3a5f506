package domain

import "time"

const (
	DeviceDesktop = "Desktop"
	DeviceMobile  = "Mobile"
	DeviceTablet  = "Tablet"
)

// ClickEvent is one recorded redirect. The user agent is stored raw;
// the browser name is derived from it at aggregation time.
type ClickEvent struct {
	ID          int64     `json:"-"`
	LinkID      int64     `json:"-"`
	Timestamp   time.Time `json:"timestamp"`
	IPAddress   string    `json:"ipAddress"`
	UserAgent   string    `json:"userAgent"`
	Device      string    `json:"device"`
	Country     string    `json:"country"`
	CountryCode string    `json:"countryCode"`
}

type DateClicks struct {
	Date   string `json:"date"`
	Clicks int64  `json:"clicks"`
}

type NameClicks struct {
	Name   string `json:"name"`
	Clicks int64  `json:"clicks"`
}

type CountryClicks struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Clicks int64  `json:"clicks"`
}

// Analytics is the aggregate served to the dashboard. It is recomputed
// from the raw click events on every request; nothing here is cached.
type Analytics struct {
	TotalClicks      int64           `json:"totalClicks"`
	OriginalURL      string          `json:"originalUrl"`
	ShortURL         string          `json:"shortUrl"`
	CreatedAt        time.Time       `json:"createdAt"`
	ClickChartData   []DateClicks    `json:"clickChartData"`
	DeviceChartData  []NameClicks    `json:"deviceChartData"`
	WorldMapData     []CountryClicks `json:"worldMapData"`
	BrowserChartData []NameClicks    `json:"browserChartData"`
}
