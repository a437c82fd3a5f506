package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Anandhu362/Url-shorten-website/internal/logger"
)

// Location is an approximate country classification for a client IP.
type Location struct {
	Country     string
	CountryCode string
}

var (
	Local   = Location{Country: "Local", CountryCode: "LC"}
	Unknown = Location{Country: "Unknown", CountryCode: "XX"}
)

// Client resolves client IPs against an ip-api.com compatible service.
// It sits on the redirect hot path, so every lookup is bounded by the
// configured timeout and every failure degrades to Unknown instead of
// surfacing an error.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

func NewClient(apiURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(apiURL, "/"),
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type lookupResponse struct {
	Status      string `json:"status"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
}

// Resolve maps an already-normalized IP to a Location. Loopback and
// empty addresses short-circuit to Local without an outbound call.
func (c *Client) Resolve(ctx context.Context, ip string) Location {
	if IsLocal(ip) {
		return Local
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/json/%s?fields=status,country,countryCode", c.baseURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Unknown
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.FromContext(ctx).Warn("Geolocation lookup failed",
			"ip", ip,
			"error", err.Error(),
		)
		return Unknown
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.FromContext(ctx).Warn("Geolocation lookup failed",
			"ip", ip,
			"status", resp.StatusCode,
		)
		return Unknown
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Status != "success" {
		return Unknown
	}

	return Location{Country: body.Country, CountryCode: body.CountryCode}
}

// NormalizeIP takes the raw client address as it arrives from the
// request (possibly a comma-separated forwarded-for chain, possibly an
// IPv6-mapped IPv4 address) and reduces it to the originating IP.
func NormalizeIP(raw string) string {
	ip := strings.TrimSpace(raw)
	if idx := strings.Index(ip, ","); idx != -1 {
		ip = strings.TrimSpace(ip[:idx])
	}
	ip = strings.TrimPrefix(ip, "::ffff:")
	return ip
}

// IsLocal reports whether the address is loopback or absent and
// therefore not worth an outbound lookup.
func IsLocal(ip string) bool {
	switch ip {
	case "", "::1", "127.0.0.1", "localhost":
		return true
	}
	return false
}
