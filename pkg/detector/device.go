package detector

import (
	"github.com/mileusna/useragent"

	"github.com/Anandhu362/Url-shorten-website/internal/domain"
)

// DetectDeviceType buckets a raw user-agent string into Desktop,
// Mobile or Tablet. Anything unrecognized (bots, empty strings,
// malformed input) falls back to Desktop; classification never fails.
func DetectDeviceType(rawUA string) string {
	ua := useragent.Parse(rawUA)

	switch {
	case ua.Mobile:
		return domain.DeviceMobile
	case ua.Tablet:
		return domain.DeviceTablet
	default:
		return domain.DeviceDesktop
	}
}

// BrowserName extracts the browser name from a raw user-agent string,
// returning "Unknown" when the parser cannot identify one.
func BrowserName(rawUA string) string {
	name := useragent.Parse(rawUA).Name
	if name == "" {
		return "Unknown"
	}
	return name
}
