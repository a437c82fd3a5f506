package domain

import "time"

// ShortLink is one shortened URL together with its click counter.
// Clicks always equals the number of recorded click events for this
// link; both are written inside the same transaction.
type ShortLink struct {
	ID          int64     `json:"-"`
	OriginalURL string    `json:"originalUrl"`
	ShortID     string    `json:"shortId"`
	ShortURL    string    `json:"shortUrl"`
	CustomAlias *string   `json:"customAlias,omitempty"`
	Clicks      int64     `json:"clicks"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ShortenRequest struct {
	OriginalURL string `json:"originalUrl" validate:"required,url"`
	CustomAlias string `json:"customAlias,omitempty" validate:"omitempty,min=4,max=20,alias"`
}

type CheckURLRequest struct {
	OriginalURL string `json:"originalUrl" validate:"required"`
}

// CheckResult is the payload of both existence-check endpoints.
type CheckResult struct {
	Exists bool       `json:"exists"`
	URL    *ShortLink `json:"url,omitempty"`
}
