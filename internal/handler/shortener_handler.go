package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Anandhu362/Url-shorten-website/internal/domain"
	"github.com/Anandhu362/Url-shorten-website/pkg/response"
	"github.com/Anandhu362/Url-shorten-website/pkg/validator"
)

type ShortenerService interface {
	ShortenURL(ctx context.Context, req *domain.ShortenRequest) (link *domain.ShortLink, created bool, err error)
	ResolveAndRecord(ctx context.Context, shortID, clientIP, userAgent string) (*domain.ShortLink, error)
	CheckOriginalURL(ctx context.Context, originalURL string) (*domain.ShortLink, error)
	CheckShortID(ctx context.Context, shortID string) (*domain.ShortLink, error)
	ListURLs(ctx context.Context) ([]domain.ShortLink, error)
}

type ShortenerHandler struct {
	service ShortenerService
}

func NewShortenerHandler(service ShortenerService) *ShortenerHandler {
	return &ShortenerHandler{service: service}
}

type existingURLResponse struct {
	*domain.ShortLink
	Message string `json:"message"`
}

func (h *ShortenerHandler) ShortenURL(c *gin.Context) {
	var req domain.ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Original URL is required")
		return
	}

	if validationErrors := validator.Validate(&req); len(validationErrors) > 0 {
		response.ValidationErrors(c, validationErrors)
		return
	}

	if req.CustomAlias != "" && validator.IsReservedKeyword(req.CustomAlias) {
		response.BadRequest(c, "That custom alias is reserved")
		return
	}

	link, created, err := h.service.ShortenURL(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrAliasTaken) {
			response.BadRequest(c, "That custom alias is already in use")
			return
		}
		response.InternalServerError(c, "Server error")
		return
	}

	if !created {
		c.JSON(http.StatusOK, existingURLResponse{
			ShortLink: link,
			Message:   "This URL has already been shortened. Here is the existing link.",
		})
		return
	}

	c.JSON(http.StatusCreated, link)
}

// Redirect resolves a short id, records the click and issues a 302.
// The redirect is withheld when the click cannot be recorded; silently
// losing analytics would mask a persistence failure as success.
func (h *ShortenerHandler) Redirect(c *gin.Context) {
	shortID := c.Param("shortId")

	link, err := h.service.ResolveAndRecord(
		c.Request.Context(),
		shortID,
		c.ClientIP(),
		c.Request.UserAgent(),
	)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(c, "URL not found")
			return
		}
		response.InternalServerError(c, "Server error")
		return
	}

	c.Redirect(http.StatusFound, link.OriginalURL)
}

func (h *ShortenerHandler) CheckURL(c *gin.Context) {
	var req domain.CheckURLRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OriginalURL == "" {
		response.BadRequest(c, "URL is required")
		return
	}

	link, err := h.service.CheckOriginalURL(c.Request.Context(), req.OriginalURL)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusOK, domain.CheckResult{Exists: false})
			return
		}
		response.InternalServerError(c, "Server error")
		return
	}

	c.JSON(http.StatusOK, domain.CheckResult{Exists: true, URL: link})
}

func (h *ShortenerHandler) CheckShortID(c *gin.Context) {
	link, err := h.service.CheckShortID(c.Request.Context(), c.Param("shortId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusOK, domain.CheckResult{Exists: false})
			return
		}
		response.InternalServerError(c, "Server error")
		return
	}

	c.JSON(http.StatusOK, domain.CheckResult{Exists: true, URL: link})
}

// ListURLs is an administrative endpoint; no pagination, no auth.
func (h *ShortenerHandler) ListURLs(c *gin.Context) {
	links, err := h.service.ListURLs(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Server error")
		return
	}

	if links == nil {
		links = []domain.ShortLink{}
	}
	c.JSON(http.StatusOK, links)
}
