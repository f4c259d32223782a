package api

import (
	"github.com/gofiber/fiber/v3"

	"phishguard/internal/models"
	"phishguard/internal/scanner"
	"phishguard/internal/validation"
)

// CacheHandler handles cache invalidation.
type CacheHandler struct {
	scanner *scanner.Scanner
}

// NewCacheHandler creates a new cache handler.
func NewCacheHandler(s *scanner.Scanner) *CacheHandler {
	return &CacheHandler{scanner: s}
}

// Clear removes the cached scan result for a URL.
//
// DELETE /api/v1/cache?url=https://example.com
func (h *CacheHandler) Clear(c fiber.Ctx) error {
	rawURL := c.Query("url", "")
	if ok, reason := validation.ValidateScanURL(rawURL); !ok {
		return jsonError(c, fiber.StatusBadRequest, reason)
	}

	if err := h.scanner.Invalidate(rawURL); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to clear cache")
	}

	return c.JSON(models.CacheClearedResponse{
		URL:     validation.NormalizeURL(rawURL),
		Message: "Cache cleared successfully",
	})
}
