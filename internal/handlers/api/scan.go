package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"phishguard/internal/models"
	"phishguard/internal/scanner"
	"phishguard/internal/validation"
)

// maxBatchSize caps the number of URLs accepted per batch request.
const maxBatchSize = 100

// ScanHandler handles URL scan operations.
type ScanHandler struct {
	scanner *scanner.Scanner
}

// NewScanHandler creates a new scan handler.
func NewScanHandler(s *scanner.Scanner) *ScanHandler {
	return &ScanHandler{scanner: s}
}

// ScanGet scans the URL given as a query parameter.
//
// GET /api/v1/scan-url?url=https://example.com
func (h *ScanHandler) ScanGet(c fiber.Ctx) error {
	rawURL := c.Query("url", "")
	if ok, reason := validation.ValidateScanURL(rawURL); !ok {
		return jsonError(c, fiber.StatusBadRequest, reason)
	}
	return c.JSON(h.scanner.Scan(c.Context(), rawURL))
}

// ScanPost scans the URL given in the JSON body.
//
// POST /api/v1/scan-url
// Body: { "url": "https://example.com" }
func (h *ScanHandler) ScanPost(c fiber.Ctx) error {
	var req models.ScanRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if ok, reason := validation.ValidateScanURL(req.URL); !ok {
		return jsonError(c, fiber.StatusBadRequest, reason)
	}
	return c.JSON(h.scanner.Scan(c.Context(), req.URL))
}

// ScanBatch scans up to maxBatchSize URLs, best effort per URL: an invalid
// entry yields an error item without failing the rest of the batch.
//
// POST /api/v1/scan-urls
// Body: { "urls": ["https://example.com", ...] }
func (h *ScanHandler) ScanBatch(c fiber.Ctx) error {
	var req models.BatchScanRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if len(req.URLs) == 0 {
		return jsonError(c, fiber.StatusBadRequest, "urls is required")
	}

	urls := req.URLs
	if len(urls) > maxBatchSize {
		urls = urls[:maxBatchSize]
	}

	resp := models.BatchScanResponse{Results: make([]models.BatchScanItem, 0, len(urls))}
	for _, u := range urls {
		item := models.BatchScanItem{URL: u}
		if ok, reason := validation.ValidateScanURL(u); !ok {
			item.Error = reason
		} else {
			item.Result = h.scanner.Scan(c.Context(), u)
		}
		resp.Results = append(resp.Results, item)
	}
	resp.Total = len(resp.Results)

	return c.JSON(resp)
}
