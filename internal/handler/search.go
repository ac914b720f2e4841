package handler

import (
	"log/slog"
	"net/http"

	docsysSvc "safha/internal/domain/services/docsystem"
	"safha/internal/httputil"
)

// SearchHandler handles keyword search requests
type SearchHandler struct {
	searchService docsysSvc.SearchService
	logger        *slog.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService docsysSvc.SearchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// Search finds keyword occurrences in the posted documents
// POST /api/search
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req docsysSvc.SearchRequest
	if !parseBody(w, r, &req) {
		return
	}
	req.UserID = httputil.GetUserID(r)

	results, err := h.searchService.Search(r.Context(), &req)
	if err != nil {
		h.logger.Debug("search rejected", "error", err)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, results)
}
