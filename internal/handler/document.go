package handler

import (
	"log/slog"
	"net/http"
	"time"

	docsysSvc "safha/internal/domain/services/docsystem"
	"safha/internal/httputil"
)

// DocumentHandler handles document HTTP requests
type DocumentHandler struct {
	docService docsysSvc.DocumentService
	logger     *slog.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(docService docsysSvc.DocumentService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
		logger:     logger,
	}
}

// PaginateDocument splits a document into pages
// POST /api/documents/paginate
func (h *DocumentHandler) PaginateDocument(w http.ResponseWriter, r *http.Request) {
	var req docsysSvc.PaginateDocumentRequest
	if !parseBody(w, r, &req) {
		return
	}
	req.UserID = httputil.GetUserID(r)

	doc, err := h.docService.PaginateDocument(r.Context(), &req)
	if err != nil {
		h.logger.Debug("paginate rejected", "error", err)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// HealthCheck is a simple health check endpoint
// GET /health
func (h *DocumentHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC(),
	})
}
