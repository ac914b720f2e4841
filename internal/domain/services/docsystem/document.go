package docsystem

import (
	"context"

	"safha/internal/domain/models/docsystem"
)

// DocumentService handles document business logic
type DocumentService interface {
	// PaginateDocument validates the request and returns the paginated document
	PaginateDocument(ctx context.Context, req *PaginateDocumentRequest) (*docsystem.Document, error)
}

// PaginateDocumentRequest represents a pagination request
type PaginateDocumentRequest struct {
	ID       string  `json:"id,omitempty"`        // Optional UUID, generated when empty
	Name     string  `json:"name"`                // Document name (required)
	Content  *string `json:"content"`             // nil (absent or JSON null) is treated as ""
	Format   string  `json:"format,omitempty"`    // "text" (default), "markdown" or "html"
	PageSize *int    `json:"page_size,omitempty"` // Optional override of the configured page size
	UserID   string  `json:"-"`                   // Set by handler from auth context, not from request body
}

// ContentOrEmpty returns the request content, normalizing absent content to ""
func (r *PaginateDocumentRequest) ContentOrEmpty() string {
	if r.Content == nil {
		return ""
	}
	return *r.Content
}
