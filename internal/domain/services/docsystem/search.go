package docsystem

import (
	"context"

	"safha/internal/domain/models/docsystem"
)

// SearchService finds keyword occurrences in paginated documents
type SearchService interface {
	// Search paginates every document in the request and returns matching words
	Search(ctx context.Context, req *SearchRequest) (*docsystem.SearchResults, error)
}

// SearchDocument is one document to search
type SearchDocument struct {
	ID      string  `json:"id,omitempty"`
	Name    string  `json:"name"`
	Content *string `json:"content"`
}

// SearchRequest represents a keyword search request
type SearchRequest struct {
	Keyword   string           `json:"keyword"`             // At least the configured minimum length after trimming
	Documents []SearchDocument `json:"documents"`           // Documents to search, in result order
	PageSize  *int             `json:"page_size,omitempty"` // Optional override of the configured page size
	Limit     int              `json:"limit,omitempty"`     // Hits per page (default: 20)
	Offset    int              `json:"offset,omitempty"`    // Skip N hits (default: 0)
	UserID    string           `json:"-"`
}
