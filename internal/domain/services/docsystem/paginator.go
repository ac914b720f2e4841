package docsystem

import (
	"safha/internal/domain/models/docsystem"
)

// Paginator splits text into fixed-size pages with a page size bound at construction
type Paginator interface {
	// Paginate splits text into pages of PageSize() characters.
	// Empty text yields a single empty page numbered 1.
	Paginate(text string) []docsystem.Page

	// PageSize returns the maximum number of characters per page
	PageSize() int
}

// ContentAnalyzer computes document statistics
type ContentAnalyzer interface {
	// CountWords counts whitespace-separated words
	CountWords(text string) int

	// CountChars counts characters using the same indexing as pagination
	CountChars(text string) int
}
