package docsystem

import (
	"fmt"
)

// Default search configuration values
const (
	DefaultSearchLimit      = 20
	DefaultSearchMaxLimit   = 100
	DefaultMinKeywordLength = 3
)

// SearchOptions configures a keyword search over paginated documents
type SearchOptions struct {
	// Keyword is the word to look for (required, already trimmed)
	Keyword string

	// Pagination of hits
	Limit  int // Number of hits to return (default: 20)
	Offset int // Number of hits to skip (default: 0)
}

// ApplyDefaults fills in default values for unset fields.
// Negative values are left for Validate to reject.
func (opts *SearchOptions) ApplyDefaults() {
	if opts.Limit == 0 {
		opts.Limit = DefaultSearchLimit
	}
}

// Validate checks that required fields are set and values are reasonable
func (opts *SearchOptions) Validate(maxLimit int) error {
	if opts.Keyword == "" {
		return fmt.Errorf("keyword cannot be empty")
	}
	if opts.Limit < 0 {
		return fmt.Errorf("limit cannot be negative")
	}
	if opts.Limit > maxLimit {
		return fmt.Errorf("limit cannot exceed %d (requested: %d)", maxLimit, opts.Limit)
	}
	if opts.Offset < 0 {
		return fmt.Errorf("offset cannot be negative")
	}
	return nil
}

// SearchHit is one occurrence of the keyword as a word on a page
type SearchHit struct {
	DocumentID   string `json:"document_id" yaml:"document_id"`
	DocumentName string `json:"document_name" yaml:"document_name"`
	PageNumber   int    `json:"page_number" yaml:"page_number"`

	// Prefix is the word before the match on the same page ("" at page start)
	Prefix string `json:"prefix" yaml:"prefix"`

	// Match is the word as it appears in the text
	Match string `json:"match" yaml:"match"`
}

// String renders the hit as "<document> - <prefix> <match>".
func (h SearchHit) String() string {
	if h.Prefix == "" {
		return fmt.Sprintf("%s - %s", h.DocumentName, h.Match)
	}
	return fmt.Sprintf("%s - %s %s", h.DocumentName, h.Prefix, h.Match)
}

// SearchResults contains the hits for one page of results
type SearchResults struct {
	Keyword string      `json:"keyword" yaml:"keyword"`
	Hits    []SearchHit `json:"hits" yaml:"hits"`

	// TotalCount is the number of hits regardless of limit/offset
	TotalCount int `json:"total_count" yaml:"total_count"`

	// HasMore is (Offset + len(Hits)) < TotalCount
	HasMore bool `json:"has_more" yaml:"has_more"`

	Offset int `json:"offset" yaml:"offset"`
	Limit  int `json:"limit" yaml:"limit"`
}

// NewSearchResults slices all hits to the requested window and sets HasMore
func NewSearchResults(all []SearchHit, opts *SearchOptions) *SearchResults {
	total := len(all)

	start := opts.Offset
	if start > total {
		start = total
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}

	hits := make([]SearchHit, end-start)
	copy(hits, all[start:end])

	return &SearchResults{
		Keyword:    opts.Keyword,
		Hits:       hits,
		TotalCount: total,
		HasMore:    end < total,
		Offset:     opts.Offset,
		Limit:      opts.Limit,
	}
}
