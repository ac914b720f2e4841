package config

const (
	// MaxDocumentNameLength is the maximum length for document names.
	MaxDocumentNameLength = 255

	// MaxSearchDocuments is the maximum number of documents in one search request.
	MaxSearchDocuments = 500

	// DefaultPageSize matches the editor's historical 100-character pages.
	DefaultPageSize = 100

	// DefaultMaxPageSize bounds per-request page size overrides.
	DefaultMaxPageSize = 10_000
)
