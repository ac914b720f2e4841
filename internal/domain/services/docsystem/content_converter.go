package docsystem

import "context"

// Content formats accepted when importing a document
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// ContentConverter turns imported content into the plain text that gets paginated.
//
// Implementations must be safe for concurrent use.
type ContentConverter interface {
	// Convert returns the page text for input
	Convert(ctx context.Context, input []byte) (string, error)

	// Format is the request-level name of the input format ("html", "markdown", "text")
	Format() string

	// SupportedExtensions lists file extensions with the leading dot (e.g. ".html")
	SupportedExtensions() []string
}

// ConverterRegistry looks up converters by format name or file name
type ConverterRegistry interface {
	ForFormat(format string) (ContentConverter, bool)
	ForFile(filename string) (ContentConverter, bool)
	Formats() []string
}
