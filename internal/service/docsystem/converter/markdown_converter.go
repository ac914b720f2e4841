package converter

import (
	"context"
	"strings"

	docsysSvc "safha/internal/domain/services/docsystem"
)

// markdownConverter keeps markdown source as page text.
// Markup characters count toward the page size like any other character.
type markdownConverter struct{}

// NewMarkdownConverter creates the markdown passthrough converter
func NewMarkdownConverter() docsysSvc.ContentConverter {
	return &markdownConverter{}
}

func (c *markdownConverter) Convert(ctx context.Context, input []byte) (string, error) {
	return strings.TrimPrefix(string(input), byteOrderMark), nil
}

func (c *markdownConverter) SupportedExtensions() []string {
	return []string{".md", ".markdown"}
}

func (c *markdownConverter) Format() string {
	return docsysSvc.FormatMarkdown
}
