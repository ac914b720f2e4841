package converter

import (
	"context"
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"

	docsysSvc "safha/internal/domain/services/docsystem"
	"safha/internal/service/docsystem/converter/sanitizer"
)

// htmlConverter turns HTML into markdown page text in two stages:
// sanitize (drop scripts, handlers, unsafe URLs), then convert to markdown.
type htmlConverter struct {
	sanitizer *sanitizer.HTMLSanitizer
	converter *md.Converter
}

// NewHTMLConverter creates the HTML converter
func NewHTMLConverter() docsysSvc.ContentConverter {
	return &htmlConverter{
		sanitizer: sanitizer.NewHTMLSanitizer(),
		converter: md.NewConverter("", true, nil),
	}
}

func (c *htmlConverter) Convert(ctx context.Context, input []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sanitized := c.sanitizer.Sanitize(strings.TrimPrefix(string(input), byteOrderMark))

	text, err := c.converter.ConvertString(sanitized)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to markdown: %w", err)
	}

	return text, nil
}

func (c *htmlConverter) SupportedExtensions() []string {
	return []string{".html", ".htm"}
}

func (c *htmlConverter) Format() string {
	return docsysSvc.FormatHTML
}
