package converter

import (
	"context"
	"strings"

	docsysSvc "safha/internal/domain/services/docsystem"
)

// byteOrderMark is written at the start of text files by some Windows editors
const byteOrderMark = "\ufeff"

// textConverter passes plain text through, dropping a leading byte order mark
type textConverter struct{}

// NewTextConverter creates the plain text converter
func NewTextConverter() docsysSvc.ContentConverter {
	return &textConverter{}
}

func (c *textConverter) Convert(ctx context.Context, input []byte) (string, error) {
	return strings.TrimPrefix(string(input), byteOrderMark), nil
}

func (c *textConverter) SupportedExtensions() []string {
	return []string{".txt", ".text"}
}

func (c *textConverter) Format() string {
	return docsysSvc.FormatText
}
