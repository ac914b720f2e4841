package docsystem

import "strings"

// Page is one fixed-size slice of a document's text.
// PageNumber is 1-based and sequential within a document.
type Page struct {
	PageNumber  int    `json:"page_number" yaml:"page_number"`
	PageContent string `json:"page_content" yaml:"page_content"`
}

// JoinPages concatenates page contents in order, reproducing the paginated text.
func JoinPages(pages []Page) string {
	var b strings.Builder
	for _, p := range pages {
		b.WriteString(p.PageContent)
	}
	return b.String()
}
