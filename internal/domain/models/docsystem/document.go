package docsystem

import (
	"time"
)

// Document is a paginated document. Content is not repeated outside of Pages;
// use JoinPages to rebuild it.
type Document struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	PageSize  int       `json:"page_size" yaml:"page_size"`
	PageCount int       `json:"page_count" yaml:"page_count"`
	WordCount int       `json:"word_count" yaml:"word_count"`
	CharCount int       `json:"char_count" yaml:"char_count"` // Unicode code points
	Pages     []Page    `json:"pages" yaml:"pages"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
