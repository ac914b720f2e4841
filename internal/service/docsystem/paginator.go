package docsystem

import (
	"fmt"

	"safha/internal/domain"
	models "safha/internal/domain/models/docsystem"
	docsysSvc "safha/internal/domain/services/docsystem"
)

// Paginate splits text into consecutive pages of pageSize characters.
//
// Characters are Unicode code points; an invalid UTF-8 byte counts as one
// character and is kept as-is. Pages are numbered from 1, every page but the
// last holds exactly pageSize characters, and joining the pages in order gives
// back text. Empty text yields a single empty page numbered 1.
//
// A pageSize below 1 returns an error wrapping domain.ErrConfiguration.
func Paginate(text string, pageSize int) ([]models.Page, error) {
	if pageSize < 1 {
		return nil, fmt.Errorf("%w: page size must be at least 1 (got %d)", domain.ErrConfiguration, pageSize)
	}
	return paginate(text, pageSize), nil
}

func paginate(text string, pageSize int) []models.Page {
	if text == "" {
		return []models.Page{{PageNumber: 1, PageContent: ""}}
	}

	pages := make([]models.Page, 0, len(text)/pageSize+1)
	start, count := 0, 0
	for i := range text {
		if count == pageSize {
			pages = append(pages, models.Page{PageNumber: len(pages) + 1, PageContent: text[start:i]})
			start, count = i, 0
		}
		count++
	}
	// The remainder is never empty: the loop ran at least once
	pages = append(pages, models.Page{PageNumber: len(pages) + 1, PageContent: text[start:]})

	return pages
}

type paginator struct {
	pageSize int
}

// NewPaginator returns a Paginator bound to pageSize, failing fast on sizes below 1
func NewPaginator(pageSize int) (docsysSvc.Paginator, error) {
	if pageSize < 1 {
		return nil, fmt.Errorf("%w: page size must be at least 1 (got %d)", domain.ErrConfiguration, pageSize)
	}
	return &paginator{pageSize: pageSize}, nil
}

func (p *paginator) Paginate(text string) []models.Page {
	return paginate(text, p.pageSize)
}

func (p *paginator) PageSize() int {
	return p.pageSize
}
