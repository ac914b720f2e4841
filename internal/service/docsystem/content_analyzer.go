package docsystem

import (
	"strings"
	"unicode"
	"unicode/utf8"

	docsysSvc "safha/internal/domain/services/docsystem"
)

type contentAnalyzerService struct{}

// NewContentAnalyzer creates a new content analyzer service
func NewContentAnalyzer() docsysSvc.ContentAnalyzer {
	return &contentAnalyzerService{}
}

// CountWords counts the whitespace-separated words in text
func (s *contentAnalyzerService) CountWords(text string) int {
	return len(strings.FieldsFunc(text, unicode.IsSpace))
}

// CountChars counts Unicode code points, the unit pages are measured in
func (s *contentAnalyzerService) CountChars(text string) int {
	return utf8.RuneCountInString(text)
}
