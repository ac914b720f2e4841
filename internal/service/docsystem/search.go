package docsystem

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"safha/internal/config"
	"safha/internal/domain"
	models "safha/internal/domain/models/docsystem"
	docsysSvc "safha/internal/domain/services/docsystem"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/text/cases"
)

// searchService implements the SearchService interface
type searchService struct {
	paginator   docsysSvc.Paginator
	cfg         config.SearchConfig
	maxPageSize int
	logger      *slog.Logger
}

// NewSearchService creates a new keyword search service.
// Documents are paginated with the paginator's page size unless the request overrides it.
func NewSearchService(
	paginator docsysSvc.Paginator,
	cfg config.SearchConfig,
	maxPageSize int,
	logger *slog.Logger,
) docsysSvc.SearchService {
	return &searchService{
		paginator:   paginator,
		cfg:         cfg,
		maxPageSize: maxPageSize,
		logger:      logger,
	}
}

// Search paginates each document and reports every page word equal to the
// keyword under Unicode case folding, together with the word before it.
func (s *searchService) Search(ctx context.Context, req *docsysSvc.SearchRequest) (*models.SearchResults, error) {
	req.Keyword = strings.TrimSpace(req.Keyword)
	if err := s.validateSearchRequest(req); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	opts := &models.SearchOptions{
		Keyword: req.Keyword,
		Limit:   req.Limit,
		Offset:  req.Offset,
	}
	if opts.Limit == 0 {
		opts.Limit = s.cfg.DefaultLimit
	}
	opts.ApplyDefaults()
	if err := opts.Validate(s.cfg.MaxLimit); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	paginate := s.paginator.Paginate
	if req.PageSize != nil {
		size := *req.PageSize
		paginate = func(text string) []models.Page {
			pages, _ := Paginate(text, size) // size validated above
			return pages
		}
	}

	// A Caser keeps state and must not be shared across goroutines
	m := newWordMatcher(cases.Fold(), req.Keyword)

	var all []models.SearchHit
	for _, doc := range req.Documents {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content := ""
		if doc.Content != nil {
			content = *doc.Content
		}
		for _, page := range paginate(content) {
			all = m.appendHits(all, doc, page)
		}
	}

	results := models.NewSearchResults(all, opts)

	s.logger.Debug("keyword search completed",
		"keyword", req.Keyword,
		"user_id", req.UserID,
		"documents", len(req.Documents),
		"total_hits", results.TotalCount,
	)

	return results, nil
}

func (s *searchService) validateSearchRequest(req *docsysSvc.SearchRequest) error {
	minLen := s.cfg.MinKeywordLength
	return validation.ValidateStruct(req,
		validation.Field(&req.Keyword,
			validation.Required.Error(fmt.Sprintf("must be at least %d letters", minLen)),
			validation.RuneLength(minLen, 0).Error(fmt.Sprintf("must be at least %d letters", minLen)),
		),
		validation.Field(&req.Documents,
			validation.Length(0, config.MaxSearchDocuments),
			validation.Each(validation.By(validateSearchDocument)),
		),
		validation.Field(&req.PageSize, validation.By(pageSizeRule(s.maxPageSize))),
		validation.Field(&req.Limit, validation.Min(0), validation.Max(s.cfg.MaxLimit)),
		validation.Field(&req.Offset, validation.Min(0)),
	)
}

func validateSearchDocument(value interface{}) error {
	doc, ok := value.(docsysSvc.SearchDocument)
	if !ok {
		return fmt.Errorf("unexpected document type %T", value)
	}
	return validation.ValidateStruct(&doc,
		validation.Field(&doc.ID, validation.By(validateUUID)),
		validation.Field(&doc.Name,
			validation.Required,
			validation.RuneLength(1, config.MaxDocumentNameLength),
		),
	)
}

// wordMatcher compares page words with a folded keyword
type wordMatcher struct {
	fold   cases.Caser
	target string
}

func newWordMatcher(fold cases.Caser, keyword string) *wordMatcher {
	return &wordMatcher{fold: fold, target: fold.String(keyword)}
}

// matches reports whether word equals the keyword, either as written or with
// leading and trailing punctuation removed ("keyword," and "«keyword»" match).
func (m *wordMatcher) matches(word string) bool {
	if m.fold.String(word) == m.target {
		return true
	}
	trimmed := strings.TrimFunc(word, unicode.IsPunct)
	return trimmed != "" && trimmed != word && m.fold.String(trimmed) == m.target
}

func (m *wordMatcher) appendHits(hits []models.SearchHit, doc docsysSvc.SearchDocument, page models.Page) []models.SearchHit {
	words := strings.FieldsFunc(page.PageContent, unicode.IsSpace)
	for i, word := range words {
		if !m.matches(word) {
			continue
		}
		hit := models.SearchHit{
			DocumentID:   doc.ID,
			DocumentName: doc.Name,
			PageNumber:   page.PageNumber,
			Match:        word,
		}
		if i > 0 {
			hit.Prefix = words[i-1]
		}
		hits = append(hits, hit)
	}
	return hits
}
