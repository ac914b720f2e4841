package docsystem

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"safha/internal/config"
	"safha/internal/domain"
	models "safha/internal/domain/models/docsystem"
	docsysSvc "safha/internal/domain/services/docsystem"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// documentService implements the DocumentService interface
type documentService struct {
	paginator       docsysSvc.Paginator
	contentAnalyzer docsysSvc.ContentAnalyzer
	converters      docsysSvc.ConverterRegistry
	maxPageSize     int
	logger          *slog.Logger
	now             func() time.Time
}

// NewDocumentService creates a new document service.
// The paginator's page size is the default for requests without page_size.
func NewDocumentService(
	paginator docsysSvc.Paginator,
	contentAnalyzer docsysSvc.ContentAnalyzer,
	converters docsysSvc.ConverterRegistry,
	maxPageSize int,
	logger *slog.Logger,
) docsysSvc.DocumentService {
	return &documentService{
		paginator:       paginator,
		contentAnalyzer: contentAnalyzer,
		converters:      converters,
		maxPageSize:     maxPageSize,
		logger:          logger,
		now:             time.Now,
	}
}

// PaginateDocument validates the request, assigns an ID when missing and
// splits the content into pages
func (s *documentService) PaginateDocument(ctx context.Context, req *docsysSvc.PaginateDocumentRequest) (*models.Document, error) {
	if err := s.validatePaginateRequest(req); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	content, err := s.convertContent(ctx, req)
	if err != nil {
		return nil, err
	}

	pageSize := s.paginator.PageSize()
	var pages []models.Page
	if req.PageSize != nil && *req.PageSize != pageSize {
		pageSize = *req.PageSize
		pages, err = Paginate(content, pageSize)
		if err != nil {
			return nil, err
		}
	} else {
		pages = s.paginator.Paginate(content)
	}

	doc := &models.Document{
		ID:        id,
		Name:      req.Name,
		PageSize:  pageSize,
		PageCount: len(pages),
		WordCount: s.contentAnalyzer.CountWords(content),
		CharCount: s.contentAnalyzer.CountChars(content),
		Pages:     pages,
		CreatedAt: s.now().UTC(),
	}

	s.logger.Debug("document paginated",
		"id", doc.ID,
		"user_id", req.UserID,
		"format", req.Format,
		"page_size", doc.PageSize,
		"page_count", doc.PageCount,
		"char_count", doc.CharCount,
	)

	return doc, nil
}

// convertContent runs content through the converter for req.Format.
// Without a format the content is paginated exactly as sent.
func (s *documentService) convertContent(ctx context.Context, req *docsysSvc.PaginateDocumentRequest) (string, error) {
	content := req.ContentOrEmpty()
	if req.Format == "" || content == "" {
		return content, nil
	}

	converter, ok := s.converters.ForFormat(req.Format)
	if !ok {
		return "", domain.NewValidationError(fmt.Sprintf("format: unsupported format %q", req.Format))
	}

	text, err := converter.Convert(ctx, []byte(content))
	if err != nil {
		return "", fmt.Errorf("convert %s content: %w", req.Format, err)
	}
	return text, nil
}

func (s *documentService) validatePaginateRequest(req *docsysSvc.PaginateDocumentRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.ID, validation.By(validateUUID)),
		validation.Field(&req.Name,
			validation.Required,
			validation.RuneLength(1, config.MaxDocumentNameLength),
		),
		validation.Field(&req.Format, validation.In(s.formats()...)),
		validation.Field(&req.PageSize, validation.By(pageSizeRule(s.maxPageSize))),
	)
}

func (s *documentService) formats() []interface{} {
	names := s.converters.Formats()
	formats := make([]interface{}, len(names))
	for i, name := range names {
		formats[i] = name
	}
	return formats
}

// pageSizeRule checks an optional page size override against [1, maxPageSize].
// Zero is rejected explicitly; ozzo's Min treats it as empty and skips it.
func pageSizeRule(maxPageSize int) validation.RuleFunc {
	return func(value interface{}) error {
		size, _ := value.(*int)
		if size == nil {
			return nil
		}
		if *size < 1 || *size > maxPageSize {
			return fmt.Errorf("must be between 1 and %d", maxPageSize)
		}
		return nil
	}
}

// validateUUID accepts empty strings (ID is optional) and canonical UUIDs
func validateUUID(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := uuid.Parse(s); err != nil {
		return errors.New("must be a valid UUID")
	}
	return nil
}
