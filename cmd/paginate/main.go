// Command paginate splits a text file into pages, or searches it for a keyword.
//
//	paginate [-page-size N] [-format json|yaml|text] [-search KEYWORD] [-name NAME] [-input-format FORMAT] [FILE]
//
// FILE defaults to standard input. Files ending in .html, .htm, .md or .txt are
// converted by extension before pagination; -input-format overrides the choice.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"safha/internal/config"
	models "safha/internal/domain/models/docsystem"
	docsysSvc "safha/internal/domain/services/docsystem"
	serviceDocsys "safha/internal/service/docsystem"
	"safha/internal/service/docsystem/converter"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

func main() {
	_ = godotenv.Load()
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("paginate", flag.ContinueOnError)
	flags.SetOutput(stderr)
	pageSize := flags.Int("page-size", 0, "characters per page, at least 1 (default from PAGE_SIZE, 100)")
	format := flags.String("format", "json", "output format: json, yaml or text")
	keyword := flags.String("search", "", "print hits for this keyword instead of pages")
	name := flags.String("name", "", "document name (default: file name, or \"stdin\")")
	inputFormat := flags.String("input-format", "", "input format: text, markdown or html (default: from file extension)")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	var pageSizeOverride *int
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "page-size" {
			pageSizeOverride = pageSize
		}
	})

	if err := execute(ctx, options{
		pageSize:    pageSizeOverride,
		format:      *format,
		keyword:     *keyword,
		name:        *name,
		inputFormat: *inputFormat,
		file:        flags.Arg(0),
	}, stdin, stdout); err != nil {
		fmt.Fprintf(stderr, "paginate: %v\n", err)
		return 1
	}
	return 0
}

type options struct {
	pageSize    *int // nil when -page-size was not given
	format      string
	keyword     string
	name        string
	inputFormat string
	file        string
}

func execute(ctx context.Context, opts options, stdin io.Reader, stdout io.Writer) error {
	switch opts.format {
	case "json", "yaml", "text":
	default:
		return fmt.Errorf("unknown format %q (supported: json, yaml, text)", opts.format)
	}
	if opts.pageSize != nil {
		if _, err := serviceDocsys.NewPaginator(*opts.pageSize); err != nil {
			return err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	data, name, err := readInput(opts.file, stdin)
	if err != nil {
		return err
	}
	registry := converter.NewRegistry()
	text, err := convertInput(ctx, registry, opts, data)
	if err != nil {
		return err
	}
	if opts.name != "" {
		name = opts.name
	}

	// CLI output stays clean: only warnings go to stderr
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	paginator, err := serviceDocsys.NewPaginator(cfg.Pagination.PageSize)
	if err != nil {
		return err
	}

	if opts.keyword != "" {
		search := serviceDocsys.NewSearchService(paginator, cfg.Search, cfg.Pagination.MaxPageSize, logger)
		results, err := searchAll(ctx, search, &docsysSvc.SearchRequest{
			Keyword:   opts.keyword,
			Documents: []docsysSvc.SearchDocument{{Name: name, Content: &text}},
			PageSize:  opts.pageSize,
			Limit:     cfg.Search.MaxLimit,
		})
		if err != nil {
			return err
		}
		if opts.format == "text" {
			for _, hit := range results.Hits {
				fmt.Fprintf(stdout, "page %d: %s\n", hit.PageNumber, hit)
			}
			return nil
		}
		return encode(stdout, opts.format, results)
	}

	docs := serviceDocsys.NewDocumentService(paginator, serviceDocsys.NewContentAnalyzer(), registry, cfg.Pagination.MaxPageSize, logger)
	doc, err := docs.PaginateDocument(ctx, &docsysSvc.PaginateDocumentRequest{
		Name:     name,
		Content:  &text,
		PageSize: opts.pageSize,
	})
	if err != nil {
		return err
	}

	if opts.format == "text" {
		for _, page := range doc.Pages {
			fmt.Fprintf(stdout, "--- page %d ---\n%s\n", page.PageNumber, page.PageContent)
		}
		return nil
	}
	return encode(stdout, opts.format, doc)
}

// searchAll walks the result windows until has_more is false and returns
// every hit in one SearchResults
func searchAll(ctx context.Context, search docsysSvc.SearchService, req *docsysSvc.SearchRequest) (*models.SearchResults, error) {
	var all *models.SearchResults
	for {
		window, err := search.Search(ctx, req)
		if err != nil {
			return nil, err
		}
		if all == nil {
			all = window
		} else {
			all.Hits = append(all.Hits, window.Hits...)
		}
		if !window.HasMore || len(window.Hits) == 0 {
			break
		}
		req.Offset += len(window.Hits)
	}

	all.Limit = len(all.Hits)
	all.HasMore = false
	return all, nil
}

func readInput(file string, stdin io.Reader) (data []byte, name string, err error) {
	if file == "" || file == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "stdin", nil
	}

	data, err = os.ReadFile(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("file not found: %s", file)
		}
		return nil, "", fmt.Errorf("read %s: %w", file, err)
	}
	return data, filepath.Base(file), nil
}

// convertInput picks a converter from -input-format or the file extension.
// Input without either is paginated exactly as read.
func convertInput(ctx context.Context, registry docsysSvc.ConverterRegistry, opts options, data []byte) (string, error) {
	var (
		c  docsysSvc.ContentConverter
		ok bool
	)
	switch {
	case opts.inputFormat != "":
		c, ok = registry.ForFormat(opts.inputFormat)
		if !ok {
			return "", fmt.Errorf("unknown input format %q (supported: %s)", opts.inputFormat, strings.Join(registry.Formats(), ", "))
		}
	case opts.file != "":
		c, ok = registry.ForFile(opts.file)
	}
	if !ok {
		return string(data), nil
	}
	return c.Convert(ctx, data)
}

func encode(w io.Writer, format string, v interface{}) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
