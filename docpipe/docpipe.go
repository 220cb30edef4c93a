// Package docpipe extracts uploaded activity documents into the pair of
// representations the rest of the pipeline consumes: newline-delimited
// plain text and an HTML fragment preserving inline styling and images.
//
// Supported formats:
//   - .docx/.doc — Microsoft Word (archive/zip → word/document.xml)
//   - .pdf      — PDF text extraction (pdfcpu, content-stream decoding)
//   - .csv      — comma-separated values rendered as a table
//
// Usage:
//
//	pipe := docpipe.New(docpipe.Config{})
//	doc, err := pipe.Extract(ctx, "/path/to/agenda.docx")
//	fmt.Println(len(doc.RawText), "chars")
package docpipe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/edulab/atividades/activity"
)

// Format identifies a supported document type.
type Format string

const (
	FormatDocx Format = "docx"
	FormatPDF  Format = "pdf"
	FormatCSV  Format = "csv"
)

// ErrUnsupportedFormat is returned by Detect and Extract for extensions
// outside the supported set. Fatal, never retried.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Pipeline is the document extraction engine.
type Pipeline struct {
	cfg Config
}

// New creates a Pipeline with the given configuration.
func New(cfg Config) *Pipeline {
	cfg.defaults()
	return &Pipeline{cfg: cfg}
}

// Detect returns the document format based on file extension.
func (p *Pipeline) Detect(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".docx", ".doc":
		return FormatDocx, nil
	case ".pdf":
		return FormatPDF, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Extract parses a document and returns its plain-text and rich-HTML
// renditions. Conversion failures are fatal and surface to the caller;
// there is no partial output and no retry.
func (p *Pipeline) Extract(ctx context.Context, path string) (*activity.ParsedDocument, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > p.cfg.MaxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), p.cfg.MaxFileSize)
	}

	format, err := p.Detect(path)
	if err != nil {
		return nil, err
	}

	p.cfg.Logger.Debug("extracting document", "path", path, "format", format)

	var rawText, richHTML string
	switch format {
	case FormatDocx:
		rawText, richHTML, err = p.extractDocx(path)
	case FormatPDF:
		rawText, richHTML, err = extractPDF(path)
	case FormatCSV:
		rawText, richHTML, err = extractCSV(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("extract %s (%s): %w", path, format, err)
	}

	// Some Word conversion paths silently drop content that the styled
	// rendition retains. When the tag-stripped HTML text is materially
	// longer than the raw rendition, the HTML-derived text becomes
	// canonical.
	if richHTML != "" {
		stripped := StripTags(richHTML)
		if float64(len(stripped)) > float64(len(rawText))*(1+p.cfg.HTMLWinRatio) {
			p.cfg.Logger.Debug("html rendition wins",
				"raw_len", len(rawText), "stripped_len", len(stripped))
			rawText = stripped
		}
	}

	return &activity.ParsedDocument{
		RawText:  rawText,
		RichHTML: richHTML,
	}, nil
}

// SupportedFormats returns all supported format extensions.
func SupportedFormats() []string {
	return []string{"docx", "doc", "pdf", "csv"}
}
