// Package export converts section fragments to Markdown so instructors
// can download their content for editing outside the platform.
package export

import (
	"fmt"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
)

// Exporter converts HTML fragments to Markdown.
type Exporter struct {
	conv *converter.Converter
}

// New creates an Exporter with commonmark and table support.
func New() *Exporter {
	return &Exporter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// SectionMarkdown renders one section as Markdown: the display title as
// a level-2 heading followed by the converted content.
func (e *Exporter) SectionMarkdown(title, contentHTML string) (string, error) {
	md, err := e.conv.ConvertString(contentHTML)
	if err != nil {
		return "", fmt.Errorf("convert section %q: %w", title, err)
	}
	if title == "" {
		return md, nil
	}
	return "## " + title + "\n\n" + md, nil
}
