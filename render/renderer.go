// Package render turns a segmented document plus activity metadata into
// the generated page set: one navigation page, one standalone page per
// section, and a raw HTML/CSS pair per section that stays the editable
// source of truth after generation.
package render

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/edulab/atividades/activity"
)

// Renderer writes generated pages under a fixed output directory.
// Output is deterministic given identical inputs and runID; file names
// embed the run identifier so repeated renders never collide.
type Renderer struct {
	outDir string
	logger *slog.Logger
}

// NewRenderer creates a Renderer writing into outDir.
func NewRenderer(outDir string, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{outDir: outDir, logger: logger}
}

// SectionFiles records the files generated for one section.
type SectionFiles struct {
	Key      string `json:"key"`
	PagePath string `json:"page_path"`
	RawHTML  string `json:"raw_html_path"`
	RawCSS   string `json:"raw_css_path"`
}

// PageSet is the result of rendering one parsed document.
type PageSet struct {
	NavigationPath string         `json:"navigation_path"`
	Sections       []SectionFiles `json:"sections"`
}

// RenderAll renders the navigation page, every section page, and the
// editable raw pairs.
func (r *Renderer) RenderAll(doc *activity.ParsedDocument, info activity.ActivityInfo, runID string) (*PageSet, error) {
	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	sections := doc.Metadata.Sections
	if sections == nil {
		sections = activity.NewSectionMap()
	}

	set := &PageSet{}

	navName := fmt.Sprintf("activity_%s.html", runID)
	navPath := filepath.Join(r.outDir, navName)
	nav := r.RenderNavigation(doc.Metadata, info, runID)
	if err := os.WriteFile(navPath, []byte(nav), 0o644); err != nil {
		return nil, fmt.Errorf("write navigation page: %w", err)
	}
	set.NavigationPath = navPath

	for i, s := range sections.Sections() {
		title, icon := displayTitle(s)
		content := FormatTextToHTML(s.Content())
		color := colorFor(i)

		page := r.RenderSectionPage(s.Key, title, icon, content, color, doc.Metadata, info)

		pagePath := filepath.Join(r.outDir, fmt.Sprintf("section_%s_%s.html", s.Key, runID))
		rawHTMLPath := filepath.Join(r.outDir, fmt.Sprintf("section_%s_%s_raw.html", s.Key, runID))
		rawCSSPath := filepath.Join(r.outDir, fmt.Sprintf("section_%s_%s_raw.css", s.Key, runID))

		if err := os.WriteFile(pagePath, []byte(page), 0o644); err != nil {
			return nil, fmt.Errorf("write section page %s: %w", s.Key, err)
		}
		if err := os.WriteFile(rawHTMLPath, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("write raw html %s: %w", s.Key, err)
		}
		if err := os.WriteFile(rawCSSPath, []byte(RawCSS(s.Key)), 0o644); err != nil {
			return nil, fmt.Errorf("write raw css %s: %w", s.Key, err)
		}

		set.Sections = append(set.Sections, SectionFiles{
			Key:      s.Key,
			PagePath: pagePath,
			RawHTML:  rawHTMLPath,
			RawCSS:   rawCSSPath,
		})
	}

	r.logger.Info("page set rendered",
		"run_id", runID, "sections", len(set.Sections), "dir", r.outDir)
	return set, nil
}

// displayTitle resolves the display title and icon for a section. Known
// kinds use the catalogue titles; unrecognized keys synthesize a title
// from the key with a generic icon.
func displayTitle(s activity.Section) (string, string) {
	if s.Kind != activity.KindGeneric {
		return s.Kind.Title(), s.Kind.Icon()
	}
	words := strings.Fields(strings.ReplaceAll(s.Key, "_", " "))
	for i, w := range words {
		runes := []rune(w)
		words[i] = strings.ToUpper(string(runes[0])) + string(runes[1:])
	}
	return strings.Join(words, " "), "📄"
}

// dateLayouts are the instructor-supplied timestamp shapes accepted for
// display formatting.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// formatDate renders an ISO timestamp as DD/MM/YYYY HH:MM. Unparseable
// input passes through unchanged.
func formatDate(iso string) string {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("02/01/2006 15:04")
		}
	}
	return iso
}

// deadlineLine builds the deadlines banner text. Extracted prazos win
// over the instructor-supplied dates.
func deadlineLine(meta activity.Metadata, info activity.ActivityInfo) string {
	inicio := formatDate(info.DataInicio)
	fim := formatDate(info.DataFim)
	if meta.Sections != nil && meta.Sections.Prazos != nil {
		inicio = activity.Resolve(meta.Sections.Prazos.Inicio, inicio)
		fim = activity.Resolve(meta.Sections.Prazos.Fim, fim)
	}
	if inicio == "" && fim == "" {
		return ""
	}
	return fmt.Sprintf("📅 Prazo Inicial: %s | Prazo Final: %s", inicio, fim)
}
