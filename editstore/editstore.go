// Package editstore updates a rendered section's raw HTML/CSS pair and
// resynchronizes the full rendered page. The raw pair is the editable
// source of truth; the rendered page is derived from it.
package editstore

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// contentRegionRe bounds the replaceable content region of a rendered
// section page: from the opening content container through to the start
// of the page's action-button region. Chrome outside this region is
// never touched.
var contentRegionRe = regexp.MustCompile(`(?s)(<div class="content">).*?(</div>\s*</div>\s*<div class="actions">)`)

// Store persists section edits under the generated-pages directory.
type Store struct {
	dir    string
	policy *bluemonday.Policy
	logger *slog.Logger
}

// New creates a Store over the given generated-pages directory.
func New(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("style", "class").Globally()
	policy.AllowAttrs("width", "height").OnElements("img")
	policy.AllowDataURIImages()

	return &Store{dir: dir, policy: policy, logger: logger}
}

// SaveResult reports the outcome of one edit.
type SaveResult struct {
	RawHTMLPath string `json:"raw_html_path"`
	RawCSSPath  string `json:"raw_css_path"`
	PagePath    string `json:"page_path"`
	// Synced is false when the raw pair was saved but the rendered page
	// could not be resynchronized — a warning, not a failure.
	Synced bool `json:"synced"`
}

// SaveEdit overwrites the raw HTML and CSS for (sectionKey, runID), then
// replaces the rendered page's content region with the new fragment,
// leaving chrome untouched. A missing or incompatibly hand-edited page
// downgrades resync to a warning; the save itself still succeeds.
// Concurrent edits race last-writer-wins; there is no merge.
func (s *Store) SaveEdit(sectionKey, runID, newHTML, newCSS string) (*SaveResult, error) {
	if sectionKey == "" || runID == "" {
		return nil, fmt.Errorf("section key and run id are required")
	}

	clean := s.policy.Sanitize(newHTML)

	result := &SaveResult{
		RawHTMLPath: filepath.Join(s.dir, fmt.Sprintf("section_%s_%s_raw.html", sectionKey, runID)),
		RawCSSPath:  filepath.Join(s.dir, fmt.Sprintf("section_%s_%s_raw.css", sectionKey, runID)),
		PagePath:    filepath.Join(s.dir, fmt.Sprintf("section_%s_%s.html", sectionKey, runID)),
	}

	if err := os.WriteFile(result.RawHTMLPath, []byte(clean), 0o644); err != nil {
		return nil, fmt.Errorf("save raw html: %w", err)
	}
	if err := os.WriteFile(result.RawCSSPath, []byte(newCSS), 0o644); err != nil {
		return nil, fmt.Errorf("save raw css: %w", err)
	}

	result.Synced = s.resyncPage(result.PagePath, clean)
	if !result.Synced {
		s.logger.Warn("rendered page not resynchronized",
			"section", sectionKey, "run_id", runID, "page", result.PagePath)
	}
	return result, nil
}

// resyncPage splices the new fragment into the page's content region.
func (s *Store) resyncPage(pagePath, fragment string) bool {
	page, err := os.ReadFile(pagePath)
	if err != nil {
		return false
	}

	loc := contentRegionRe.FindSubmatchIndex(page)
	if loc == nil {
		return false
	}

	// Splice: keep the opening container (group 1) and the trailing
	// chrome (group 2), replace everything between.
	var updated []byte
	updated = append(updated, page[:loc[3]]...)
	updated = append(updated, []byte("\n"+fragment+"\n        ")...)
	updated = append(updated, page[loc[4]:]...)

	if err := os.WriteFile(pagePath, updated, 0o644); err != nil {
		return false
	}
	return true
}

// ReadRaw returns the current raw pair for (sectionKey, runID).
func (s *Store) ReadRaw(sectionKey, runID string) (string, string, error) {
	htmlPath := filepath.Join(s.dir, fmt.Sprintf("section_%s_%s_raw.html", sectionKey, runID))
	cssPath := filepath.Join(s.dir, fmt.Sprintf("section_%s_%s_raw.css", sectionKey, runID))

	htmlData, err := os.ReadFile(htmlPath)
	if err != nil {
		return "", "", fmt.Errorf("read raw html: %w", err)
	}
	cssData, err := os.ReadFile(cssPath)
	if err != nil {
		return "", "", fmt.Errorf("read raw css: %w", err)
	}
	return string(htmlData), string(cssData), nil
}
