package editstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/edulab/atividades/activity"
	"github.com/edulab/atividades/render"
)

// writeRenderedSection writes a real rendered section page so resync
// exercises the actual page chrome.
func writeRenderedSection(t *testing.T, dir, key, runID, content string) string {
	t.Helper()
	r := render.NewRenderer(dir, nil)
	page := r.RenderSectionPage(key, "Atividades", "✏️", content, "#667eea",
		activity.Metadata{}, activity.ActivityInfo{})
	path := filepath.Join(dir, "section_"+key+"_"+runID+".html")
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSaveEdit_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeRenderedSection(t, dir, "atividades", "run1", "<p>conteúdo original</p>")

	s := New(dir, nil)
	newHTML := "<p>Olá <strong>mundo</strong></p>"
	newCSS := ".content { color: #333; }"

	result, err := s.SaveEdit("atividades", "run1", newHTML, newCSS)
	if err != nil {
		t.Fatalf("SaveEdit: %v", err)
	}
	if !result.Synced {
		t.Error("expected page resync to succeed")
	}

	gotHTML, gotCSS, err := s.ReadRaw("atividades", "run1")
	if err != nil {
		t.Fatalf("ReadRaw: %v", err)
	}
	if gotHTML != newHTML {
		t.Errorf("raw html = %q, want %q", gotHTML, newHTML)
	}
	if gotCSS != newCSS {
		t.Errorf("raw css = %q, want %q", gotCSS, newCSS)
	}
}

func TestSaveEdit_ResyncsPage(t *testing.T) {
	dir := t.TempDir()
	pagePath := writeRenderedSection(t, dir, "atividades", "run1", "<p>antes</p>")

	s := New(dir, nil)
	if _, err := s.SaveEdit("atividades", "run1", "<p>depois</p>", "/* css */"); err != nil {
		t.Fatalf("SaveEdit: %v", err)
	}

	page, err := os.ReadFile(pagePath)
	if err != nil {
		t.Fatal(err)
	}
	got := string(page)
	if !strings.Contains(got, "<p>depois</p>") {
		t.Error("new fragment not spliced into the page")
	}
	if strings.Contains(got, "<p>antes</p>") {
		t.Error("old fragment still present")
	}
	// Chrome outside the content region survives untouched.
	if !strings.Contains(got, `<div class="section-header">`) {
		t.Error("page header chrome lost")
	}
	if !strings.Contains(got, `<div class="actions">`) {
		t.Error("page actions chrome lost")
	}
}

func TestSaveEdit_MissingPageIsWarning(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, nil)

	result, err := s.SaveEdit("mergulhando", "run9", "<p>novo</p>", "/* css */")
	if err != nil {
		t.Fatalf("SaveEdit: %v", err)
	}
	if result.Synced {
		t.Error("resync must be reported as failed when the page is absent")
	}

	// The raw pair is still the source of truth and must be written.
	if _, _, err := s.ReadRaw("mergulhando", "run9"); err != nil {
		t.Errorf("raw pair not written: %v", err)
	}
}

func TestSaveEdit_SanitizesHTML(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, nil)

	_, err := s.SaveEdit("atividades", "run1",
		`<p>ok</p><script>alert(1)</script><p onclick="x()">fim</p>`, "")
	if err != nil {
		t.Fatalf("SaveEdit: %v", err)
	}

	gotHTML, _, err := s.ReadRaw("atividades", "run1")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(gotHTML, "<script") {
		t.Errorf("script not removed: %q", gotHTML)
	}
	if strings.Contains(gotHTML, "onclick") {
		t.Errorf("event handler not removed: %q", gotHTML)
	}
	if !strings.Contains(gotHTML, "<p>ok</p>") {
		t.Errorf("benign markup lost: %q", gotHTML)
	}
}

func TestSaveEdit_RequiresIdentifiers(t *testing.T) {
	s := New(t.TempDir(), nil)
	if _, err := s.SaveEdit("", "run1", "<p>x</p>", ""); err == nil {
		t.Error("expected error for empty section key")
	}
	if _, err := s.SaveEdit("atividades", "", "<p>x</p>", ""); err == nil {
		t.Error("expected error for empty run id")
	}
}

func TestReadRaw_Missing(t *testing.T) {
	s := New(t.TempDir(), nil)
	if _, _, err := s.ReadRaw("apresentacao", "run1"); err == nil {
		t.Error("expected error for missing raw pair")
	}
}
