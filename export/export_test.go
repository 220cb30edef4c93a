package export

import (
	"strings"
	"testing"
)

func TestSectionMarkdown(t *testing.T) {
	e := New()
	md, err := e.SectionMarkdown("Atividades", "<p>Responda as <strong>questões</strong> abaixo.</p>")
	if err != nil {
		t.Fatalf("SectionMarkdown: %v", err)
	}
	if !strings.HasPrefix(md, "## Atividades") {
		t.Errorf("missing title heading: %q", md)
	}
	if !strings.Contains(md, "**questões**") {
		t.Errorf("bold not converted: %q", md)
	}
}

func TestSectionMarkdown_NoTitle(t *testing.T) {
	e := New()
	md, err := e.SectionMarkdown("", "<p>Sem título.</p>")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(md, "##") {
		t.Errorf("unexpected heading: %q", md)
	}
	if !strings.Contains(md, "Sem título.") {
		t.Errorf("content missing: %q", md)
	}
}

func TestSectionMarkdown_Table(t *testing.T) {
	e := New()
	html := `<table><tr><th>Aluno</th><th>Nota</th></tr><tr><td>Maria</td><td>9.5</td></tr></table>`
	md, err := e.SectionMarkdown("Fichário", html)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(md, "| Aluno | Nota |") {
		t.Errorf("table not converted: %q", md)
	}
	if !strings.Contains(md, "Maria") {
		t.Errorf("table body missing: %q", md)
	}
}
