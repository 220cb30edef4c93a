package docpipe

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	p := New(Config{})
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"agenda.docx", FormatDocx, false},
		{"AGENDA.DOCX", FormatDocx, false},
		{"legacy.doc", FormatDocx, false},
		{"material.pdf", FormatPDF, false},
		{"notas.csv", FormatCSV, false},
		{"imagem.png", "", true},
		{"sem_extensao", "", true},
	}
	for _, tt := range tests {
		got, err := p.Detect(tt.path)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("Detect(%q) err = %v, want ErrUnsupportedFormat", tt.path, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Detect(%q) err = %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foto.png")
	if err := os.WriteFile(path, []byte("not really an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := New(Config{})
	_, err := p.Extract(context.Background(), path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestExtract_FileTooLarge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grande.csv")
	if err := os.WriteFile(path, []byte("a,b,c\n1,2,3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := New(Config{MaxFileSize: 4})
	if _, err := p.Extract(context.Background(), path); err == nil {
		t.Fatal("expected size limit error")
	}
}

func TestExtract_CSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notas.csv")
	content := "Aluno,Nota\nMaria,9.5\nJoão,8.0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p := New(Config{})
	doc, err := p.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	wantRaw := "Aluno\tNota\nMaria\t9.5\nJoão\t8.0"
	if doc.RawText != wantRaw {
		t.Errorf("RawText = %q, want %q", doc.RawText, wantRaw)
	}
	if !strings.Contains(doc.RichHTML, "<th") || !strings.Contains(doc.RichHTML, ">Aluno</th>") {
		t.Errorf("header row not styled: %q", doc.RichHTML)
	}
	if !strings.Contains(doc.RichHTML, ">Maria</td>") {
		t.Errorf("data row missing: %q", doc.RichHTML)
	}
}

// writeDocx builds a minimal Word archive around the given document.xml
// body markup.
func writeDocx(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	doc := `<?xml version="1.0" encoding="UTF-8"?><document><body>` + body + `</body></document>`
	if _, err := w.Write([]byte(doc)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtract_Docx(t *testing.T) {
	dir := t.TempDir()
	body := `<p><pPr><pStyle val="Heading1"/></pPr><r><t>Apresentação da Agenda</t></r></p>` +
		`<p><r><t>Texto comum do corpo com detalhes.</t></r></p>` +
		`<p><r><rPr><b/></rPr><t>Aviso importante</t></r></p>`
	path := writeDocx(t, dir, "agenda.docx", body)

	p := New(Config{})
	doc, err := p.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	wantRaw := "Apresentação da Agenda\nTexto comum do corpo com detalhes.\nAviso importante"
	if doc.RawText != wantRaw {
		t.Errorf("RawText = %q, want %q", doc.RawText, wantRaw)
	}
	if !strings.Contains(doc.RichHTML, "<h1>Apresentação da Agenda</h1>") {
		t.Errorf("heading style not rendered: %q", doc.RichHTML)
	}
	if !strings.Contains(doc.RichHTML, "<strong>Aviso importante</strong>") {
		t.Errorf("bold run not rendered: %q", doc.RichHTML)
	}
}

func TestExtract_Docx_MissingDocumentXML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vazio.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	zw.Close()
	f.Close()

	p := New(Config{})
	if _, err := p.Extract(context.Background(), path); err == nil {
		t.Fatal("expected error for archive without word/document.xml")
	}
}

func TestDocxHeadingLevel(t *testing.T) {
	tests := []struct {
		style string
		want  int
	}{
		{"Heading1", 1},
		{"heading3", 3},
		{"Title", 1},
		{"Subtitle", 2},
		{"Titulo2", 2},
		{"BodyText", 0},
		{"", 0},
		{"Heading9", 0},
	}
	for _, tt := range tests {
		if got := docxHeadingLevel(tt.style); got != tt.want {
			t.Errorf("docxHeadingLevel(%q) = %d, want %d", tt.style, got, tt.want)
		}
	}
}

func TestStripTags(t *testing.T) {
	fragment := `<h1>Título</h1><p>Primeiro parágrafo.</p><p>Segundo <strong>parágrafo</strong>.</p><script>alert(1)</script>`
	got := StripTags(fragment)
	want := "Título\nPrimeiro parágrafo.\nSegundo parágrafo ."
	if got != want {
		t.Errorf("StripTags = %q, want %q", got, want)
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	if len(formats) != 4 {
		t.Fatalf("len = %d, want 4", len(formats))
	}
}
