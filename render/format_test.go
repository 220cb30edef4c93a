package render

import (
	"strings"
	"testing"
)

func TestFormatTextToHTML_ParagraphMerge(t *testing.T) {
	input := "Primeira linha\nsegunda linha.\nTerceira frase completa!\n\nQuarta sem pontuação"
	got := FormatTextToHTML(input)
	want := "<p>Primeira linha segunda linha.</p>\n<p>Terceira frase completa!</p>\n<p>Quarta sem pontuação</p>"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatTextToHTML_Escaping(t *testing.T) {
	got := FormatTextToHTML("2 < 3 & 5 > 4.")
	if !strings.Contains(got, "2 &lt; 3 &amp; 5 &gt; 4.") {
		t.Errorf("text not escaped: %q", got)
	}
}

func TestFormatTextToHTML_Empty(t *testing.T) {
	if got := FormatTextToHTML("   \n  "); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestFormatTextToHTML_WrapsImages(t *testing.T) {
	input := `<p>Veja a figura.</p><img src="a.png" width="120" height="80">`
	got := FormatTextToHTML(input)

	if !strings.Contains(got, `class="img-float"`) {
		t.Fatalf("img not wrapped: %q", got)
	}
	if !strings.Contains(got, "width: 120px;") {
		t.Errorf("float width should come from the img attribute: %q", got)
	}
	if !strings.Contains(got, "<p>Veja a figura.</p>") {
		t.Errorf("surrounding markup must not be re-flowed: %q", got)
	}
}

func TestFormatTextToHTML_DefaultImageWidth(t *testing.T) {
	got := FormatTextToHTML(`<img src="a.png">`)
	if !strings.Contains(got, "width: 180px;") {
		t.Errorf("got %q, want default width", got)
	}
}

func TestFormatTextToHTML_Idempotent(t *testing.T) {
	input := `<p>Texto.</p><img src="a.png" width="90">`
	once := FormatTextToHTML(input)
	twice := FormatTextToHTML(once)
	if once != twice {
		t.Errorf("not idempotent:\nonce:  %s\ntwice: %s", once, twice)
	}
}
