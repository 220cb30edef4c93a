package segment

import (
	"strings"
	"testing"
)

func dividerFragment() string {
	intro := strings.Repeat("texto de abertura ", 15)
	return strings.Join([]string{
		`<p><img src="logo.png" width="100"></p>`,
		"<p>" + intro + "</p>",
		`<p><img src="d1.png" width="300"></p>`,
		"<p>Conteúdo da primeira seção com texto suficiente.</p>",
		`<p><img src="d2.png" width="300"></p>`,
		"<p>Conteúdo da segunda seção também com texto bastante.</p>",
	}, "\n")
}

func TestDivider_PositionalNaming(t *testing.T) {
	s := &dividerStrategy{}
	sm, ok := s.TrySegment("", dividerFragment())
	if !ok {
		t.Fatal("strategy did not apply")
	}

	keys := sm.Keys()
	want := []string{"apresentacao", "momentoReflexao"}
	if len(keys) != 2 || keys[0] != want[0] || keys[1] != want[1] {
		t.Fatalf("keys = %v, want %v", keys, want)
	}

	first, _ := sm.Get("apresentacao")
	if !first.IsHTML() {
		t.Error("divider sections must carry HTML content")
	}
	if !strings.Contains(first.HTML, "primeira seção") {
		t.Errorf("apresentacao HTML = %q", first.HTML)
	}
	if strings.Contains(first.HTML, "segunda seção") {
		t.Error("section content crosses the next divider")
	}
}

func TestDivider_LogoNotADivider(t *testing.T) {
	fragment := strings.Join([]string{
		`<p><img src="logo.png" width="300"></p>`,
		"<p>" + strings.Repeat("texto corrido ", 40) + "</p>",
	}, "\n")

	s := &dividerStrategy{}
	if _, ok := s.TrySegment("", fragment); ok {
		t.Fatal("a leading logo must not start a section")
	}
}

func TestDivider_NeedsTwoDividers(t *testing.T) {
	fragment := strings.Join([]string{
		"<p>" + strings.Repeat("abertura longa ", 20) + "</p>",
		`<p><img src="d1.png" width="300"></p>`,
		"<p>Conteúdo depois de um único divisor com texto suficiente.</p>",
	}, "\n")

	s := &dividerStrategy{}
	if _, ok := s.TrySegment("", fragment); ok {
		t.Fatal("a single divider must hand over to the text strategies")
	}
}

func TestDivider_EmptyHTML(t *testing.T) {
	s := &dividerStrategy{}
	if _, ok := s.TrySegment("qualquer texto", "   "); ok {
		t.Fatal("strategy should not apply without rich HTML")
	}
}

func TestDivider_ManyDividersSynthesizeKeys(t *testing.T) {
	var parts []string
	parts = append(parts, "<p>"+strings.Repeat("abertura ", 30)+"</p>")
	for i := 0; i < 13; i++ {
		parts = append(parts, `<p><img src="d.png" width="300"></p>`)
		parts = append(parts, "<p>Bloco de conteúdo numerado com tamanho suficiente aqui.</p>")
	}
	s := &dividerStrategy{}
	sm, ok := s.TrySegment("", strings.Join(parts, "\n"))
	if !ok {
		t.Fatal("strategy did not apply")
	}
	if sm.Len() != 13 {
		t.Fatalf("Len = %d, want 13", sm.Len())
	}
	keys := sm.Keys()
	if keys[0] != "apresentacao" {
		t.Errorf("keys[0] = %q", keys[0])
	}
	if keys[12] != "secao_13" {
		t.Errorf("keys[12] = %q, want secao_13 beyond the catalogue", keys[12])
	}
}
