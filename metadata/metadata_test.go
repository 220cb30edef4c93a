package metadata

import "testing"

const sampleHeader = `Curso: Técnico em Informática
Módulo: Redes de Computadores
Número da Agenda: 07
Professor responsável: Ana Souza
Título da atividade: Configuração de roteadores

Corpo do documento começa aqui.`

func TestExtract_AllFields(t *testing.T) {
	meta := Extract(sampleHeader)

	if meta.Curso != "Técnico em Informática" {
		t.Errorf("Curso = %q", meta.Curso)
	}
	if meta.Modulo != "Redes de Computadores" {
		t.Errorf("Modulo = %q", meta.Modulo)
	}
	if meta.Agenda != "07" {
		t.Errorf("Agenda = %q", meta.Agenda)
	}
	if meta.Professor != "Ana Souza" {
		t.Errorf("Professor = %q", meta.Professor)
	}
	if meta.Titulo != "Configuração de roteadores" {
		t.Errorf("Titulo = %q", meta.Titulo)
	}
}

func TestExtract_UnaccentedLabels(t *testing.T) {
	meta := Extract("Modulo: Sem Acento\nTitulo: Plano B\nAgenda: 3")
	if meta.Modulo != "Sem Acento" {
		t.Errorf("Modulo = %q", meta.Modulo)
	}
	if meta.Titulo != "Plano B" {
		t.Errorf("Titulo = %q", meta.Titulo)
	}
	if meta.Agenda != "3" {
		t.Errorf("Agenda = %q", meta.Agenda)
	}
}

func TestExtract_FirstMatchWins(t *testing.T) {
	meta := Extract("Curso: Primeiro\nCurso: Segundo")
	if meta.Curso != "Primeiro" {
		t.Errorf("Curso = %q, want first occurrence", meta.Curso)
	}
}

func TestExtract_MissingLabels(t *testing.T) {
	meta := Extract("Documento sem nenhum rótulo reconhecível.")
	if meta.Curso != "" || meta.Modulo != "" || meta.Agenda != "" || meta.Professor != "" || meta.Titulo != "" {
		t.Errorf("expected empty metadata, got %+v", meta)
	}
}

func TestExtractPrazos(t *testing.T) {
	text := `Atividade avaliativa.
Prazo Inicial: 01/02/2026 08:00
Prazo Final da entrega: 15/02/2026 23:59`

	prazos := ExtractPrazos(text)
	if prazos == nil {
		t.Fatal("expected prazos")
	}
	if prazos.Inicio != "01/02/2026 08:00" {
		t.Errorf("Inicio = %q", prazos.Inicio)
	}
	if prazos.Fim != "15/02/2026 23:59" {
		t.Errorf("Fim = %q", prazos.Fim)
	}
}

func TestExtractPrazos_OnlyOne(t *testing.T) {
	prazos := ExtractPrazos("Prazo Final: 10/03/2026 18:00")
	if prazos == nil {
		t.Fatal("expected prazos")
	}
	if prazos.Inicio != "" {
		t.Errorf("Inicio = %q, want empty", prazos.Inicio)
	}
	if prazos.Fim != "10/03/2026 18:00" {
		t.Errorf("Fim = %q", prazos.Fim)
	}
}

func TestExtractPrazos_None(t *testing.T) {
	if prazos := ExtractPrazos("Sem datas neste documento."); prazos != nil {
		t.Errorf("expected nil, got %+v", prazos)
	}
}
