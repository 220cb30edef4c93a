// Package activity defines the core types exchanged by the document
// pipeline: the parsed document, its extracted metadata, the ordered
// section map, and the instructor-supplied activity info.
package activity

import "strings"

// Kind identifies a known pedagogical section, or KindGeneric for
// sections synthesized from unrecognized content.
type Kind int

const (
	KindGeneric Kind = iota
	KindApresentacao
	KindMomentoReflexao
	KindPorqueAprender
	KindParaComecar
	KindMergulhando
	KindVideoaulas
	KindAmpliandoHorizontes
	KindResumindo
	KindAtividades
	KindFichario
	KindMidiateca
	KindFaleComTutor
)

// kindInfo carries the canonical key, display title, and icon of a kind.
type kindInfo struct {
	key   string
	title string
	icon  string
}

var kinds = map[Kind]kindInfo{
	KindApresentacao:        {"apresentacao", "Apresentação", "📋"},
	KindMomentoReflexao:     {"momentoReflexao", "Momento de reflexão", "🤔"},
	KindPorqueAprender:      {"porqueAprender", "Por que Aprender?", "💡"},
	KindParaComecar:         {"paraComeccar", "Para começar o assunto", "🚀"},
	KindMergulhando:         {"mergulhando", "Mergulhando no tema", "🌊"},
	KindVideoaulas:          {"videoaulas", "Videoaulas", "🎥"},
	KindAmpliandoHorizontes: {"ampliandoHorizontes", "Ampliando Horizontes", "🔭"},
	KindResumindo:           {"resumindo", "Resumindo o Estudo", "📝"},
	KindAtividades:          {"atividades", "Atividades", "✏️"},
	KindFichario:            {"fichario", "Fichário", "🗂️"},
	KindMidiateca:           {"midiateca", "Midiateca", "📚"},
	KindFaleComTutor:        {"faleComTutor", "Fale com o seu Tutor", "💬"},
}

// Key returns the canonical section key, or "" for KindGeneric.
func (k Kind) Key() string { return kinds[k].key }

// Title returns the display title, or "" for KindGeneric.
func (k Kind) Title() string { return kinds[k].title }

// Icon returns the display icon, or "" for KindGeneric.
func (k Kind) Icon() string { return kinds[k].icon }

// KnownKinds returns all known kinds in catalogue order.
func KnownKinds() []Kind {
	return []Kind{
		KindApresentacao, KindMomentoReflexao, KindPorqueAprender,
		KindParaComecar, KindMergulhando, KindVideoaulas,
		KindAmpliandoHorizontes, KindResumindo, KindAtividades,
		KindFichario, KindMidiateca, KindFaleComTutor,
	}
}

// KindByKey resolves a canonical key to its kind. Unknown keys map to
// KindGeneric.
func KindByKey(key string) Kind {
	for k, info := range kinds {
		if info.key == key {
			return k
		}
	}
	return KindGeneric
}

// Section is one recovered pedagogical section. Exactly one of Text and
// HTML is set: Text for plain-text content, HTML for a markup fragment.
type Section struct {
	Key  string `json:"key"`
	Kind Kind   `json:"-"`
	Text string `json:"text,omitempty"`
	HTML string `json:"html,omitempty"`
}

// IsHTML reports whether the section carries a markup fragment.
func (s Section) IsHTML() bool { return s.HTML != "" }

// Content returns whichever representation the section carries.
func (s Section) Content() string {
	if s.HTML != "" {
		return s.HTML
	}
	return s.Text
}

// Prazos holds the activity deadlines recovered from the document,
// formatted as they appeared (DD/MM/YYYY HH:MM).
type Prazos struct {
	Inicio string `json:"inicio,omitempty"`
	Fim    string `json:"fim,omitempty"`
}

// Metadata is the scalar field set recovered from the document body plus
// the segmented sections.
type Metadata struct {
	Curso     string      `json:"curso,omitempty"`
	Modulo    string      `json:"modulo,omitempty"`
	Agenda    string      `json:"agenda,omitempty"`
	Professor string      `json:"professor,omitempty"`
	Titulo    string      `json:"titulo,omitempty"`
	Sections  *SectionMap `json:"sections,omitempty"`
}

// ParsedDocument is the result of extracting one uploaded file. Created
// once per upload, held in the transient store, consumed exactly once by
// the renderer.
type ParsedDocument struct {
	RawText  string   `json:"raw_text"`
	RichHTML string   `json:"rich_html,omitempty"`
	Metadata Metadata `json:"metadata"`
}

// ActivityInfo carries the instructor-typed defaults. Extracted metadata
// always wins over these; they fill only fields extraction left blank.
type ActivityInfo struct {
	Titulo        string `json:"titulo"`
	Curso         string `json:"curso"`
	Modulo        string `json:"modulo"`
	Agenda        string `json:"agenda"`
	ProfessorNome string `json:"professor_nome"`
	DataInicio    string `json:"data_inicio"`
	DataFim       string `json:"data_fim"`
}

// Resolve returns the extracted value when non-blank, otherwise the
// instructor-supplied fallback. Document-derived data is authoritative.
func Resolve(extracted, fallback string) string {
	if strings.TrimSpace(extracted) != "" {
		return extracted
	}
	return fallback
}
