// Package segment partitions extracted document text into the fixed
// taxonomy of pedagogical sections. Strategies run in strict order
// (divider icons over rich HTML, content fingerprints, delimiter-split
// keyword scoring, generic heading detection) and the first one that
// yields a section wins.
package segment

import (
	"regexp"

	"github.com/edulab/atividades/activity"
)

// Tunable boundaries of the segmentation heuristics.
const (
	// MinSectionLen is the minimum content length for a section to be
	// kept. Sub-threshold matches are discarded, not stored.
	MinSectionLen = 20
	// MinChunkLen is the minimum chunk size considered by the delimiter
	// strategy.
	MinChunkLen = 50
	// KeywordWindow is how far into a chunk keyword scoring looks.
	KeywordWindow = 800
	// MultiSectionChunk is the size above which a chunk may contain more
	// than one section and gets a slicing sub-pass.
	MultiSectionChunk = 3000
	// LogoPrefix: an image-only paragraph with less preceding content
	// than this is taken for a logo, not a section divider.
	LogoPrefix = 200
	// DividerFollow: minimum content after an image for it to divide.
	DividerFollow = 300
	// DividerWidth: a declared width above this qualifies an image as a
	// divider regardless of following content.
	DividerWidth = 200
)

// catalogEntry is one known section definition: canonical kind, content
// fingerprints expected to open the section in the source prose, and the
// keyword set used by the delimiter strategy.
type catalogEntry struct {
	kind         activity.Kind
	fingerprints []*regexp.Regexp
	keywords     []string
	minKeywords  int
	priority     int
}

// catalog is the fixed ordered list of known sections. Fingerprints
// match distinctive phrases, not headings — headings are unreliable in
// this document family. Priority orders the catalogue before matches are
// re-sorted by actual position in the document.
var catalog = []catalogEntry{
	{
		kind: activity.KindApresentacao,
		fingerprints: []*regexp.Regexp{
			regexp.MustCompile(`(?i)apresenta[çc][ãa]o\s+da\s+agenda`),
			regexp.MustCompile(`(?i)seja[m]?\s+bem[- ]vindo`),
			regexp.MustCompile(`(?i)nesta\s+agenda,?\s+(vamos|voc[êe])`),
		},
		keywords:    []string{"apresentação", "agenda", "bem-vindo", "conheceremos"},
		minKeywords: 2,
		priority:    1,
	},
	{
		kind: activity.KindMomentoReflexao,
		fingerprints: []*regexp.Regexp{
			regexp.MustCompile(`(?i)momento\s+de\s+reflex[ãa]o`),
			regexp.MustCompile(`(?i)reflita\s+sobre`),
			regexp.MustCompile(`(?i)pare\s+e\s+pense`),
		},
		keywords:    []string{"reflexão", "reflita", "pense", "momento"},
		minKeywords: 2,
		priority:    2,
	},
	{
		kind: activity.KindPorqueAprender,
		fingerprints: []*regexp.Regexp{
			regexp.MustCompile(`(?i)por\s*qu[eê]\s+aprender`),
			regexp.MustCompile(`(?i)import[âa]ncia\s+de\s+(se\s+)?aprender`),
		},
		keywords:    []string{"aprender", "importância", "por que"},
		minKeywords: 2,
		priority:    3,
	},
	{
		kind: activity.KindParaComecar,
		fingerprints: []*regexp.Regexp{
			regexp.MustCompile(`(?i)para\s+come[çc]ar\s+o\s+assunto`),
			regexp.MustCompile(`(?i)para\s+come[çc]armos`),
		},
		keywords:    []string{"começar", "assunto", "iniciar"},
		minKeywords: 2,
		priority:    4,
	},
	{
		kind: activity.KindMergulhando,
		fingerprints: []*regexp.Regexp{
			regexp.MustCompile(`(?i)mergulhando\s+no\s+tema`),
			regexp.MustCompile(`(?i)vamos\s+aprofundar`),
		},
		keywords:    []string{"mergulhando", "tema", "aprofundar", "conceito"},
		minKeywords: 2,
		priority:    5,
	},
	{
		kind: activity.KindVideoaulas,
		fingerprints: []*regexp.Regexp{
			regexp.MustCompile(`(?i)videoaulas?`),
			regexp.MustCompile(`(?i)assista\s+(ao|[àa])s?\s+v[íi]deo`),
		},
		keywords:    []string{"videoaula", "vídeo", "assista"},
		minKeywords: 1,
		priority:    6,
	},
	{
		kind: activity.KindAmpliandoHorizontes,
		fingerprints: []*regexp.Regexp{
			regexp.MustCompile(`(?i)ampliando\s+(seus\s+)?horizontes`),
			regexp.MustCompile(`(?i)para\s+saber\s+mais`),
		},
		keywords:    []string{"ampliando", "horizontes", "saber mais", "complementar"},
		minKeywords: 2,
		priority:    7,
	},
	{
		kind: activity.KindResumindo,
		fingerprints: []*regexp.Regexp{
			regexp.MustCompile(`(?i)resumindo\s+o\s+estudo`),
			regexp.MustCompile(`(?i)em\s+resumo`),
		},
		keywords:    []string{"resumindo", "resumo", "estudamos", "síntese"},
		minKeywords: 2,
		priority:    8,
	},
	{
		kind: activity.KindAtividades,
		fingerprints: []*regexp.Regexp{
			regexp.MustCompile(`(?i)atividades?\s+da\s+agenda`),
			regexp.MustCompile(`(?i)agora\s+[ée]\s+com\s+voc[êe]`),
			regexp.MustCompile(`(?i)realize\s+as?\s+atividades?`),
		},
		keywords:    []string{"atividade", "exercício", "questão", "responda"},
		minKeywords: 2,
		priority:    9,
	},
	{
		kind: activity.KindFichario,
		fingerprints: []*regexp.Regexp{
			regexp.MustCompile(`(?i)fich[áa]rio`),
		},
		keywords:    []string{"fichário", "anotações", "registre"},
		minKeywords: 1,
		priority:    10,
	},
	{
		kind: activity.KindMidiateca,
		fingerprints: []*regexp.Regexp{
			regexp.MustCompile(`(?i)midiateca`),
		},
		keywords:    []string{"midiateca", "mídia", "acervo"},
		minKeywords: 1,
		priority:    11,
	},
	{
		kind: activity.KindFaleComTutor,
		fingerprints: []*regexp.Regexp{
			regexp.MustCompile(`(?i)fale\s+com\s+o?\s*seu\s+tutor`),
			regexp.MustCompile(`(?i)d[úu]vidas?[^\n]{0,40}tutor`),
		},
		keywords:    []string{"tutor", "dúvida", "contato"},
		minKeywords: 2,
		priority:    12,
	},
}

// attributionRe matches the trailing "Fonte: autor" boilerplate that
// conventionally terminates each pedagogical block.
var attributionRe = regexp.MustCompile(`(?i)\n?\s*fonte:\s*autor[^\n]*\s*$`)

// attributionSplitRe is the recurring delimiter form used to split the
// document in the delimiter strategy.
var attributionSplitRe = regexp.MustCompile(`(?i)fonte:\s*autor[^\n]*`)
