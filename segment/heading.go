package segment

import (
	"strings"
	"unicode"

	"github.com/edulab/atividades/activity"
)

// headingStrategy is the last-resort generic pass: scan lines for
// heading-like candidates and take the content between consecutive
// headings as sections, keyed by a slug of the heading text.
type headingStrategy struct{}

func (s *headingStrategy) Name() string { return "heading" }

func (s *headingStrategy) TrySegment(rawText, _ string) (*activity.SectionMap, bool) {
	lines := strings.Split(rawText, "\n")

	type heading struct {
		line int
		text string
	}
	var headings []heading
	for i, line := range lines {
		if isHeadingLine(strings.TrimSpace(line)) {
			headings = append(headings, heading{line: i, text: strings.TrimSpace(line)})
		}
	}
	if len(headings) == 0 {
		return nil, false
	}

	sm := activity.NewSectionMap()
	for i, h := range headings {
		from := h.line + 1
		to := len(lines)
		if i+1 < len(headings) {
			to = headings[i+1].line
		}
		content := strings.TrimSpace(strings.Join(lines[from:to], "\n"))
		if len(content) < MinSectionLen {
			continue
		}
		sm.Add(activity.Section{
			Key:  Slugify(h.text),
			Kind: activity.KindGeneric,
			Text: content,
		})
	}

	if sm.Len() == 0 {
		return nil, false
	}
	return sm, true
}

// isHeadingLine reports whether a line looks like a section heading:
// length within [5,100) runes, starts with an uppercase letter, and does
// not end in sentence-terminating punctuation.
func isHeadingLine(line string) bool {
	runes := []rune(line)
	if len(runes) < 5 || len(runes) >= 100 {
		return false
	}
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	switch runes[len(runes)-1] {
	case '.', '!', '?', ':', ';', ',', '…':
		return false
	}
	return true
}

// diacritics maps accented letters to their base form for slug
// generation.
var diacritics = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c', 'ñ': 'n',
	'Á': 'a', 'À': 'a', 'Â': 'a', 'Ã': 'a', 'Ä': 'a',
	'É': 'e', 'È': 'e', 'Ê': 'e', 'Ë': 'e',
	'Í': 'i', 'Ì': 'i', 'Î': 'i', 'Ï': 'i',
	'Ó': 'o', 'Ò': 'o', 'Ô': 'o', 'Õ': 'o', 'Ö': 'o',
	'Ú': 'u', 'Ù': 'u', 'Û': 'u', 'Ü': 'u',
	'Ç': 'c', 'Ñ': 'n',
}

// Slugify derives a section key from heading text: diacritics stripped,
// lowercased, runs of non-alphanumerics collapsed to single underscores.
func Slugify(text string) string {
	var sb strings.Builder
	lastUnderscore := false
	for _, r := range text {
		if base, ok := diacritics[r]; ok {
			r = base
		}
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
			lastUnderscore = false
		} else if !lastUnderscore && sb.Len() > 0 {
			sb.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.Trim(sb.String(), "_")
}
