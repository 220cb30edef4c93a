package render

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

var (
	tagRe      = regexp.MustCompile(`(?i)<[a-z][^>]*>`)
	imgRe      = regexp.MustCompile(`(?i)<img[^>]*>`)
	imgWidthRe = regexp.MustCompile(`(?i)width="(\d+)`)
)

// terminalPunct ends a genuine paragraph; a line not ending in one of
// these was wrapped by the source extraction and gets merged with the
// next line.
const terminalPunct = ".!?:;"

// defaultImageWidth is the float width used when an img carries no width
// attribute.
const defaultImageWidth = 180

// FormatTextToHTML reconstructs paragraphs from plain extracted text:
// lines are trimmed, blank lines removed, and consecutive lines merged
// into one paragraph unless the prior line ends in terminal punctuation.
// Input that already contains HTML markup is not re-flowed; instead each
// img tag is wrapped in a float-left div sized from its own width
// attribute so inline images wrap with surrounding text as in the source
// document. Applying the function twice to tagged input is a no-op.
func FormatTextToHTML(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	if tagRe.MatchString(input) {
		return wrapImages(input)
	}

	var paragraphs []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			paragraphs = append(paragraphs, "<p>"+html.EscapeString(current.String())+"</p>")
			current.Reset()
		}
	}

	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(line)
		if strings.ContainsRune(terminalPunct, rune(line[len(line)-1])) {
			flush()
		}
	}
	flush()

	return strings.Join(paragraphs, "\n")
}

// wrapImages wraps each img tag in a float-left div with the image's own
// declared width. Already-wrapped fragments pass through unchanged.
func wrapImages(fragment string) string {
	if strings.Contains(fragment, `class="img-float"`) {
		return fragment
	}
	return imgRe.ReplaceAllStringFunc(fragment, func(img string) string {
		width := defaultImageWidth
		if m := imgWidthRe.FindStringSubmatch(img); m != nil {
			if w, err := strconv.Atoi(m[1]); err == nil && w > 0 {
				width = w
			}
		}
		return `<div class="img-float" style="float: left; margin: 0 15px 10px 0; width: ` +
			strconv.Itoa(width) + `px;">` + img + `</div>`
	})
}
