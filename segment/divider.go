package segment

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/edulab/atividades/activity"
)

// dividerStrategy segments the rich HTML by treating standalone
// image-only paragraphs as section-divider icons. The icons carry no
// machine-readable label, so sections are named by position against the
// catalogue order. Applies only when the document yields at least two
// qualified dividers; otherwise the text fingerprints get their turn.
type dividerStrategy struct{}

func (s *dividerStrategy) Name() string { return "divider" }

// htmlBlock is one top-level block of the rich HTML fragment.
type htmlBlock struct {
	html      string
	textLen   int
	imageOnly bool
	width     int
}

func (s *dividerStrategy) TrySegment(_, richHTML string) (*activity.SectionMap, bool) {
	if strings.TrimSpace(richHTML) == "" {
		return nil, false
	}

	blocks := parseBlocks(richHTML)
	if len(blocks) == 0 {
		return nil, false
	}

	dividers := qualifyDividers(blocks)
	if len(dividers) < 2 {
		return nil, false
	}

	kinds := activity.KnownKinds()
	sm := activity.NewSectionMap()
	for i, div := range dividers {
		from := div + 1
		to := len(blocks)
		if i+1 < len(dividers) {
			to = dividers[i+1]
		}

		var parts []string
		textLen := 0
		for _, b := range blocks[from:to] {
			parts = append(parts, b.html)
			textLen += b.textLen
		}
		if textLen < MinSectionLen {
			continue
		}

		section := activity.Section{HTML: strings.Join(parts, "\n")}
		if i < len(kinds) {
			section.Key = kinds[i].Key()
			section.Kind = kinds[i]
		} else {
			section.Key = fmt.Sprintf("secao_%d", i+1)
			section.Kind = activity.KindGeneric
		}
		sm.Add(section)
	}

	if sm.Len() == 0 {
		return nil, false
	}
	return sm, true
}

// qualifyDividers returns the indices of image-only blocks that qualify
// as section dividers. The very first image with under LogoPrefix chars
// of preceding content is a logo. A remaining candidate divides when it
// has more than DividerFollow chars before the next candidate, or its
// declared width exceeds DividerWidth.
func qualifyDividers(blocks []htmlBlock) []int {
	var dividers []int
	preceding := 0
	firstImage := true

	for i, b := range blocks {
		if !b.imageOnly {
			preceding += b.textLen
			continue
		}

		isLogo := firstImage && preceding < LogoPrefix
		firstImage = false
		if isLogo {
			continue
		}

		following := 0
		for _, nb := range blocks[i+1:] {
			if nb.imageOnly {
				break
			}
			following += nb.textLen
		}
		if following > DividerFollow || b.width > DividerWidth {
			dividers = append(dividers, i)
		}
	}
	return dividers
}

// parseBlocks splits an HTML fragment into its top-level blocks.
func parseBlocks(fragment string) []htmlBlock {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return nil
	}

	var blocks []htmlBlock
	for _, n := range nodes {
		if n.Type != html.ElementNode {
			if n.Type == html.TextNode && strings.TrimSpace(n.Data) != "" {
				blocks = append(blocks, htmlBlock{
					html:    n.Data,
					textLen: len(strings.TrimSpace(n.Data)),
				})
			}
			continue
		}

		text := collectNodeText(n)
		width, hasImg := findImageWidth(n)
		blocks = append(blocks, htmlBlock{
			html:      renderNode(n),
			textLen:   len(text),
			imageOnly: hasImg && text == "",
			width:     width,
		})
	}
	return blocks
}

// collectNodeText extracts the trimmed visible text of a subtree.
func collectNodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// findImageWidth reports whether the subtree contains an img and the
// largest declared width attribute among them.
func findImageWidth(n *html.Node) (int, bool) {
	width := 0
	found := false
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Img {
			found = true
			for _, a := range n.Attr {
				if a.Key == "width" {
					if w, err := strconv.Atoi(strings.TrimSuffix(a.Val, "px")); err == nil && w > width {
						width = w
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return width, found
}

// renderNode serializes a node back to HTML.
func renderNode(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}
