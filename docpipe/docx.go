package docpipe

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"html"
	"image"
	"io"
	"net/http"
	"strconv"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// emuPerPixel converts OOXML layout extents to CSS pixels.
const emuPerPixel = 9525

// docxImage is one embedded media file from the archive.
type docxImage struct {
	mime string
	data []byte
}

// extractDocx parses a Word document into a raw-text rendition and a
// styled HTML rendition from the same source. Embedded images become
// data URIs sized from the document's own layout extents (EMU) or the
// image's intrinsic dimensions, bounded at cfg.MaxImageWidth.
func (p *Pipeline) extractDocx(path string) (string, string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", "", fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	images := loadDocxMedia(&r.Reader)
	rels, err := loadDocxRels(&r.Reader)
	if err != nil {
		return "", "", err
	}

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", "", fmt.Errorf("word/document.xml not found in archive")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", "", fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	return p.walkDocument(rc, images, rels)
}

// loadDocxMedia reads all files under word/media/ keyed by filename.
func loadDocxMedia(zr *zip.Reader) map[string]docxImage {
	images := make(map[string]docxImage)
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, "word/media/") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			continue
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil || len(data) == 0 {
			continue
		}
		name := strings.TrimPrefix(f.Name, "word/media/")
		images[name] = docxImage{
			mime: http.DetectContentType(data),
			data: data,
		}
	}
	return images
}

// loadDocxRels maps relationship IDs to media filenames. The rels file
// is optional.
func loadDocxRels(zr *zip.Reader) (map[string]string, error) {
	var relsFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/_rels/document.xml.rels" {
			relsFile = f
			break
		}
	}
	rels := make(map[string]string)
	if relsFile == nil {
		return rels, nil
	}
	rc, err := relsFile.Open()
	if err != nil {
		return nil, fmt.Errorf("open rels: %w", err)
	}
	defer rc.Close()

	var parsed struct {
		Relationships []struct {
			ID     string `xml:"Id,attr"`
			Target string `xml:"Target,attr"`
		} `xml:"Relationship"`
	}
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse rels: %w", err)
	}
	for _, rel := range parsed.Relationships {
		if strings.HasPrefix(rel.Target, "media/") {
			rels[rel.ID] = strings.TrimPrefix(rel.Target, "media/")
		}
	}
	return rels, nil
}

// walkDocument streams word/document.xml building both renditions in one
// pass.
func (p *Pipeline) walkDocument(rc io.Reader, images map[string]docxImage, rels map[string]string) (string, string, error) {
	decoder := xml.NewDecoder(rc)

	var rawLines []string
	var htmlParts []string

	var inParagraph, inRunProps bool
	var paragraphStyle string
	var bold, italic bool
	var currentText strings.Builder
	var currentHTML strings.Builder
	var extentCx, extentCy int64

	for {
		tok, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", "", fmt.Errorf("parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				paragraphStyle = ""
				currentText.Reset()
				currentHTML.Reset()
				extentCx, extentCy = 0, 0
			case "pStyle":
				if inParagraph {
					for _, attr := range t.Attr {
						if attr.Name.Local == "val" {
							paragraphStyle = attr.Value
						}
					}
				}
			case "rPr":
				inRunProps = true
			case "b":
				if inRunProps {
					bold = true
				}
			case "i":
				if inRunProps {
					italic = true
				}
			case "extent":
				for _, attr := range t.Attr {
					switch attr.Name.Local {
					case "cx":
						extentCx, _ = strconv.ParseInt(attr.Value, 10, 64)
					case "cy":
						extentCy, _ = strconv.ParseInt(attr.Value, 10, 64)
					}
				}
			case "blip":
				for _, attr := range t.Attr {
					if attr.Name.Local != "embed" {
						continue
					}
					name, ok := rels[attr.Value]
					if !ok {
						continue
					}
					img, ok := images[name]
					if !ok {
						continue
					}
					currentHTML.WriteString(p.imageTag(img, extentCx, extentCy))
				}
			}

		case xml.CharData:
			if inParagraph && !inRunProps {
				text := string(t)
				currentText.WriteString(text)
				escaped := html.EscapeString(text)
				switch {
				case bold && italic:
					currentHTML.WriteString("<strong><em>" + escaped + "</em></strong>")
				case bold:
					currentHTML.WriteString("<strong>" + escaped + "</strong>")
				case italic:
					currentHTML.WriteString("<em>" + escaped + "</em>")
				default:
					currentHTML.WriteString(escaped)
				}
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "rPr":
				inRunProps = false
			case "r":
				bold, italic = false, false
			case "p":
				if !inParagraph {
					continue
				}
				inParagraph = false

				text := strings.TrimSpace(currentText.String())
				frag := strings.TrimSpace(currentHTML.String())
				if text == "" && frag == "" {
					continue
				}

				if text != "" {
					rawLines = append(rawLines, text)
				}
				if level := docxHeadingLevel(paragraphStyle); level > 0 && text != "" {
					htmlParts = append(htmlParts, fmt.Sprintf("<h%d>%s</h%d>", level, frag, level))
				} else {
					htmlParts = append(htmlParts, "<p>"+frag+"</p>")
				}
			}
		}
	}

	return strings.Join(rawLines, "\n"), strings.Join(htmlParts, "\n"), nil
}

// imageTag renders an embedded image as a data-URI img element. Width
// comes from the layout extent when declared, otherwise the intrinsic
// pixel dimensions, scaled down proportionally to the bounded display
// width. The doc-image class lets later stages tell content images from
// section-marker icons.
func (p *Pipeline) imageTag(img docxImage, extentCx, extentCy int64) string {
	w, h := 0, 0
	if extentCx > 0 {
		w = int(extentCx / emuPerPixel)
		h = int(extentCy / emuPerPixel)
	} else if cfg, _, err := image.DecodeConfig(bytes.NewReader(img.data)); err == nil {
		w, h = cfg.Width, cfg.Height
	}

	maxW := p.cfg.MaxImageWidth
	if w > maxW {
		if h > 0 {
			h = h * maxW / w
		}
		w = maxW
	}
	if w <= 0 {
		w = maxW
	}

	src := "data:" + img.mime + ";base64," + base64.StdEncoding.EncodeToString(img.data)
	if h > 0 {
		return fmt.Sprintf(`<img src="%s" width="%d" height="%d" class="doc-image" alt="">`, src, w, h)
	}
	return fmt.Sprintf(`<img src="%s" width="%d" class="doc-image" alt="">`, src, w)
}

// docxHeadingLevel extracts the heading level from a paragraph style
// name. e.g. "Heading1" → 1, "Title" → 1.
func docxHeadingLevel(style string) int {
	lower := strings.ToLower(style)

	if lower == "title" || lower == "titulo" || lower == "título" {
		return 1
	}
	if lower == "subtitle" {
		return 2
	}

	for _, prefix := range []string{"heading", "titre", "titulo", "título"} {
		if strings.HasPrefix(lower, prefix) {
			rest := lower[len(prefix):]
			if len(rest) == 1 && rest[0] >= '1' && rest[0] <= '6' {
				return int(rest[0] - '0')
			}
		}
	}
	return 0
}
