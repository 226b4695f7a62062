// Package textnorm turns registry markup into plain ingredient text.
package textnorm

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
)

// maxTokenBytes caps a single markup token; anything larger is stripped with tagRegex instead
const maxTokenBytes = 1 << 20

var tagRegex = regexp.MustCompile(`<[^>]+>`)

// blockTags separate their neighbours with a space
var blockTags = map[atom.Atom]bool{
	atom.Br: true, atom.P: true, atom.Div: true,
	atom.Li: true, atom.Ul: true, atom.Ol: true,
	atom.Tr: true, atom.Td: true, atom.Th: true, atom.Table: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true,
}

// Normalize removes markup, collapses whitespace and trims.
// Decoded entities can spell out new tags, so the pass repeats until stable;
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	out := normalizeOnce(text)
	for {
		// A pass that changes the text only removes bytes, so this ends.
		next := normalizeOnce(out)
		if len(next) >= len(out) {
			return out
		}
		out = next
	}
}

func normalizeOnce(text string) string {
	if text == "" {
		return ""
	}

	stripped, err := stripTags(text)
	if err != nil {
		stripped = stripTagsRegex(text)
	}

	return collapseSpaces(norm.NFC.String(stripped))
}

// stripTags keeps text tokens, with entities decoded, and drops everything else
func stripTags(text string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(text))
	z.SetMaxBuf(maxTokenBytes)

	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return "", err
			}
			return b.String(), nil
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if blockTags[atom.Lookup(name)] {
				b.WriteByte(' ')
			}
		}
	}
}

func stripTagsRegex(text string) string {
	return tagRegex.ReplaceAllString(text, "")
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
