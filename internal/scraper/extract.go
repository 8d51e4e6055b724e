package scraper

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"salon-assistant-backend/internal/model"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// ExtractSnippets walks the salon page and pulls out the pieces worth
// indexing: the page title, service headings and list items, FAQ-looking
// text, and the contact section or footer.
func ExtractSnippets(r io.Reader, sourceURL string) []model.KnowledgeSnippet {
	doc, err := html.Parse(r)
	if err != nil {
		return nil
	}

	var snippets []model.KnowledgeSnippet
	add := func(kind, text string) {
		text = collapseWhitespace(text)
		if text == "" {
			return
		}
		snippets = append(snippets, model.KnowledgeSnippet{
			Kind:      kind,
			Text:      text,
			SourceURL: sourceURL,
		})
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				add(model.SnippetKindTitle, nodeText(n))
				return
			case "h1", "h2", "h3", "li":
				add(model.SnippetKindService, nodeText(n))
				return
			case "footer":
				add(model.SnippetKindContact, nodeText(n))
				return
			case "div":
				if hasClass(n, "contact") {
					add(model.SnippetKindContact, nodeText(n))
					return
				}
				if hasClass(n, "faq") {
					add(model.SnippetKindFAQ, nodeText(n))
					return
				}
			case "script", "style", "noscript":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return snippets
}

// nodeText concatenates all text beneath a node, skipping script and style.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		case n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style"):
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
