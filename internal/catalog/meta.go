package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// PageMeta is the document metadata recovered from a detail page.
// Fields are best-effort; missing markup leaves them empty.
type PageMeta struct {
	// Title is the text of the page's <title> element.
	Title string
	// Description is the meta description, falling back to the
	// OpenGraph description when the plain one is absent.
	Description string
}

// ExtractPageMeta parses detail page HTML and returns its metadata.
//
// Design decision: Unlike tag extraction, titles and descriptions live
// in well-formed head markup, so a real HTML parser is both simpler and
// more reliable here than the regex pipeline.
func ExtractPageMeta(content string) (*PageMeta, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	meta := &PageMeta{}
	walkNodes(doc, meta)
	return meta, nil
}

// walkNodes traverses the node tree collecting metadata elements.
func walkNodes(n *html.Node, meta *PageMeta) {
	if n.Type == html.ElementNode {
		processElement(n, meta)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walkNodes(child, meta)
	}
}

// processElement inspects a single element for metadata.
func processElement(n *html.Node, meta *PageMeta) {
	switch n.Data {
	case "title":
		if meta.Title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
			meta.Title = strings.TrimSpace(n.FirstChild.Data)
		}
	case "meta":
		name := getAttr(n, "name")
		if name == "" {
			name = getAttr(n, "property") // OpenGraph tags use property=
		}
		if (name == "description" || name == "og:description") && meta.Description == "" {
			meta.Description = strings.TrimSpace(getAttr(n, "content"))
		}
	}
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
