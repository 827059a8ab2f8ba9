// Package htmlinput parses HTML tables into raw row input.
package htmlinput

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/autotable/model"
)

// ErrNoTable is returned when the document contains no table element
var ErrNoTable = errors.New("no table element found")

// TableInput holds the sections extracted from one HTML table, ready to be
// passed as build options
type TableInput struct {
	Head []model.RowInput
	Body []model.RowInput
	Foot []model.RowInput
}

// Open parses the first table of an HTML file
func Open(filename string) (*TableInput, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// ParseString parses the first table of an HTML fragment
func ParseString(markup string) (*TableInput, error) {
	return Parse(strings.NewReader(markup))
}

// Parse parses HTML from r and extracts the first table element. Rows in
// thead go to the head section, tfoot to foot, and everything else to
// body. When the table has no thead, leading rows made entirely of th
// cells are treated as head rows.
func Parse(r io.Reader) (*TableInput, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	tableNode := findElement(doc, "table")
	if tableNode == nil {
		return nil, ErrNoTable
	}

	return parseTable(tableNode), nil
}

// parseTable walks the table element's sections and direct tr children
func parseTable(tableNode *html.Node) *TableInput {
	input := &TableInput{}
	var bodyAllHeader []bool

	appendBody := func(tr *html.Node) {
		row, allHeader := parseRow(tr)
		if row.Len() == 0 {
			return
		}
		input.Body = append(input.Body, row)
		bodyAllHeader = append(bodyAllHeader, allHeader)
	}

	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead":
			input.Head = append(input.Head, parseSectionRows(c)...)
		case "tfoot":
			input.Foot = append(input.Foot, parseSectionRows(c)...)
		case "tbody":
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && tr.Data == "tr" {
					appendBody(tr)
				}
			}
		case "tr":
			// Spec-compliant parsers wrap stray rows in a synthesized
			// tbody; hand-built trees may still carry them directly.
			appendBody(c)
		}
	}

	// Markup without an explicit thead commonly opens with th-only rows.
	if len(input.Head) == 0 {
		for len(input.Body) > 0 && bodyAllHeader[0] {
			input.Head = append(input.Head, input.Body[0])
			input.Body = input.Body[1:]
			bodyAllHeader = bodyAllHeader[1:]
		}
	}

	return input
}

// parseSectionRows parses the tr children of a thead/tbody/tfoot element
func parseSectionRows(section *html.Node) []model.RowInput {
	var rows []model.RowInput
	for c := section.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "tr" {
			continue
		}
		row, _ := parseRow(c)
		if row.Len() > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}

// parseRow converts a tr element into a positional row. It also reports
// whether every cell is a th element.
func parseRow(tr *html.Node) (model.RowInput, bool) {
	var cells []any
	allHeader := true

	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}
		if c.Data != "th" {
			allHeader = false
		}

		cell := model.CellInput{Content: textContent(c)}
		for _, attr := range c.Attr {
			switch attr.Key {
			case "colspan":
				fmt.Sscanf(attr.Val, "%d", &cell.ColSpan)
			case "rowspan":
				fmt.Sscanf(attr.Val, "%d", &cell.RowSpan)
			}
		}
		cells = append(cells, cell)
	}

	if len(cells) == 0 {
		return model.RowInput{}, false
	}
	return model.Cells(cells...).WithElement(tr), allHeader
}

// findElement finds the first element with the given tag name
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// textContent extracts the text of a cell, mapping br elements to
// newlines so multi-line cells survive parsing
func textContent(n *html.Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return strings.TrimSpace(sb.String())
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript", "template":
			return
		case "br":
			sb.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
