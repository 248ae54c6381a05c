// Package markdown flattens markdown that generative models wrap around
// their answers back into plain minutes text.
package markdown

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// ToPlainText drops markdown markup from md and keeps its text. Paragraphs
// are separated by a blank line, list items keep a "- " or "N. " marker.
func ToPlainText(md []byte) string {
	doc := parser.NewWithExtensions(parser.CommonExtensions).Parse(md)

	var b strings.Builder
	var counters []int
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		switch n := node.(type) {
		case *ast.Text:
			if entering {
				b.Write(n.Literal)
			}
		case *ast.Code:
			if entering {
				b.Write(n.Literal)
			}
		case *ast.CodeBlock:
			if entering {
				b.WriteString(strings.TrimRight(string(n.Literal), "\n"))
				b.WriteString("\n\n")
			}
		case *ast.Softbreak, *ast.Hardbreak:
			if entering {
				b.WriteString("\n")
			}
		case *ast.List:
			if entering {
				start := n.Start
				if start == 0 {
					start = 1
				}
				counters = append(counters, start)
			} else {
				counters = counters[:len(counters)-1]
				if _, nested := n.Parent.(*ast.ListItem); !nested {
					b.WriteString("\n")
				}
			}
		case *ast.ListItem:
			if !entering {
				break
			}
			if n.ListFlags&ast.ListTypeOrdered != 0 && len(counters) > 0 {
				i := len(counters) - 1
				fmt.Fprintf(&b, "%d. ", counters[i])
				counters[i]++
			} else {
				b.WriteString("- ")
			}
		case *ast.Paragraph, *ast.Heading:
			if entering {
				break
			}
			if _, inItem := node.GetParent().(*ast.ListItem); inItem {
				b.WriteString("\n")
			} else {
				b.WriteString("\n\n")
			}
		}
		return ast.GoToNext
	})

	return strings.TrimSpace(b.String())
}
