package report

import (
	"fmt"
	"strings"

	"github.com/gurama/tasktracker/internal/model"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`#`, `\#`,
	`<`, `\<`,
	`>`, `\>`,
)

// Markdown renders the tasks as a Markdown document with the same content
// as the PDF report.
func (g *Generator) Markdown(tasks []model.Task) (*Report, error) {
	rep := g.newReport(FormatMarkdown)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", markdownEscaper.Replace(g.title))
	fmt.Fprintf(&b, "_Generated on: %s_\n\n", g.formatGenerated(rep.GeneratedAt))

	for _, t := range tasks {
		fmt.Fprintf(&b, "## %s %s\n\n", markdownEscaper.Replace(StatusGlyph(t.Status)), markdownEscaper.Replace(DisplayTitle(t.Title)))
		fmt.Fprintf(&b, "- Status: %s\n", StatusText(t.Status))
		fmt.Fprintf(&b, "- Created: %s\n", g.formatDate(t.CreatedAt))
		fmt.Fprintf(&b, "- Last Updated: %s\n\n", g.formatDate(t.UpdatedAt))
	}

	fmt.Fprintf(&b, "---\n\nGenerated by %s\n", markdownEscaper.Replace(g.productName))

	rep.Data = []byte(b.String())
	g.logger.Debugf("Generated markdown report %s with %d tasks", rep.ID, len(tasks))

	return rep, nil
}
