package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/gurama/tasktracker/internal/model"
)

// Page geometry, in millimetres on an A4 portrait page.
const (
	leftMargin     = 20.0
	detailIndent   = 25.0
	titleY         = 20.0
	generatedY     = 30.0
	firstBlockY    = 50.0
	nextPageBlockY = 20.0
	blockHeight    = 25.0
	maxBlockY      = 250.0
	productFooterY = 285.0
	pageFooterY    = 290.0
)

// paginate splits count task blocks in pages, returning the block indexes
// of every page. There is always at least one page.
func paginate(count int) [][]int {
	pages := [][]int{{}}
	y := firstBlockY
	for i := 0; i < count; i++ {
		if y > maxBlockY {
			pages = append(pages, []int{})
			y = nextPageBlockY
		}
		pages[len(pages)-1] = append(pages[len(pages)-1], i)
		y += blockHeight
	}
	return pages
}

// PDF renders the tasks as a paginated A4 document.
//
// Text uses the core Helvetica font with the cp1252 encoding, characters
// outside of it (CJK, emoji...) are rendered as ".".
func (g *Generator) PDF(tasks []model.Task) (*Report, error) {
	rep := g.newReport(FormatPDF)
	pages := paginate(len(tasks))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(g.compress)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(g.title, true)
	pdf.SetSubject(rep.ID, false)
	pdf.SetCreator(g.productName, true)
	pdf.SetCreationDate(rep.GeneratedAt)
	pdf.SetModificationDate(rep.GeneratedAt)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, _ := pdf.GetPageSize()
	centered := func(y float64, s string) {
		s = tr(s)
		pdf.Text((pageWidth-pdf.GetStringWidth(s))/2, y, s)
	}

	total := len(pages)
	pdf.SetFooterFunc(func() {
		pdf.SetFont("Helvetica", "", 10)
		centered(productFooterY, "Generated by "+g.productName)
		centered(pageFooterY, fmt.Sprintf("Page %d of %d", pdf.PageNo(), total))
	})

	for pageIdx, blocks := range pages {
		pdf.AddPage()

		y := nextPageBlockY
		if pageIdx == 0 {
			pdf.SetFont("Helvetica", "B", 20)
			centered(titleY, g.title)
			pdf.SetFont("Helvetica", "", 12)
			pdf.Text(leftMargin, generatedY, tr("Generated on: "+g.formatGenerated(rep.GeneratedAt)))
			y = firstBlockY
		}

		for _, i := range blocks {
			t := tasks[i]
			pdf.SetFont("Helvetica", "", 14)
			pdf.Text(leftMargin, y, tr(StatusGlyph(t.Status)+" "+DisplayTitle(t.Title)))
			pdf.SetFont("Helvetica", "", 10)
			pdf.Text(detailIndent, y+5, "Status: "+StatusText(t.Status))
			pdf.Text(detailIndent, y+10, "Created: "+g.formatDate(t.CreatedAt))
			pdf.Text(detailIndent, y+15, "Last Updated: "+g.formatDate(t.UpdatedAt))
			y += blockHeight
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("could not render pdf: %w", err)
	}

	rep.Pages = pdf.PageCount()
	rep.Data = buf.Bytes()
	g.logger.Debugf("Generated PDF report %s with %d tasks in %d pages", rep.ID, len(tasks), rep.Pages)

	return rep, nil
}
