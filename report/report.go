// Package report renders technical documentation of the texture editing
// pipeline as a PDF.
//
// A [Document] is a declarative description — title page, info table and a
// list of sections built from content blocks (paragraphs, bullet lists, code,
// formulas, tables and vector diagrams). [Document.Build] lays it out on A4
// pages with github.com/go-pdf/fpdf. [DefaultDocument] returns the standard
// report describing the renderer's real-time texture editing system.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/gogpu/assetkit"
)

// Page geometry in millimeters (A4 portrait).
const (
	pageMargin   = 20.0
	contentWidth = 210.0 - 2*pageMargin
)

// Document describes a technical report.
type Document struct {
	Title    string
	Subtitle string

	// Info is the key/value metadata table on the title page.
	Info [][2]string

	Sections []Section

	// CreationDate pins the PDF metadata timestamp so that two builds of
	// the same document are byte-identical. Zero uses the current time.
	CreationDate time.Time
}

// Section is a titled sequence of content blocks. Section titles carry their
// own numbering ("3. CPU Texture Edit Buffer"); Build does not renumber.
type Section struct {
	Title  string
	Blocks []Block
}

// A Block is one renderable unit of section content.
type Block interface {
	render(r *renderer)
}

// Build lays the document out and writes the PDF to w.
func (d *Document) Build(w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	if !d.CreationDate.IsZero() {
		pdf.SetCreationDate(d.CreationDate)
		pdf.SetModificationDate(d.CreationDate)
	}

	r := &renderer{pdf: pdf}
	r.titlePage(d)
	r.tableOfContents(d)
	for _, s := range d.Sections {
		pdf.AddPage()
		r.sectionTitle(s.Title)
		for _, b := range s.Blocks {
			b.render(r)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering PDF: %w", err)
	}
	return nil
}

// Save builds the document and writes it to path.
func (d *Document) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := d.Build(f); err != nil {
		return err
	}
	assetkit.Logger().Debug("report saved", "path", path, "sections", len(d.Sections))
	return nil
}

// renderer wraps the fpdf document with the report's shared styling.
type renderer struct {
	pdf *fpdf.Fpdf
}

// Style palette.
var (
	titleColor      = rgb{26, 54, 93}
	subtitleColor   = rgb{74, 85, 104}
	sectionColor    = rgb{44, 82, 130}
	subsectionColor = rgb{43, 108, 176}
	bodyColor       = rgb{45, 55, 72}
	captionColor    = rgb{113, 128, 150}
	tableHeadFill   = rgb{74, 85, 104}
	tableZebraFill  = rgb{247, 250, 252}
	tableGridColor  = rgb{203, 213, 224}
	codeFill        = rgb{247, 250, 252}
	boxFill         = rgb{226, 232, 240}
	boxStroke       = rgb{74, 85, 104}
	arrowColor      = rgb{49, 130, 206}
)

type rgb struct{ r, g, b int }

func (r *renderer) text(c rgb) { r.pdf.SetTextColor(c.r, c.g, c.b) }
func (r *renderer) fill(c rgb) { r.pdf.SetFillColor(c.r, c.g, c.b) }
func (r *renderer) draw(c rgb) { r.pdf.SetDrawColor(c.r, c.g, c.b) }

func (r *renderer) titlePage(d *Document) {
	pdf := r.pdf
	pdf.AddPage()
	pdf.Ln(40)

	pdf.SetFont("Helvetica", "B", 24)
	r.text(titleColor)
	pdf.MultiCell(0, 12, d.Title, "", "C", false)
	pdf.Ln(4)

	if d.Subtitle != "" {
		pdf.SetFont("Helvetica", "", 14)
		r.text(subtitleColor)
		pdf.MultiCell(0, 8, d.Subtitle, "", "C", false)
	}
	pdf.Ln(24)

	if len(d.Info) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "", 10)
	r.draw(tableGridColor)
	const keyWidth = 40.0
	for _, row := range d.Info {
		r.fill(rgb{237, 242, 247})
		r.text(bodyColor)
		pdf.CellFormat(keyWidth, 10, row[0], "1", 0, "L", true, 0, "")
		pdf.CellFormat(contentWidth-keyWidth, 10, row[1], "1", 1, "L", false, 0, "")
	}
}

func (r *renderer) tableOfContents(d *Document) {
	pdf := r.pdf
	pdf.AddPage()
	r.sectionTitle("Contents")

	pdf.SetFont("Helvetica", "", 10)
	r.text(bodyColor)
	for _, s := range d.Sections {
		pdf.CellFormat(0, 7, s.Title, "", 1, "L", false, 0, "")
		for _, b := range s.Blocks {
			if h, ok := b.(Heading); ok {
				pdf.SetX(pageMargin + 8)
				pdf.CellFormat(0, 6, string(h), "", 1, "L", false, 0, "")
			}
		}
	}
}

func (r *renderer) sectionTitle(title string) {
	pdf := r.pdf
	pdf.SetFont("Helvetica", "B", 16)
	r.text(sectionColor)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)
}
