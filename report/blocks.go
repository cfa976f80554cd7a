package report

import (
	"strings"

	"github.com/go-pdf/fpdf"
)

// Paragraph is a justified body-text block.
type Paragraph string

func (p Paragraph) render(r *renderer) {
	pdf := r.pdf
	pdf.SetFont("Helvetica", "", 10)
	r.text(bodyColor)
	pdf.MultiCell(0, 5, string(p), "", "J", false)
	pdf.Ln(2)
}

// Heading is a subsection header. Headings also appear in the table of
// contents, indented under their section.
type Heading string

func (h Heading) render(r *renderer) {
	pdf := r.pdf
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 13)
	r.text(subsectionColor)
	pdf.CellFormat(0, 8, string(h), "", 1, "L", false, 0, "")
}

// Bullets is an indented bullet list.
type Bullets []string

func (bl Bullets) render(r *renderer) {
	pdf := r.pdf
	pdf.SetFont("Helvetica", "", 10)
	r.text(bodyColor)
	pdf.SetLeftMargin(pageMargin + 5)
	for _, item := range bl {
		pdf.MultiCell(0, 5, "- "+item, "", "L", false)
	}
	pdf.SetLeftMargin(pageMargin)
	pdf.SetX(pageMargin)
	pdf.Ln(2)
}

// Code is a monospace block with a light background, one string per line.
type Code []string

func (c Code) render(r *renderer) {
	pdf := r.pdf
	pdf.SetFont("Courier", "", 8)
	r.text(bodyColor)
	r.fill(codeFill)
	pdf.SetLeftMargin(pageMargin + 3)
	pdf.MultiCell(contentWidth-6, 4, strings.Join(c, "\n"), "", "L", true)
	pdf.SetLeftMargin(pageMargin)
	pdf.SetX(pageMargin)
	pdf.Ln(3)
}

// Formula is a centered monospace block, one string per line.
type Formula []string

func (f Formula) render(r *renderer) {
	pdf := r.pdf
	pdf.Ln(2)
	pdf.SetFont("Courier", "", 10)
	r.text(bodyColor)
	pdf.MultiCell(0, 5, strings.Join(f, "\n"), "", "C", false)
	pdf.Ln(2)
}

// Table is a grid with a filled header row and zebra-striped body rows.
type Table struct {
	Header []string
	Rows   [][]string

	// Widths are column widths in mm; when nil the content width is split
	// evenly.
	Widths []float64
}

func (t Table) render(r *renderer) {
	pdf := r.pdf
	widths := t.Widths
	if widths == nil {
		widths = make([]float64, len(t.Header))
		for i := range widths {
			widths[i] = contentWidth / float64(len(t.Header))
		}
	}

	pdf.SetFont("Helvetica", "B", 9)
	r.fill(tableHeadFill)
	r.draw(tableGridColor)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range t.Header {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	r.text(bodyColor)
	for ri, row := range t.Rows {
		if ri%2 == 1 {
			r.fill(tableZebraFill)
		} else {
			r.fill(rgb{255, 255, 255})
		}
		for ci, cell := range row {
			pdf.CellFormat(widths[ci], 7, cell, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

// Diagram is a vector box-and-arrow figure drawn with PDF primitives.
// Box and arrow coordinates are in mm relative to the diagram origin; the
// diagram is centered horizontally.
type Diagram struct {
	Width, Height float64
	Boxes         []DiagramBox
	Arrows        []DiagramArrow
	Caption       string
}

// DiagramBox is a filled, stroked rectangle with centered label lines.
type DiagramBox struct {
	X, Y, W, H float64
	Lines      []string
}

// DiagramArrow is a straight connector. Head controls whether an arrowhead
// is drawn at (X2, Y2); plain segments set it to false.
type DiagramArrow struct {
	X1, Y1, X2, Y2 float64
	Head           bool
}

func (d Diagram) render(r *renderer) {
	pdf := r.pdf

	// Keep the figure on one page.
	if _, ph := pdf.GetPageSize(); pdf.GetY()+d.Height+12 > ph-pageMargin {
		pdf.AddPage()
	}
	x0 := pageMargin + (contentWidth-d.Width)/2
	y0 := pdf.GetY() + 3

	pdf.SetLineWidth(0.3)
	r.fill(boxFill)
	r.draw(boxStroke)
	for _, b := range d.Boxes {
		pdf.Rect(x0+b.X, y0+b.Y, b.W, b.H, "FD")
	}

	pdf.SetFont("Helvetica", "", 8)
	r.text(bodyColor)
	for _, b := range d.Boxes {
		lineHeight := 3.5
		ty := y0 + b.Y + (b.H-lineHeight*float64(len(b.Lines)))/2
		for _, line := range b.Lines {
			pdf.SetXY(x0+b.X, ty)
			pdf.CellFormat(b.W, lineHeight, line, "", 0, "C", false, 0, "")
			ty += lineHeight
		}
	}

	pdf.SetLineWidth(0.5)
	r.draw(arrowColor)
	r.fill(arrowColor)
	for _, a := range d.Arrows {
		pdf.Line(x0+a.X1, y0+a.Y1, x0+a.X2, y0+a.Y2)
		if a.Head {
			r.arrowHead(x0+a.X1, y0+a.Y1, x0+a.X2, y0+a.Y2)
		}
	}

	pdf.SetY(y0 + d.Height + 3)
	if d.Caption != "" {
		pdf.SetFont("Helvetica", "I", 9)
		r.text(captionColor)
		pdf.CellFormat(0, 5, d.Caption, "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)
}

// arrowHead draws a filled triangle at (x2, y2) pointing along the segment.
// Only axis-aligned segments occur in the report's diagrams.
func (r *renderer) arrowHead(x1, y1, x2, y2 float64) {
	const size = 2.0
	var pts [3]struct{ x, y float64 }
	switch {
	case x2 > x1: // rightward
		pts = [3]struct{ x, y float64 }{{x2, y2}, {x2 - size, y2 - size/2}, {x2 - size, y2 + size/2}}
	case x2 < x1: // leftward
		pts = [3]struct{ x, y float64 }{{x2, y2}, {x2 + size, y2 - size/2}, {x2 + size, y2 + size/2}}
	case y2 > y1: // downward
		pts = [3]struct{ x, y float64 }{{x2, y2}, {x2 - size/2, y2 - size}, {x2 + size/2, y2 - size}}
	default: // upward
		pts = [3]struct{ x, y float64 }{{x2, y2}, {x2 - size/2, y2 + size}, {x2 + size/2, y2 + size}}
	}
	poly := make([]fpdf.PointType, len(pts))
	for i, p := range pts {
		poly[i] = fpdf.PointType{X: p.x, Y: p.y}
	}
	r.pdf.Polygon(poly, "F")
}
