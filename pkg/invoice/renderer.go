// Package invoice renders a single-page A4 PDF invoice for a bill.
//
// Layout, top to bottom: a header with the circular brand logo and the
// shop's contact block, a boxed section with invoice and customer details,
// the line item table with fixed column widths, the totals block and a
// centred footer. Every coordinate is in points from the top-left corner.
package invoice

import (
	"bytes"
	"io"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/swarnaabhushan/backoffice-api/pkg/apperror"
)

// Brand is the shop identity printed in the header.
type Brand struct {
	Name    string
	Address string
	Phone   string
	Email   string
	GSTIN   string
}

// Line is one table row, already formatted for display.
type Line struct {
	Name   string
	Weight string
	Rate   string
	Making string
	Total  string
}

// Document is everything printed on an invoice, already formatted.
type Document struct {
	InvoiceNumber string
	Date          string
	CustomerName  string
	CustomerPhone string
	Lines         []Line
	Subtotal      string
	Tax           string
	Discount      string
	GrandTotal    string
}

type rgb struct{ r, g, b int }

var (
	primaryColor   = rgb{0xd6, 0x28, 0x28}
	highlightColor = rgb{0xfc, 0xbf, 0x49}
	ruleGray       = rgb{0xcc, 0xcc, 0xcc}
	footerGray     = rgb{0x80, 0x80, 0x80}
	black          = rgb{0, 0, 0}
)

const (
	fontFamily = "Helvetica"

	top         = 36.0
	colStart    = 36.0
	logoSize    = 80.0
	headerGap   = 16.0
	boxHeight   = 60.0
	boxPaddingX = 12.0
	rowHeight   = 20.0
	cellPadding = 5.0
	totalsGap   = 15.0

	// highlightAlpha tints the table header fill
	highlightAlpha = 0.5
)

var (
	colWidths  = [5]float64{150, 80, 80, 80, 150}
	colHeaders = [5]string{"Item", "Weight (g)", "Rate/g", "Making", "Total"}
	colAligns  = [5]string{"L", "C", "C", "C", "R"}
)

var footerLines = []string{
	"This is a computer-generated invoice - no signature required.",
	"All jewellery sold is hallmarked as per BIS standards. Prices include GST.",
}

func tableWidth() float64 {
	var w float64
	for _, c := range colWidths {
		w += c
	}
	return w
}

// Renderer draws invoices for one brand.
type Renderer struct {
	brand    Brand
	logoPath string
}

// NewRenderer creates a renderer; the logo is read on every render so a
// replaced file is picked up without a restart.
func NewRenderer(brand Brand, logoPath string) *Renderer {
	return &Renderer{brand: brand, logoPath: logoPath}
}

// Render writes the PDF for doc to w. A missing logo file fails the render
// with an AssetNotFound error before anything is written.
func (r *Renderer) Render(w io.Writer, doc Document) error {
	logo, err := loadLogo(r.logoPath)
	if err != nil {
		return err
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle("Invoice "+doc.InvoiceNumber, true)
	pdf.SetCreator(r.brand.Name, true)
	pdf.AddPage()

	p := &page{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.RegisterImageOptionsReader("logo", gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(logo))

	y := p.header(r.brand)
	y = p.details(y, doc)
	y = p.table(y, doc.Lines)
	y = p.totals(y, doc)
	p.footer(y, r.brand.Name)

	if err := pdf.Output(w); err != nil {
		return apperror.NewInternalError("Failed to render invoice", err)
	}
	return nil
}

// page wraps the PDF with top-left text placement and colour helpers.
type page struct {
	pdf      *gofpdf.Fpdf
	tr       func(string) string
	fontSize float64
}

func (p *page) font(style string, size float64) {
	p.pdf.SetFont(fontFamily, style, size)
	p.fontSize = size
}

func (p *page) textColor(c rgb) { p.pdf.SetTextColor(c.r, c.g, c.b) }
func (p *page) drawColor(c rgb) { p.pdf.SetDrawColor(c.r, c.g, c.b) }
func (p *page) fillColor(c rgb) { p.pdf.SetFillColor(c.r, c.g, c.b) }

func (p *page) width(s string) float64 {
	return p.pdf.GetStringWidth(p.tr(s))
}

// text draws s with its top edge at y
func (p *page) text(x, y float64, s string) {
	p.pdf.Text(x, y+p.fontSize*0.8, p.tr(s))
}

// textRight draws s so that it ends at right
func (p *page) textRight(right, y float64, s string) {
	p.text(right-p.width(s), y, s)
}

func (p *page) textCentered(y float64, s string) {
	pageWidth, _ := p.pdf.GetPageSize()
	p.text((pageWidth-p.width(s))/2, y, s)
}

func (p *page) rule(c rgb, lineWidth, x1, x2, y float64) {
	p.drawColor(c)
	p.pdf.SetLineWidth(lineWidth)
	p.pdf.Line(x1, y, x2, y)
}

// fit shortens s with an ellipsis until it is at most max wide
func (p *page) fit(s string, max float64) string {
	if p.width(s) <= max {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimSpace(string(runes)) + "..."
		if p.width(candidate) <= max {
			return candidate
		}
	}
	return ""
}

// header draws the logo, brand block and the rule beneath them and returns
// the y the next section starts at.
func (p *page) header(brand Brand) float64 {
	radius := logoSize / 2
	p.pdf.ClipCircle(colStart+radius, top+radius, radius, false)
	p.pdf.ImageOptions("logo", colStart, top, logoSize, logoSize, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	p.pdf.ClipEnd()

	x := colStart + logoSize + headerGap
	p.textColor(primaryColor)
	p.font("B", 20)
	p.text(x, top, brand.Name)

	p.textColor(black)
	p.font("", 8)
	y := top + logoSize/2
	for _, line := range []string{
		brand.Address,
		"Phone: " + brand.Phone + " | Email: " + brand.Email,
		"GSTIN: " + brand.GSTIN,
	} {
		p.text(x, y, line)
		y += 10
	}

	ruleY := top + logoSize + 5
	p.rule(primaryColor, 2, colStart, colStart+tableWidth(), ruleY)
	return ruleY + 18
}

// details draws the bordered invoice and customer box
func (p *page) details(y float64, doc Document) float64 {
	p.drawColor(highlightColor)
	p.pdf.SetLineWidth(2)
	p.pdf.Rect(colStart, y, tableWidth(), boxHeight, "D")

	leftX := colStart + boxPaddingX
	rightX := 300.0
	rowY := y + 10

	p.textColor(black)
	pairs := []struct {
		x, valueOffset, y float64
		label, value      string
	}{
		{leftX, 60, rowY, "Invoice No:", doc.InvoiceNumber},
		{leftX, 60, rowY + 15, "Date:", doc.Date},
		{rightX, 50, rowY, "Customer:", doc.CustomerName},
		{rightX, 50, rowY + 15, "Phone:", doc.CustomerPhone},
	}
	for _, pair := range pairs {
		p.font("B", 10)
		p.text(pair.x, pair.y, pair.label)
		p.font("", 10)
		p.text(pair.x+pair.valueOffset, pair.y, pair.value)
	}

	return y + boxHeight + 20
}

// cell places s inside column i according to the column's alignment
func (p *page) cell(i int, y float64, s string) {
	x := colStart
	for _, w := range colWidths[:i] {
		x += w
	}
	width := colWidths[i]
	s = p.fit(s, width-2*cellPadding)

	switch colAligns[i] {
	case "R":
		p.text(x+width-p.width(s)-cellPadding, y+cellPadding, s)
	case "C":
		p.text(x+(width-p.width(s))/2, y+cellPadding, s)
	default:
		p.text(x+cellPadding, y+cellPadding, s)
	}
}

// table draws the header row and one row per line item
func (p *page) table(y float64, lines []Line) float64 {
	right := colStart + tableWidth()

	p.pdf.SetAlpha(highlightAlpha, "Normal")
	p.fillColor(highlightColor)
	p.pdf.Rect(colStart, y, tableWidth(), rowHeight, "F")
	p.pdf.SetAlpha(1, "Normal")

	p.textColor(black)
	p.font("B", 10)
	for i, h := range colHeaders {
		p.cell(i, y, h)
	}
	y += rowHeight

	p.font("", 10)
	for _, l := range lines {
		p.rule(ruleGray, 1, colStart, right, y)
		for i, s := range []string{l.Name, l.Weight, l.Rate, l.Making, l.Total} {
			p.cell(i, y, s)
		}
		y += rowHeight
	}
	p.rule(ruleGray, 1, colStart, right, y)
	return y
}

// totals draws right-aligned label and value pairs under the last two
// columns, with the grand total between two rules.
func (p *page) totals(y float64, doc Document) float64 {
	totalsStart := colStart + colWidths[0] + colWidths[1] + colWidths[2]
	labelRight := totalsStart
	valueRight := colStart + tableWidth() - 10
	right := colStart + tableWidth()

	p.textColor(black)
	p.font("B", 10)
	y += 5
	for _, row := range [][2]string{
		{"Subtotal:", doc.Subtotal},
		{"Tax:", doc.Tax},
		{"Discount:", doc.Discount},
	} {
		p.textRight(labelRight, y, row[0])
		p.textRight(valueRight, y, row[1])
		y += totalsGap
	}

	p.rule(black, 2, totalsStart, right, y)

	y += 5
	p.font("B", 12)
	p.textRight(labelRight, y, "Grand Total:")
	p.textRight(valueRight, y, doc.GrandTotal)

	y += 25
	p.rule(black, 2, totalsStart, right, y)
	return y
}

func (p *page) footer(y float64, brandName string) {
	y += 30
	p.textColor(footerGray)
	p.font("", 8)
	for _, line := range footerLines {
		p.textCentered(y, line)
		y += 10
	}

	y += 5
	p.textColor(black)
	p.font("B", 10)
	p.textCentered(y, "Thank you for shopping with "+brandName+"!")
}
