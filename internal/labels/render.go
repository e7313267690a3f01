package labels

import (
	"io"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
)

// Label geometry in centimeters, matching the printed sheets: a 4 cm
// caption column beside an 11 cm value column, with the location strip
// splitting the value width into seven cells.
const (
	leftMargin  = 3.0
	captionColW = 4.0
	valueColW   = 11.0
	stripRowH   = 0.9
	stripGap    = 0.2
	labelGap    = 0.3
	textPad     = 0.15
)

// layout is the per-format label geometry.
type layout struct {
	topMargin    float64
	partRowH     float64
	descRowH     float64
	partFont     float64 // pt, head of the part number
	partTailFont float64 // pt, last five characters
	descFont     float64 // pt; 0 sizes by description length
}

var layouts = map[Format]layout{
	FormatSingle: {topMargin: 2.5, partRowH: 1.9, descRowH: 2.1, partFont: 34, partTailFont: 40, descFont: 20},
	FormatMulti:  {topMargin: 0.8, partRowH: 1.3, descRowH: 0.8, partFont: 17, partTailFont: 22},
}

// stripFills colors the location strip cells: model, station, rack,
// first digit, second digit, level, cell.
var stripFills = [7][3]int{
	{233, 150, 122},
	{173, 216, 230},
	{144, 238, 144},
	{255, 215, 0},
	{173, 216, 230},
	{233, 150, 122},
	{144, 238, 144},
}

var stripWidths = [7]float64{1.7, 2.9, 1.3, 1.2, 1.3, 1.3, 1.3}

// Render typesets pages into an A4 portrait PDF. Page breaks are
// explicit; labels never split across pages.
func Render(w io.Writer, pages []Page, format Format) error {
	lay, ok := layouts[format]
	if !ok {
		lay = layouts[FormatSingle]
	}

	pdf := fpdf.New("P", "cm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetLeftMargin(leftMargin)
	pdf.SetLineWidth(0.035)

	for _, page := range pages {
		pdf.AddPage()
		pdf.SetY(lay.topMargin)
		for _, label := range page.Labels {
			for _, rec := range label.Records {
				renderRecord(pdf, rec, lay)
			}
		}
	}

	return pdf.Output(w)
}

func renderRecord(pdf *fpdf.Fpdf, rec Record, lay layout) {
	y := pdf.GetY()

	pdf.SetXY(leftMargin, y)
	caption(pdf, "Part No", lay.partRowH)
	partBox(pdf, rec.PartNo, lay)

	y += lay.partRowH
	pdf.SetXY(leftMargin, y)
	caption(pdf, "Description", lay.descRowH)
	descBox(pdf, rec.Description, lay)

	y += lay.descRowH + stripGap
	pdf.SetXY(leftMargin, y)
	caption(pdf, "Line Location", stripRowH)
	for i, v := range rec.locationValues() {
		fill := stripFills[i]
		pdf.SetFillColor(fill[0], fill[1], fill[2])
		pdf.CellFormat(stripWidths[i], stripRowH, v, "1", 0, "CM", true, 0, "")
	}

	pdf.SetY(y + stripRowH + labelGap)
}

func caption(pdf *fpdf.Fpdf, text string, h float64) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(captionColW, h, text, "1", 0, "LM", false, 0, "")
}

// partBox prints the part number with the last five characters enlarged,
// both runs on one baseline.
func partBox(pdf *fpdf.Fpdf, partNo string, lay layout) {
	x, y := pdf.GetXY()
	pdf.CellFormat(valueColW, lay.partRowH, "", "1", 0, "", false, 0, "")

	head, tail := splitPartNo(partNo)
	baseFont := lay.partFont
	if tail != "" {
		baseFont = lay.partTailFont
	}
	baseline := y + lay.partRowH/2 + ptToCm(baseFont)*0.35
	tx := x + textPad
	if head != "" {
		pdf.SetFont("Helvetica", "B", lay.partFont)
		pdf.Text(tx, baseline, head)
		tx += pdf.GetStringWidth(head)
	}
	if tail != "" {
		pdf.SetFont("Helvetica", "B", lay.partTailFont)
		pdf.Text(tx, baseline, tail)
	}
	pdf.SetXY(x+valueColW, y)
}

// splitPartNo separates the head from the last five characters, which
// print larger for at-a-glance reading. Short numbers stay whole.
func splitPartNo(partNo string) (head, tail string) {
	r := []rune(partNo)
	if len(r) > 5 {
		return string(r[:len(r)-5]), string(r[len(r)-5:])
	}
	return partNo, ""
}

// descBox prints the description wrapped and vertically centered. Single
// format uses a fixed size; multi steps the size down as the text grows
// and truncates at 100 characters.
func descBox(pdf *fpdf.Fpdf, desc string, lay layout) {
	x, y := pdf.GetXY()
	pdf.CellFormat(valueColW, lay.descRowH, "", "1", 0, "", false, 0, "")

	size := lay.descFont
	if size == 0 {
		size = descFontSize(utf8.RuneCountInString(desc))
		desc = truncateDesc(desc)
	}
	if desc == "" {
		pdf.SetXY(x+valueColW, y)
		return
	}

	pdf.SetFont("Helvetica", "", size)
	lineH := ptToCm(size) * 1.2
	lines := pdf.SplitText(desc, valueColW-2*textPad)
	if limit := int(lay.descRowH / lineH); limit > 0 && len(lines) > limit {
		lines = lines[:limit]
	}
	ty := y + (lay.descRowH-float64(len(lines))*lineH)/2
	for _, line := range lines {
		pdf.SetXY(x+textPad, ty)
		pdf.CellFormat(valueColW-2*textPad, lineH, line, "0", 0, "LM", false, 0, "")
		ty += lineH
	}
	pdf.SetXY(x+valueColW, y)
}

// descFontSize matches the printed sheets: longer text steps down so it
// still fits the compact row.
func descFontSize(length int) float64 {
	switch {
	case length <= 30:
		return 15
	case length <= 50:
		return 13
	case length <= 70:
		return 11
	default:
		return 9
	}
}

func truncateDesc(desc string) string {
	r := []rune(desc)
	if len(r) > 100 {
		return string(r[:100]) + "..."
	}
	return desc
}

func ptToCm(pt float64) float64 {
	return pt * 2.54 / 72
}
