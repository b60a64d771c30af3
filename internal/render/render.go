// Package render turns a block sequence into the finished PDF with gofpdf.
// A4 portrait, point units, 72pt margins on every side.
package render

import (
	"io"

	"github.com/phpdave11/gofpdf"

	"tripdocs/internal/config"
	"tripdocs/internal/domain"
	"tripdocs/internal/story"
	"tripdocs/internal/styles"
)

const (
	pageMargin = 72
	coreFont   = "Helvetica"
)

// Engine renders one document per Render call. It holds only configuration;
// all gofpdf state lives inside the call.
type Engine struct {
	reg *styles.Registry
	env config.Env
}

func New(reg *styles.Registry, env config.Env) *Engine {
	return &Engine{reg: reg, env: env}
}

// VerifyFont registers the font against a scratch document, so a missing or
// corrupt font file fails at generator construction rather than on the
// first render. An empty path means the built-in core font; nothing to check.
func VerifyFont(name, path string) error {
	if path == "" {
		return nil
	}
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddUTF8Font(name, "", path)
	if pdf.Err() {
		return domain.InternalError{Msg: "register font " + path, Err: pdf.Error()}
	}
	return nil
}

// Render walks the block sequence into w. The page decorator runs once per
// page via gofpdf's header/footer callbacks. Font registration failure is
// reported before any block is drawn.
func (e *Engine) Render(blocks []story.Block, w io.Writer) error {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetTitle("Travel Itinerary", true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)

	d := &drawer{pdf: pdf, reg: e.reg, font: coreFont, core: true}
	d.tr = pdf.UnicodeTranslatorFromDescriptor("")
	if e.env.FontPath != "" {
		pdf.AddUTF8Font(e.env.FontName, "", e.env.FontPath)
		if pdf.Err() {
			return domain.InternalError{Msg: "register font " + e.env.FontPath, Err: pdf.Error()}
		}
		d.font = e.env.FontName
		d.core = false
		d.tr = func(s string) string { return s }
	}

	pdf.SetHeaderFunc(func() { d.pageHeader(e.env.BrandTitle) })
	pdf.SetFooterFunc(func() { d.pageFooter(e.env.FooterText) })
	pdf.AddPage()

	for _, b := range blocks {
		var err error
		switch blk := b.(type) {
		case story.Paragraph:
			err = d.paragraph(blk)
		case story.Table:
			err = d.table(blk)
		case story.Spacer:
			d.pdf.Ln(blk.Height)
		case story.Separator:
			d.separator(blk)
		default:
			err = domain.InternalError{Msg: "unknown block type"}
		}
		if err != nil {
			return err
		}
	}

	if err := pdf.Output(w); err != nil {
		return domain.InternalError{Msg: "write pdf", Err: err}
	}
	return nil
}

// drawer carries the per-call gofpdf handle plus font selection. tr maps
// text into the active font's encoding (identity for a UTF-8 TTF, cp1252
// translation for the core font).
type drawer struct {
	pdf  *gofpdf.Fpdf
	reg  *styles.Registry
	font string
	core bool
	tr   func(string) string
}

// fontStyle maps a bold flag to gofpdf's style string. A registered UTF-8
// font carries only its regular face, so bold applies to core fonts only.
func (d *drawer) fontStyle(bold bool) string {
	if bold && d.core {
		return "B"
	}
	return ""
}

func (d *drawer) paragraph(p story.Paragraph) error {
	st, ok := d.reg.Get(p.Style)
	if !ok {
		return domain.ValidationError{Field: "style", Msg: "unknown style " + p.Style}
	}

	if st.SpaceBefore > 0 {
		d.pdf.Ln(st.SpaceBefore)
	}

	d.pdf.SetFont(d.font, d.fontStyle(st.Bold), st.Size)
	d.pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)

	fill := false
	if st.Background != nil {
		d.pdf.SetFillColor(st.Background.R, st.Background.G, st.Background.B)
		fill = true
	}
	border := ""
	if st.BorderColor != nil && st.BorderWidth > 0 {
		d.pdf.SetDrawColor(st.BorderColor.R, st.BorderColor.G, st.BorderColor.B)
		d.pdf.SetLineWidth(st.BorderWidth)
		border = "1"
	}

	d.pdf.SetCellMargin(st.Padding)
	pageW, _ := d.pdf.GetPageSize()
	x := pageMargin + st.Indent
	d.pdf.SetX(x)
	d.pdf.MultiCell(pageW-x-pageMargin, st.LineHeight, d.tr(p.Text), border, st.Align, fill)

	if st.SpaceAfter > 0 {
		d.pdf.Ln(st.SpaceAfter)
	}
	return nil
}

func (d *drawer) table(t story.Table) error {
	if len(t.ColWidths) == 0 {
		return domain.ValidationError{Field: "table", Msg: "no column widths"}
	}
	ts := t.Style
	d.pdf.SetDrawColor(ts.GridColor.R, ts.GridColor.G, ts.GridColor.B)
	d.pdf.SetLineWidth(ts.GridWidth)
	d.pdf.SetCellMargin(ts.CellPad)

	for i, row := range t.Rows {
		size := ts.BodySize
		fill := ts.BodyFill
		text := ts.BodyText
		if i == 0 {
			size = ts.HeaderSize
			fill = ts.HeaderFill
			text = ts.HeaderText
		}
		d.pdf.SetFont(d.font, "", size)
		d.pdf.SetFillColor(fill.R, fill.G, fill.B)
		d.pdf.SetTextColor(text.R, text.G, text.B)

		rowH := size + 2*ts.CellPad
		d.pdf.SetX(pageMargin)
		for j, cell := range row {
			w := t.ColWidths[len(t.ColWidths)-1]
			if j < len(t.ColWidths) {
				w = t.ColWidths[j]
			}
			d.pdf.CellFormat(w, rowH, d.tr(cell), "1", 0, "L", true, 0, "")
		}
		d.pdf.Ln(rowH)
	}
	return nil
}

// separator draws the thin rule with 5pt breathing room above and below,
// mirroring the padded one-row table the layout is based on.
func (d *drawer) separator(s story.Separator) {
	y := d.pdf.GetY() + 5
	d.pdf.SetDrawColor(s.Color.R, s.Color.G, s.Color.B)
	d.pdf.SetLineWidth(1)
	d.pdf.Line(pageMargin, y, pageMargin+s.Width, y)
	d.pdf.SetY(y + 5)
}
