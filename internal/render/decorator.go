package render

import (
	"fmt"

	"tripdocs/internal/styles"
)

const (
	headerBand = 50
	footerBand = 30
)

// pageHeader paints the top band: light fill across the page, brand title at
// the left margin, "Page N" right-aligned at the right margin. Invoked by
// gofpdf once per page; only absolute drawing, the cursor is untouched.
func (d *drawer) pageHeader(brand string) {
	pal := d.reg.Palette
	pageW, _ := d.pdf.GetPageSize()

	d.pdf.SetFillColor(pal.Light.R, pal.Light.G, pal.Light.B)
	d.pdf.Rect(0, 0, pageW, headerBand, "F")

	d.pdf.SetTextColor(pal.Primary.R, pal.Primary.G, pal.Primary.B)
	d.pdf.SetFont(d.font, "", 10)
	d.pdf.Text(pageMargin, 30, d.tr(brand))

	pageNo := fmt.Sprintf("Page %d", d.pdf.PageNo())
	d.pdf.Text(pageW-pageMargin-d.pdf.GetStringWidth(pageNo), 30, pageNo)
}

// pageFooter paints the bottom band with the centered branding string.
func (d *drawer) pageFooter(text string) {
	pal := d.reg.Palette
	pageW, pageH := d.pdf.GetPageSize()

	d.pdf.SetFillColor(pal.Light.R, pal.Light.G, pal.Light.B)
	d.pdf.Rect(0, pageH-footerBand, pageW, footerBand, "F")

	size, color := 8.0, pal.Subtext
	if st, ok := d.reg.Get(styles.Footer); ok {
		size, color = st.Size, st.Color
	}
	d.pdf.SetTextColor(color.R, color.G, color.B)
	d.pdf.SetFont(d.font, "", size)
	txt := d.tr(text)
	d.pdf.Text((pageW-d.pdf.GetStringWidth(txt))/2, pageH-10, txt)
}
