// Package story assembles the ordered sequence of renderable blocks for one
// itinerary document. Blocks are pure data; the render package turns them
// into PDF drawing calls.
package story

import (
	"fmt"

	"tripdocs/internal/domain"
	"tripdocs/internal/segment"
	"tripdocs/internal/styles"
	"tripdocs/internal/utils"
)

// Block is one renderable unit: Paragraph, Table, Spacer or Separator.
type Block interface {
	isBlock()
}

// Paragraph is styled wrapped text. Style names a registry entry.
type Paragraph struct {
	Text  string
	Style string
}

// TableStyle carries the fixed presentation rules of a table: an inverted
// header row, light body rows, uniform grid lines.
type TableStyle struct {
	HeaderFill styles.RGB
	HeaderText styles.RGB
	HeaderSize float64
	BodyFill   styles.RGB
	BodyText   styles.RGB
	BodySize   float64
	GridColor  styles.RGB
	GridWidth  float64
	CellPad    float64
}

// Table is a grid of text cells with fixed column widths.
type Table struct {
	Rows      [][]string
	ColWidths []float64
	Style     TableStyle
}

// Spacer is vertical whitespace in points.
type Spacer struct {
	Height float64
}

// Separator is a thin horizontal rule.
type Separator struct {
	Width float64
	Color styles.RGB
}

func (Paragraph) isBlock() {}
func (Table) isBlock()     {}
func (Spacer) isBlock()    {}
func (Separator) isBlock() {}

const (
	separatorWidth = 450
	labelColWidth  = 120
	valueColWidth  = 300
)

var white = styles.RGB{R: 255, G: 255, B: 255}

// Build produces the full block sequence for one document: front matter
// (title, subtitle, summary table, separator) followed by every day block
// and its sections in segmenter order. Deterministic: identical inputs give
// an identical sequence.
func Build(plan string, trip domain.TripDetails, reg *styles.Registry) []Block {
	pal := reg.Palette

	title := fmt.Sprintf("Travel Itinerary\n%s to %s", trip.StartLocation, trip.Destination)
	dates := fmt.Sprintf("Journey Dates: %s - %s",
		utils.FormatDate(trip.StartDate), utils.FormatDate(trip.EndDate))

	blocks := []Block{
		Paragraph{Text: title, Style: styles.Title},
		Paragraph{Text: dates, Style: styles.Subtitle},
		summaryTable(trip, pal),
	}
	blocks = appendSeparator(blocks, pal)

	for _, day := range segment.SplitDays(plan) {
		blocks = append(blocks, Paragraph{Text: day.Header, Style: styles.DayHeader})
		for _, sec := range day.Sections {
			if sec.Header != "" {
				blocks = append(blocks, Paragraph{Text: sec.Header, Style: styles.SectionHeader})
			}
			if sec.Info != "" {
				blocks = append(blocks, Paragraph{Text: sec.Info, Style: styles.InfoBox})
			}
			for _, point := range sec.Points {
				blocks = append(blocks, Paragraph{Text: "• " + point, Style: styles.Bullet})
			}
			blocks = append(blocks, Spacer{Height: 8})
		}
		blocks = appendSeparator(blocks, pal)
	}
	return blocks
}

// appendSeparator emits the thin rule plus its trailing spacer.
func appendSeparator(blocks []Block, pal styles.Palette) []Block {
	return append(blocks,
		Separator{Width: separatorWidth, Color: pal.Grid},
		Spacer{Height: 10},
	)
}

// summaryTable is the fixed six-row trip overview: a spanning header row and
// five label/value rows mapped directly from the trip fields.
func summaryTable(trip domain.TripDetails, pal styles.Palette) Table {
	return Table{
		Rows: [][]string{
			{"Trip Summary", ""},
			{"Departure", trip.StartLocation},
			{"Destination", trip.Destination},
			{"Start Date", utils.FormatDate(trip.StartDate)},
			{"End Date", utils.FormatDate(trip.EndDate)},
			{"Duration", fmt.Sprintf("%d days", trip.DurationDays())},
		},
		ColWidths: []float64{labelColWidth, valueColWidth},
		Style: TableStyle{
			HeaderFill: pal.Primary,
			HeaderText: white,
			HeaderSize: 14,
			BodyFill:   pal.Light,
			BodyText:   pal.Text,
			BodySize:   12,
			GridColor:  pal.Grid,
			GridWidth:  1,
			CellPad:    6,
		},
	}
}
