// Package segment splits raw itinerary text into per-day blocks and, within
// each block, into sections with an optional header, free-text info, and
// bullet points.
package segment

import (
	"regexp"
	"strings"

	"tripdocs/internal/utils"
)

// OverviewHeader labels a day block when the text carries no day marker.
const OverviewHeader = "Trip Overview"

// Section is a named or unnamed cluster of info text and bullet points
// within one day. A section qualifies for output only when it has a header
// or at least one point.
type Section struct {
	Header string
	Info   string
	Points []string
}

// DayBlock is one day marker line (or the overview fallback) together with
// its parsed sections.
type DayBlock struct {
	Header   string
	Sections []Section
}

// A day marker is a line beginning with the literal word "Day" or "DAY",
// a space, digits, and a colon, e.g. "Day 2:".
var (
	dayMarkerLine  = regexp.MustCompile(`(?m)^(?:Day|DAY) [0-9]+:`)
	dayMarkerStart = regexp.MustCompile(`^(?:Day|DAY) [0-9]+:`)
)

// SplitDays splits the plan text into day blocks at every day marker line.
// Text before the first marker (or the whole text when no marker exists)
// becomes a single block labeled OverviewHeader. Blank chunks are dropped.
func SplitDays(plan string) []DayBlock {
	var out []DayBlock
	for _, chunk := range splitAtMarkers(plan) {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		header := OverviewHeader
		body := chunk
		lines := strings.SplitN(chunk, "\n", 2)
		if dayMarkerStart.MatchString(lines[0]) {
			header = lines[0]
			body = ""
			if len(lines) == 2 {
				body = lines[1]
			}
		}
		out = append(out, DayBlock{Header: header, Sections: ParseSections(body)})
	}
	return out
}

// splitAtMarkers cuts the text before each marker line so the marker stays
// attached to the chunk it introduces.
func splitAtMarkers(plan string) []string {
	idxs := dayMarkerLine.FindAllStringIndex(plan, -1)
	if len(idxs) == 0 {
		return []string{plan}
	}
	var chunks []string
	prev := 0
	for _, idx := range idxs {
		chunks = append(chunks, plan[prev:idx[0]])
		prev = idx[0]
	}
	return append(chunks, plan[prev:])
}

// ParseSections runs the per-line accumulator over a day body, top to bottom.
func ParseSections(body string) []Section {
	var acc accumulator
	for _, line := range strings.Split(body, "\n") {
		acc.consume(line)
	}
	return acc.finalize()
}

// accumulator is the section state machine: a current section under
// construction plus a pending buffer of plain info lines.
type accumulator struct {
	done    []Section
	current Section
	info    []string
}

func (a *accumulator) consume(raw string) {
	line := strings.TrimSpace(raw)
	switch {
	case line == "":
		a.flushInfo()
	case isSectionHeader(line):
		// The pending info buffer is discarded, not attached to the
		// section being flushed.
		a.flushSection()
		a.current = Section{Header: line}
		a.info = nil
	case isBullet(line):
		point := utils.NormalizeSpace(strings.TrimLeft(line, "•-* "))
		if point != "" {
			a.current.Points = append(a.current.Points, point)
		}
	default:
		a.info = append(a.info, line)
	}
}

// flushInfo joins buffered lines with single spaces into the current
// section's info field, overwriting any earlier value.
func (a *accumulator) flushInfo() {
	if len(a.info) == 0 {
		return
	}
	a.current.Info = strings.Join(a.info, " ")
	a.info = nil
}

// flushSection emits the current section when it qualifies. An info-only
// section is silently dropped.
func (a *accumulator) flushSection() {
	if a.current.Header != "" || len(a.current.Points) > 0 {
		a.done = append(a.done, a.current)
	}
	a.current = Section{}
}

func (a *accumulator) finalize() []Section {
	a.flushInfo()
	a.flushSection()
	return a.done
}

// isSectionHeader reports whether the line reads as a semantic header:
// it contains a colon and the text before the first colon has no digits.
// The digit rule keeps clock-time lines like "10:00 Breakfast" out of the
// header set. Known limitation: a literal "Day 3: Highlights" line inside a
// section body is classified as a header by this rule.
func isSectionHeader(line string) bool {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return false
	}
	return !strings.ContainsAny(line[:idx], "0123456789")
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "•") ||
		strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "*")
}
