// Package styles holds the named presentation styles used by the document
// builder and the page decorator. Styles live in a YAML theme: the embedded
// default reproduces the stock itinerary look, and a caller-supplied theme
// file may restyle the document without code changes.
package styles

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"tripdocs/internal/domain"
)

//go:embed theme.yaml
var defaultTheme []byte

// Style names looked up by the builder and the renderer.
const (
	Title            = "title"
	Subtitle         = "subtitle"
	DayHeader        = "day-header"
	SectionHeader    = "section-header"
	SubsectionHeader = "subsection-header"
	Bullet           = "bullet"
	InfoBox          = "info-box"
	Footer           = "footer"
)

var requiredStyles = []string{
	Title, Subtitle, DayHeader, SectionHeader, SubsectionHeader, Bullet, InfoBox, Footer,
}

// RGB is a resolved color channel triple, 0-255 each.
type RGB struct {
	R, G, B int
}

// ParseHex parses "#rrggbb" into an RGB.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, domain.ValidationError{Field: "color", Msg: fmt.Sprintf("%q is not #rrggbb", s)}
	}
	var ch [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return RGB{}, domain.ValidationError{Field: "color", Msg: fmt.Sprintf("%q is not #rrggbb", s), Err: err}
		}
		ch[i] = int(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// Style is one named presentation style. Sizes and distances are in points.
type Style struct {
	Size        float64
	LineHeight  float64
	Color       RGB
	Background  *RGB
	BorderColor *RGB
	BorderWidth float64
	Padding     float64
	SpaceBefore float64
	SpaceAfter  float64
	Indent      float64
	Align       string // gofpdf alignment: "L", "C", "R" or "J"
	Bold        bool
}

// Palette is the theme's named color set, shared by the summary table,
// separators, and the page decorator.
type Palette struct {
	Primary   RGB
	Secondary RGB
	Accent    RGB
	Text      RGB
	Subtext   RGB
	Light     RGB
	Grid      RGB
	Info      RGB
}

// Registry is the read-only style lookup table for one generation call.
type Registry struct {
	Palette Palette
	styles  map[string]Style
}

// Get returns the style registered under name.
func (r *Registry) Get(name string) (Style, bool) {
	s, ok := r.styles[name]
	return s, ok
}

// Load builds the registry from the embedded default theme.
func Load() (*Registry, error) {
	return parse(defaultTheme)
}

// LoadFile builds the registry from a theme file on disk.
func LoadFile(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NotFoundError{Resource: "theme file", Err: err}
		}
		return nil, domain.InternalError{Msg: "read theme file", Err: err}
	}
	return parse(raw)
}

type themeDoc struct {
	Palette map[string]string   `yaml:"palette"`
	Styles  map[string]styleDoc `yaml:"styles"`
}

type styleDoc struct {
	Size        float64 `yaml:"size"`
	LineHeight  float64 `yaml:"line_height"`
	Color       string  `yaml:"color"`
	Background  string  `yaml:"background"`
	BorderColor string  `yaml:"border_color"`
	BorderWidth float64 `yaml:"border_width"`
	Padding     float64 `yaml:"padding"`
	SpaceBefore float64 `yaml:"space_before"`
	SpaceAfter  float64 `yaml:"space_after"`
	Indent      float64 `yaml:"indent"`
	Align       string  `yaml:"align"`
	Bold        bool    `yaml:"bold"`
}

func parse(raw []byte) (*Registry, error) {
	var doc themeDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, domain.ValidationError{Field: "theme", Msg: "invalid YAML", Err: err}
	}

	palette := map[string]RGB{}
	for name, hex := range doc.Palette {
		c, err := ParseHex(hex)
		if err != nil {
			return nil, domain.ValidationError{Field: "palette." + name, Msg: "bad color", Err: err}
		}
		palette[name] = c
	}

	pal, err := buildPalette(palette)
	if err != nil {
		return nil, err
	}

	reg := &Registry{Palette: pal, styles: map[string]Style{}}
	for _, name := range requiredStyles {
		spec, ok := doc.Styles[name]
		if !ok {
			return nil, domain.ValidationError{Field: "styles." + name, Msg: "missing style"}
		}
		st, err := buildStyle(name, spec, palette)
		if err != nil {
			return nil, err
		}
		reg.styles[name] = st
	}
	return reg, nil
}

func buildPalette(colors map[string]RGB) (Palette, error) {
	var pal Palette
	for name, dst := range map[string]*RGB{
		"primary":   &pal.Primary,
		"secondary": &pal.Secondary,
		"accent":    &pal.Accent,
		"text":      &pal.Text,
		"subtext":   &pal.Subtext,
		"light":     &pal.Light,
		"grid":      &pal.Grid,
		"info":      &pal.Info,
	} {
		c, ok := colors[name]
		if !ok {
			return Palette{}, domain.ValidationError{Field: "palette." + name, Msg: "missing color"}
		}
		*dst = c
	}
	return pal, nil
}

func buildStyle(name string, spec styleDoc, palette map[string]RGB) (Style, error) {
	if spec.Size <= 0 {
		return Style{}, domain.ValidationError{Field: "styles." + name + ".size", Msg: "must be positive"}
	}
	color, err := resolveColor(spec.Color, palette)
	if err != nil {
		return Style{}, domain.ValidationError{Field: "styles." + name + ".color", Msg: "bad color", Err: err}
	}
	if color == nil {
		return Style{}, domain.ValidationError{Field: "styles." + name + ".color", Msg: "missing color"}
	}
	background, err := resolveColor(spec.Background, palette)
	if err != nil {
		return Style{}, domain.ValidationError{Field: "styles." + name + ".background", Msg: "bad color", Err: err}
	}
	border, err := resolveColor(spec.BorderColor, palette)
	if err != nil {
		return Style{}, domain.ValidationError{Field: "styles." + name + ".border_color", Msg: "bad color", Err: err}
	}
	align, err := parseAlign(spec.Align)
	if err != nil {
		return Style{}, domain.ValidationError{Field: "styles." + name + ".align", Msg: "bad alignment", Err: err}
	}
	lineHeight := spec.LineHeight
	if lineHeight <= 0 {
		lineHeight = spec.Size * 1.25
	}
	return Style{
		Size:        spec.Size,
		LineHeight:  lineHeight,
		Color:       *color,
		Background:  background,
		BorderColor: border,
		BorderWidth: spec.BorderWidth,
		Padding:     spec.Padding,
		SpaceBefore: spec.SpaceBefore,
		SpaceAfter:  spec.SpaceAfter,
		Indent:      spec.Indent,
		Align:       align,
		Bold:        spec.Bold,
	}, nil
}

// resolveColor accepts a palette name or a literal "#rrggbb"; empty means
// no color (transparent background, no border).
func resolveColor(s string, palette map[string]RGB) (*RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if c, ok := palette[s]; ok {
		return &c, nil
	}
	c, err := ParseHex(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func parseAlign(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return "L", nil
	case "center":
		return "C", nil
	case "right":
		return "R", nil
	case "justify":
		return "J", nil
	}
	return "", fmt.Errorf("unknown alignment %q", s)
}
