package config

import (
	"os"

	"tripdocs/internal/utils"
)

// Env holds the generator configuration read from the process environment.
type Env struct {
	// FontPath points at a Unicode-capable TTF file. Empty means the
	// renderer's built-in Helvetica with cp1252 translation.
	FontPath string
	// FontName is the family name the font registers under.
	FontName string
	// ThemePath overrides the embedded style theme. Empty means embedded.
	ThemePath string
	// BrandTitle is drawn in the page header band.
	BrandTitle string
	// FooterText is centered in the page footer band.
	FooterText string
	// OutputDir receives generated files. Empty means the system temp dir.
	OutputDir string
}

func LoadEnv() Env {
	fontName := utils.TrimOrEmpty(os.Getenv("TRIPDOCS_FONT_NAME"))
	if fontName == "" {
		fontName = "ArialUnicode"
	}

	brand := utils.TrimOrEmpty(os.Getenv("TRIPDOCS_BRAND_TITLE"))
	if brand == "" {
		brand = "AI Trip Planner"
	}

	footer := utils.TrimOrEmpty(os.Getenv("TRIPDOCS_FOOTER_TEXT"))
	if footer == "" {
		footer = "Generated with ♥ by TripAI"
	}

	return Env{
		FontPath:   utils.TrimOrEmpty(os.Getenv("TRIPDOCS_FONT_PATH")),
		FontName:   fontName,
		ThemePath:  utils.TrimOrEmpty(os.Getenv("TRIPDOCS_THEME_PATH")),
		BrandTitle: brand,
		FooterText: footer,
		OutputDir:  utils.TrimOrEmpty(os.Getenv("TRIPDOCS_OUTPUT_DIR")),
	}
}
