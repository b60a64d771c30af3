// Package tripdocs renders a multi-day travel itinerary (plain-text plan
// plus trip metadata) into a styled PDF. The pipeline is a single
// synchronous pass: segment the text into days and sections, build the
// ordered block sequence, render it with gofpdf under a per-page
// header/footer decorator.
package tripdocs

import (
	"fmt"
	"io"
	"os"
	"time"

	"tripdocs/internal/config"
	"tripdocs/internal/domain"
	"tripdocs/internal/render"
	"tripdocs/internal/story"
	"tripdocs/internal/styles"
	"tripdocs/internal/utils"
)

// TripDetails is the trip metadata shown in the document front matter.
type TripDetails = domain.TripDetails

// Generator produces itinerary PDFs for one configuration. Construction
// checks the configured font file and theme up front, so a misconfigured
// generator fails before any document is attempted.
type Generator struct {
	Env       config.Env
	RequestID string
}

// New builds a Generator from the process environment.
func New() (*Generator, error) {
	return NewWithEnv(config.LoadEnv())
}

// NewWithEnv builds a Generator from an explicit configuration.
func NewWithEnv(env config.Env) (*Generator, error) {
	// Font and theme problems surface here rather than on the first
	// Generate. The font is actually registered, not just stat'ed, so a
	// corrupt file is as fatal as a missing one.
	if err := render.VerifyFont(env.FontName, env.FontPath); err != nil {
		return nil, err
	}
	if _, err := loadRegistry(env); err != nil {
		return nil, err
	}
	return &Generator{Env: env}, nil
}

// Generate renders the plan into a freshly created, uniquely named file and
// returns its path. The caller owns cleanup of the file.
func (g *Generator) Generate(plan string, trip TripDetails) (string, error) {
	utils.LogEvent(g.RequestID, "tripdocs", "generate",
		fmt.Sprintf("plan_bytes=%d start=%s end=%s",
			len(plan), utils.FormatDate(trip.StartDate), utils.FormatDate(trip.EndDate)))

	f, err := os.CreateTemp(g.Env.OutputDir, "itinerary-*.pdf")
	if err != nil {
		return "", domain.InternalError{Msg: "create output file", Err: err}
	}
	if err := g.GenerateTo(f, plan, trip); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", domain.InternalError{Msg: "close output file", Err: err}
	}
	return f.Name(), nil
}

// GenerateTo renders the plan into w. Each call constructs its own style
// registry and block sequence; no state is shared across calls.
func (g *Generator) GenerateTo(w io.Writer, plan string, trip TripDetails) error {
	reg, err := loadRegistry(g.Env)
	if err != nil {
		return err
	}
	blocks := story.Build(plan, trip, reg)
	return render.New(reg, g.Env).Render(blocks, w)
}

// Generate is the one-shot entry point: environment configuration, one
// document, path returned.
func Generate(plan, startLocation, destination string, startDate, endDate time.Time) (string, error) {
	g, err := New()
	if err != nil {
		return "", err
	}
	return g.Generate(plan, TripDetails{
		StartLocation: startLocation,
		Destination:   destination,
		StartDate:     startDate,
		EndDate:       endDate,
	})
}

// GenerateDates is Generate for callers whose trip dates arrive as
// "YYYY-MM-DD" text rather than time values.
func GenerateDates(plan, startLocation, destination, startDate, endDate string) (string, error) {
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return "", domain.ValidationError{Field: "start_date", Msg: "want YYYY-MM-DD", Err: err}
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return "", domain.ValidationError{Field: "end_date", Msg: "want YYYY-MM-DD", Err: err}
	}
	return Generate(plan, startLocation, destination, start, end)
}

func loadRegistry(env config.Env) (*styles.Registry, error) {
	if env.ThemePath != "" {
		return styles.LoadFile(env.ThemePath)
	}
	return styles.Load()
}
