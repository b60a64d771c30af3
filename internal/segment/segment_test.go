package segment

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitDaysNoMarkerYieldsOverview(t *testing.T) {
	days := SplitDays("Pack light.\nBring a charger.")
	if len(days) != 1 {
		t.Fatalf("got %d day blocks, want 1", len(days))
	}
	if days[0].Header != OverviewHeader {
		t.Fatalf("header = %q, want %q", days[0].Header, OverviewHeader)
	}
}

func TestSplitDaysEmptyPlan(t *testing.T) {
	if days := SplitDays(""); len(days) != 0 {
		t.Fatalf("got %d day blocks for empty plan, want 0", len(days))
	}
	if days := SplitDays("\n  \n"); len(days) != 0 {
		t.Fatalf("got %d day blocks for blank plan, want 0", len(days))
	}
}

func TestSplitDaysMarkerLinesVerbatim(t *testing.T) {
	plan := "Day 1: Arrival\n- Check in\nDAY 2: Old town\n- Walking tour\nDay 3: Departure\n- Fly home\n"
	days := SplitDays(plan)
	if len(days) != 3 {
		t.Fatalf("got %d day blocks, want 3", len(days))
	}
	want := []string{"Day 1: Arrival", "DAY 2: Old town", "Day 3: Departure"}
	for i, w := range want {
		if days[i].Header != w {
			t.Fatalf("day %d header = %q, want %q", i, days[i].Header, w)
		}
	}
}

func TestSplitDaysPreambleBecomesOverview(t *testing.T) {
	plan := "General notes\n- Passport\n\nDay 1: Arrival\n- Check in\n"
	days := SplitDays(plan)
	if len(days) != 2 {
		t.Fatalf("got %d day blocks, want 2", len(days))
	}
	if days[0].Header != OverviewHeader {
		t.Fatalf("first header = %q, want %q", days[0].Header, OverviewHeader)
	}
	if days[1].Header != "Day 1: Arrival" {
		t.Fatalf("second header = %q", days[1].Header)
	}
}

func TestSplitDaysLowercaseIsNotAMarker(t *testing.T) {
	days := SplitDays("day 1: whatever\n- something\n")
	if len(days) != 1 || days[0].Header != OverviewHeader {
		t.Fatalf("lowercase day treated as marker: %+v", days)
	}
}

func TestClockTimeLineIsInfoNotHeader(t *testing.T) {
	sections := ParseSections("Morning:\n10:30 Check-in\n- Breakfast\n")
	want := []Section{{
		Header: "Morning:",
		Info:   "10:30 Check-in",
		Points: []string{"Breakfast"},
	}}
	if diff := cmp.Diff(want, sections); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestColonHeaderFlushesPriorSection(t *testing.T) {
	sections := ParseSections("Morning:\n- Breakfast\nAccommodation: boutique hotel\n- Late checkout\n")
	want := []Section{
		{Header: "Morning:", Points: []string{"Breakfast"}},
		{Header: "Accommodation: boutique hotel", Points: []string{"Late checkout"}},
	}
	if diff := cmp.Diff(want, sections); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestBulletMarkersEquivalentAfterCleaning(t *testing.T) {
	for _, marker := range []string{"•", "-", "*"} {
		sections := ParseSections("Plan:\n" + marker + "  Visit   museum \n")
		if len(sections) != 1 {
			t.Fatalf("marker %q: got %d sections", marker, len(sections))
		}
		if diff := cmp.Diff([]string{"Visit museum"}, sections[0].Points); diff != "" {
			t.Fatalf("marker %q points mismatch (-want +got):\n%s", marker, diff)
		}
	}
}

func TestInfoOnlyContentEmitsNoSection(t *testing.T) {
	sections := ParseSections("Just some prose.\nMore prose.\n")
	if len(sections) != 0 {
		t.Fatalf("got %d sections for info-only body, want 0", len(sections))
	}
}

func TestTrailingInfoAttachesToOpenSection(t *testing.T) {
	sections := ParseSections("Evening:\nFree time.")
	want := []Section{{Header: "Evening:", Info: "Free time."}}
	if diff := cmp.Diff(want, sections); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestHeaderLineDiscardsPendingInfoBuffer(t *testing.T) {
	// Unflushed info lines immediately before a new header are dropped,
	// not attached to the flushed section.
	sections := ParseSections("Morning:\n- Breakfast\nloose note\nEvening:\n- Dinner\n")
	want := []Section{
		{Header: "Morning:", Points: []string{"Breakfast"}},
		{Header: "Evening:", Points: []string{"Dinner"}},
	}
	if diff := cmp.Diff(want, sections); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestBlankLineFlushOverwritesInfo(t *testing.T) {
	sections := ParseSections("Morning:\nfirst note\n\nsecond note\n\n- Breakfast\n")
	want := []Section{{
		Header: "Morning:",
		Info:   "second note",
		Points: []string{"Breakfast"},
	}}
	if diff := cmp.Diff(want, sections); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestBulletWithColonIsAHeader(t *testing.T) {
	// Header classification runs before the bullet check, so a dashed line
	// whose pre-colon text has no digits reads as a header.
	sections := ParseSections("- Note: pack sunscreen\n- Towel\n")
	want := []Section{{Header: "- Note: pack sunscreen", Points: []string{"Towel"}}}
	if diff := cmp.Diff(want, sections); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestEndToEndScenario(t *testing.T) {
	plan := "Day 1:\nMorning:\n- Breakfast\n- City tour\nEvening:\nFree time."
	days := SplitDays(plan)
	want := []DayBlock{{
		Header: "Day 1:",
		Sections: []Section{
			{Header: "Morning:", Points: []string{"Breakfast", "City tour"}},
			{Header: "Evening:", Info: "Free time."},
		},
	}}
	if diff := cmp.Diff(want, days); diff != "" {
		t.Fatalf("day blocks mismatch (-want +got):\n%s", diff)
	}
}
