package dto

import (
	"eld-trip-planner/internal/domain"
	"testing"
)

func TestNewPageWithoutResult(t *testing.T) {
	p := NewPage(domain.NewSession())

	if p.Result != nil {
		t.Fatalf("expected no result view, got %+v", p.Result)
	}
	if p.Placeholder != "Enter trip details to see your route plan" {
		t.Fatalf("unexpected placeholder %q", p.Placeholder)
	}
	if p.Busy || p.SubmitLabel != SubmitIdle {
		t.Fatalf("expected idle submit button, got busy=%v label=%q", p.Busy, p.SubmitLabel)
	}
	if p.Error != "" {
		t.Fatalf("expected no error, got %q", p.Error)
	}
}

func TestNewPageBusy(t *testing.T) {
	p := NewPage(domain.NewSession().Begin(domain.TripForm{CurrentLocation: "Reno, NV"}))

	if !p.Busy {
		t.Fatalf("expected busy page")
	}
	if p.SubmitLabel != "Calculating…" {
		t.Fatalf("expected busy label, got %q", p.SubmitLabel)
	}
	if p.Form.CurrentLocation != "Reno, NV" {
		t.Fatalf("expected form values kept, got %+v", p.Form)
	}
}

func TestNewPageResult(t *testing.T) {
	half := 0.5
	zero := 0.0
	s := domain.NewSession().Succeed(domain.TripResult{
		TotalDistance:  912.4,
		DrivingTime:    15.25,
		TotalTripTime:  22,
		FuelStops:      1,
		RestBreaks:     2,
		HoursAvailable: 57.5,
		TotalHoursUsed: 12.5,
		Compliant:      true,
		MapURL:         "/media/maps/1.html",
		ELDLogURL:      "/api/eld-log/1/",
		Stops: []domain.Stop{
			{Type: domain.StopStart, Location: "Chicago, IL", Coords: &domain.Coordinates{Lon: -87.6, Lat: 41.9}},
			{Type: domain.StopPickup, Location: "St. Louis, MO", Duration: &half},
			{Type: domain.StopFuel, Location: "Joplin, MO", Duration: &zero},
			{Type: domain.StopDropoff, Location: "Dallas, TX"},
		},
	})

	p := NewPage(s)
	r := p.Result
	if r == nil {
		t.Fatalf("expected result view")
	}

	if r.TotalDistance != "912.4" || r.DrivingTime != "15.25" || r.TotalTripTime != "22" {
		t.Errorf("unexpected overview: %+v", r)
	}
	if r.FuelStops != "1" || r.RestBreaks != "2" {
		t.Errorf("unexpected counts: fuel=%q rest=%q", r.FuelStops, r.RestBreaks)
	}
	if r.HOSLabel != "HOS Compliant" || r.HOSClass != "hos-compliant" {
		t.Errorf("expected compliant indicator, got %q/%q", r.HOSLabel, r.HOSClass)
	}
	if r.MapURL != "/media/maps/1.html" {
		t.Errorf("unexpected map url %q", r.MapURL)
	}

	if len(r.Stops) != 4 {
		t.Fatalf("expected 4 timeline entries, got %d", len(r.Stops))
	}
	wantTitles := []string{"Start", "Pickup", "Fuel", "Dropoff"}
	for i, want := range wantTitles {
		if r.Stops[i].Title != want {
			t.Errorf("entry %d: expected %q, got %q", i, want, r.Stops[i].Title)
		}
		if r.Stops[i].Icon == "" {
			t.Errorf("entry %d: expected an icon", i)
		}
	}
	if r.Stops[0].Coords != "41.9, -87.6" {
		t.Errorf("unexpected start coords %q", r.Stops[0].Coords)
	}
	if r.Stops[1].Coords != "" {
		t.Errorf("expected no coords on pickup, got %q", r.Stops[1].Coords)
	}
	if r.Stops[0].HasDuration || r.Stops[3].HasDuration {
		t.Errorf("expected no duration on start and dropoff")
	}
	if !r.Stops[1].HasDuration || r.Stops[1].Duration != "0.5" {
		t.Errorf("expected pickup duration 0.5, got %+v", r.Stops[1])
	}
	if !r.Stops[2].HasDuration || r.Stops[2].Duration != "0" {
		t.Errorf("expected a defined zero duration to be shown, got %+v", r.Stops[2])
	}
}

func TestNewPageViolation(t *testing.T) {
	p := NewPage(domain.NewSession().Succeed(domain.TripResult{Compliant: false}))

	if p.Result.HOSLabel != "HOS Violation Risk" || p.Result.HOSClass != "hos-violation" {
		t.Fatalf("expected violation indicator, got %q/%q", p.Result.HOSLabel, p.Result.HOSClass)
	}
	if len(p.Result.Stops) != 0 {
		t.Fatalf("expected empty timeline, got %d entries", len(p.Result.Stops))
	}
}

func TestNewPageErrorWithResult(t *testing.T) {
	s := domain.NewSession().
		Succeed(domain.TripResult{TotalDistance: 5}).
		FailLog("ELD log URL not available")

	p := NewPage(s)
	if p.Error != "ELD log URL not available" {
		t.Fatalf("unexpected error %q", p.Error)
	}
	if p.Result == nil {
		t.Fatalf("expected result to render alongside the error")
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		0:         "0",
		1:         "1",
		912.4:     "912.4",
		-3.5:      "-3.5",
		1500000:   "1500000",
		1e20:      "100000000000000000000",
		1e21:      "1e+21",
		1.5e22:    "1.5e+22",
		-2e21:     "-2e+21",
		0.000001:  "0.000001",
		1e-7:      "1e-7",
		2.5e-10:   "2.5e-10",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("%v: expected %q, got %q", in, want, got)
		}
	}
}
