package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTripFormRequestCycleHours(t *testing.T) {
	tests := []struct {
		in   string
		want *float64
	}{
		{"", ptr(0)},
		{"   ", ptr(0)},
		{"12.5", ptr(12.5)},
		{" 8 ", ptr(8)},
		{"70", ptr(70)},
		{"-3", ptr(-3)},
		{"abc", nil},
		{"NaN", nil},
		{"Infinity", nil},
		{"1e400", nil},
	}

	for _, tc := range tests {
		got := TripForm{CurrentCycleUsed: tc.in}.Request().CurrentCycleUsed
		switch {
		case tc.want == nil && got != nil:
			t.Errorf("%q: expected null, got %v", tc.in, *got)
		case tc.want != nil && got == nil:
			t.Errorf("%q: expected %v, got null", tc.in, *tc.want)
		case tc.want != nil && *got != *tc.want:
			t.Errorf("%q: expected %v, got %v", tc.in, *tc.want, *got)
		}
	}
}

func TestTripRequestEncoding(t *testing.T) {
	form := TripForm{
		CurrentLocation:  " Chicago, IL",
		PickupLocation:   "",
		DropoffLocation:  "Dallas, TX",
		CurrentCycleUsed: "oops",
	}

	b, err := json.Marshal(form.Request())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := string(b)
	want := `{"currentLocation":" Chicago, IL","pickupLocation":"","dropoffLocation":"Dallas, TX","currentCycleUsed":null}`
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestTripResultDecoding(t *testing.T) {
	body := `{
		"totalDistance": 912.4, "drivingTime": 15.2, "totalTripTime": 22,
		"fuelStops": 1, "restBreaks": 2.0, "hoursAvailable": 57.5,
		"totalHoursUsed": 34.5, "compliant": false,
		"mapUrl": "/media/maps/1.html", "eldLogUrl": "/api/eld-log/1/",
		"stops": [
			{"type": "start", "location": "Chicago, IL", "coords": {"lon": -87.6, "lat": 41.9}},
			{"type": "pickup", "location": "St. Louis, MO", "duration": 1}
		]
	}`

	var r TripResult
	if err := json.NewDecoder(strings.NewReader(body)).Decode(&r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.RestBreaks != 2 || r.Compliant {
		t.Fatalf("unexpected result: %+v", r)
	}
	if len(r.Stops) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(r.Stops))
	}
	if r.Stops[0].Coords == nil || r.Stops[0].Coords.Lat != 41.9 || r.Stops[0].Duration != nil {
		t.Errorf("unexpected first stop: %+v", r.Stops[0])
	}
	if r.Stops[1].Duration == nil || *r.Stops[1].Duration != 1 {
		t.Errorf("expected pickup duration 1, got %+v", r.Stops[1])
	}
}

func TestStopKindTitle(t *testing.T) {
	tests := map[StopKind]string{
		StopStart:   "Start",
		StopPickup:  "Pickup",
		StopFuel:    "Fuel",
		StopDropoff: "Dropoff",
		"rest":      "Rest",
		"":          "",
	}
	for kind, want := range tests {
		if got := kind.Title(); got != want {
			t.Errorf("%q: expected %q, got %q", kind, want, got)
		}
	}
}

func ptr(v float64) *float64 { return &v }
