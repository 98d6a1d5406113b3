package dto

import (
	"eld-trip-planner/internal/domain"
	"math"
	"strconv"
	"strings"
)

const (
	Placeholder    = "Enter trip details to see your route plan"
	SubmitIdle     = "Calculate Trip Plan"
	SubmitBusy     = "Calculating…"
	HOSCompliant   = "HOS Compliant"
	HOSViolation   = "HOS Violation Risk"
	CycleHint      = "70-hour/8-day cycle (Max: 70 hours)"
	MaxCycleHours  = 70
	CycleHoursStep = 0.5
)

// Page is everything the index template needs. It is derived from the
// held session alone.
type Page struct {
	Form        domain.TripForm
	Busy        bool
	SubmitLabel string

	Error  string
	Result *ResultView

	Placeholder string
	CycleHint   string
	MaxCycle    int
	CycleStep   float64
}

type ResultView struct {
	TotalDistance string
	DrivingTime   string
	TotalTripTime string
	FuelStops     string
	RestBreaks    string

	HoursAvailable string
	TotalHoursUsed string
	Compliant      bool
	HOSLabel       string
	HOSClass       string

	MapURL string
	Stops  []StopView
}

type StopView struct {
	Kind     string
	Title    string
	Location string
	Coords   string
	Icon     string

	HasDuration bool
	Duration    string
}

var stopIcons = map[domain.StopKind]string{
	domain.StopStart:   "📍",
	domain.StopPickup:  "🚚",
	domain.StopFuel:    "⛽",
	domain.StopDropoff: "✅",
}

// NewPage renders the held session into a view model.
func NewPage(s domain.Session) Page {
	p := Page{
		Form:        s.Form,
		Busy:        s.Submitting(),
		SubmitLabel: SubmitIdle,
		Placeholder: Placeholder,
		CycleHint:   CycleHint,
		MaxCycle:    MaxCycleHours,
		CycleStep:   CycleHoursStep,
	}
	if p.Busy {
		p.SubmitLabel = SubmitBusy
	}
	if s.Failure != nil {
		p.Error = s.Failure.Message
	}
	if s.Result != nil {
		p.Result = newResultView(*s.Result)
	}
	return p
}

func newResultView(r domain.TripResult) *ResultView {
	v := &ResultView{
		TotalDistance:  FormatNumber(r.TotalDistance),
		DrivingTime:    FormatNumber(r.DrivingTime),
		TotalTripTime:  FormatNumber(r.TotalTripTime),
		FuelStops:      FormatNumber(r.FuelStops),
		RestBreaks:     FormatNumber(r.RestBreaks),
		HoursAvailable: FormatNumber(r.HoursAvailable),
		TotalHoursUsed: FormatNumber(r.TotalHoursUsed),
		Compliant:      r.Compliant,
		HOSLabel:       HOSViolation,
		HOSClass:       "hos-violation",
		MapURL:         r.MapURL,
	}
	if r.Compliant {
		v.HOSLabel = HOSCompliant
		v.HOSClass = "hos-compliant"
	}

	v.Stops = make([]StopView, 0, len(r.Stops))
	for _, st := range r.Stops {
		sv := StopView{
			Kind:     string(st.Type),
			Title:    st.Type.Title(),
			Location: st.Location,
			Icon:     stopIcons[st.Type],
		}
		if st.Coords != nil {
			sv.Coords = st.Coords.String()
		}
		if st.Duration != nil {
			sv.HasDuration = true
			sv.Duration = FormatNumber(*st.Duration)
		}
		v.Stops = append(v.Stops, sv)
	}

	return v
}

// FormatNumber prints a backend number the way a browser does: shortest
// form, no rounding, exponent form from 1e21 up and below 1e-6.
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		// Go pads the exponent to two digits.
		s = strings.Replace(s, "e-0", "e-", 1)
		return strings.Replace(s, "e+0", "e+", 1)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
