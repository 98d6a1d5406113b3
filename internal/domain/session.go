package domain

// Status is the transient part of the held UI state.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
)

type FailureKind string

const (
	CalculationFailed FailureKind = "calculation_failed"
	LogUnavailable    FailureKind = "log_unavailable"
)

// Failure is the last user-visible error.
type Failure struct {
	Kind    FailureKind `json:"kind"`
	Message string      `json:"message"`
}

// Session is the state held for one browser: the last typed form, whether a
// calculation is in flight, the last successful result and the last failure.
//
// Transitions go through Begin, Succeed, Fail and FailLog so a session is
// never submitting with a stale failure, and a failed calculation never
// touches the held result.
type Session struct {
	Status  Status      `json:"status"`
	Form    TripForm    `json:"form"`
	Result  *TripResult `json:"result,omitempty"`
	Failure *Failure    `json:"failure,omitempty"`
}

func NewSession() Session {
	return Session{Status: StatusIdle}
}

func (s Session) Submitting() bool { return s.Status == StatusSubmitting }

// Begin marks a calculation as in flight for form and clears the failure.
func (s Session) Begin(form TripForm) Session {
	s.Status = StatusSubmitting
	s.Form = form
	s.Failure = nil
	return s
}

// Succeed replaces the held result and settles the session.
func (s Session) Succeed(result TripResult) Session {
	s.Status = StatusIdle
	s.Result = &result
	s.Failure = nil
	return s
}

// Fail records a calculation failure and settles the session. The previous
// result, if any, stays held.
func (s Session) Fail(message string) Session {
	s.Status = StatusIdle
	s.Failure = &Failure{Kind: CalculationFailed, Message: message}
	return s
}

// FailLog records a log-resolution failure. It does not change Status:
// log requests are independent of an in-flight calculation.
func (s Session) FailLog(message string) Session {
	s.Failure = &Failure{Kind: LogUnavailable, Message: message}
	return s
}
