package service

// ReportUnavailableError marks a report whose assembly failed in one of its
// sub-steps, typically because a storage read errored. The step name is kept
// for diagnostics; retrying is the caller's decision.
type ReportUnavailableError struct {
	Step string
	Err  error
}

func (e *ReportUnavailableError) Error() string {
	return "report unavailable: " + e.Step + ": " + e.Err.Error()
}

func (e *ReportUnavailableError) Unwrap() error {
	return e.Err
}

func unavailable(step string, err error) error {
	return &ReportUnavailableError{Step: step, Err: err}
}
