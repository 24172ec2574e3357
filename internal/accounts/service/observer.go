package service

// Observer receives outcome counts from the services. The metrics package
// provides the Prometheus implementation.
type Observer interface {
	ObserveLogin(result string)
	ObserveRegistration(admin bool)
	ObserveTokenCheck(result string)
}

// Outcome labels passed to Observer.
const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultInvalid  = "invalid"
	ResultMissing  = "missing"
	ResultNotFound = "unknown_subject"
	ResultError    = "error"
)

type nopObserver struct{}

func (nopObserver) ObserveLogin(string)      {}
func (nopObserver) ObserveRegistration(bool) {}
func (nopObserver) ObserveTokenCheck(string) {}

func observerOrNop(o Observer) Observer {
	if o == nil {
		return nopObserver{}
	}
	return o
}
