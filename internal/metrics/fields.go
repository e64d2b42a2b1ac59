package metrics

// Attribute keys shared by the HTTP, provider, favorites and chat instruments.
const (
	AttrMethod    = "method"
	AttrPath      = "path"
	AttrStatus    = "status"
	AttrProvider  = "provider"
	AttrOperation = "operation"
	AttrOutcome   = "outcome"
)

// Values of AttrOutcome.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Outcome labels a favorites or chat call by whether it failed.
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}
