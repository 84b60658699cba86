package failure

type Severity int

// whether the caller can carry on past the failure
const (
	SeverityFatal Severity = iota
	SeverityRecoverable
)

// ClassifiedError is implemented by every typed error in the module.
type ClassifiedError interface {
	error
	Severity() Severity
}
